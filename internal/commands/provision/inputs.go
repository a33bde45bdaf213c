package provision

import (
	"fmt"

	"github.com/smartshark/sharkdb-cli/internal/cli"
	"github.com/smartshark/sharkdb-cli/internal/plan"
	"github.com/smartshark/sharkdb-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

type inputs struct {
	cli.PlanInputs

	plan plan.Plan
}

// Resolve loads the plan and fills in any account passwords not present in
// the plan itself: the environment is consulted first, the user is prompted
// as a last resort
func (i *inputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	p, err := i.Plan()
	if err != nil {
		return err
	}

	for idx := range p.Accounts {
		account := &p.Accounts[idx]
		if account.Password != "" {
			continue
		}
		if pwd := account.PasswordFromEnv(); pwd != "" {
			account.Password = pwd
			continue
		}

		var pwd string
		err := ui.AskOne(&pwd, &survey.Password{
			Message: fmt.Sprintf("Password for %q on database %q", account.Username, account.Database),
		})
		if err != nil {
			return err
		}
		if pwd == "" {
			return fmt.Errorf("a password is required for %q on database %q", account.Username, account.Database)
		}
		account.Password = pwd
	}

	i.plan = p
	return nil
}
