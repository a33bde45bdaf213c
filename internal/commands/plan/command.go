package plan

import (
	"fmt"
	"strings"

	"github.com/smartshark/sharkdb-cli/internal/cli"
	planpkg "github.com/smartshark/sharkdb-cli/internal/plan"
	"github.com/smartshark/sharkdb-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	headerDatabase     = "Database"
	headerUsername     = "Username"
	headerRoles        = "Roles"
	headerWriteConcern = "Write Concern"
)

// Command is the `plan` command
type Command struct {
	inputs inputs
}

type inputs struct {
	cli.PlanInputs

	plan planpkg.Plan
}

func (i *inputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	p, err := i.Plan()
	if err != nil {
		return err
	}
	i.plan = p
	return nil
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.PlanFile, cli.FlagPlanFile, "", cli.FlagPlanFileUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
// The plan is displayed without touching the server; passwords are never shown
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI) error {
	accounts := cmd.inputs.plan.Accounts

	rows := make([]map[string]interface{}, 0, len(accounts))
	for _, account := range accounts {
		rows = append(rows, map[string]interface{}{
			headerDatabase:     account.Database,
			headerUsername:     account.Username,
			headerRoles:        formatRoles(account.Roles),
			headerWriteConcern: formatWriteConcern(account.WriteConcern),
		})
	}

	ui.Print(terminal.NewTableLog(
		"Provisioning plan",
		[]string{headerDatabase, headerUsername, headerRoles, headerWriteConcern},
		rows...,
	))
	return nil
}

func formatRoles(roles []planpkg.Role) string {
	out := make([]string, 0, len(roles))
	for _, role := range roles {
		out = append(out, role.String())
	}
	return strings.Join(out, ", ")
}

func formatWriteConcern(wc *planpkg.WriteConcern) string {
	if wc == nil {
		return ""
	}
	return fmt.Sprintf("w=%s, wtimeout=%dms", wc.W, wc.WTimeoutMS)
}
