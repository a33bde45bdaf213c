package teardown

import (
	"context"

	"github.com/smartshark/sharkdb-cli/internal/cli"
	"github.com/smartshark/sharkdb-cli/internal/cloud/mongodb"
	"github.com/smartshark/sharkdb-cli/internal/plan"
	"github.com/smartshark/sharkdb-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// Command is the `teardown` command
type Command struct {
	inputs  inputs
	client  mongodb.Client
	dropped int
}

type inputs struct {
	cli.PlanInputs

	plan plan.Plan
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

// Setup is the command setup
func (cmd *Command) Setup(profile *cli.Profile, ui terminal.UI) error {
	cmd.client = mongodb.NewClient(profile.MongoDBOptions())
	return nil
}

// Handler is the command handler
// Accounts that do not exist on the server are skipped silently, so a
// teardown of an already-clean instance succeeds
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI) error {
	ctx := context.Background()
	defer cmd.client.Disconnect(ctx)

	accounts := cmd.inputs.plan.Accounts

	proceed, err := ui.Confirm(
		"This will drop %d account(s) on %s:%d, would you like to proceed?",
		len(accounts),
		profile.MongoDBHost(),
		profile.MongoDBPort(),
	)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	for _, account := range accounts {
		if err := cmd.client.DropUser(ctx, account.Database, account.Username); err != nil {
			return cli.NewPrivileged("failed to tear down accounts", err)
		}
		ui.Print(terminal.NewTextLog("Dropped account %q on database %q", account.Username, account.Database))
		cmd.dropped++
	}
	return nil
}

// Feedback is the command feedback
func (cmd *Command) Feedback(profile *cli.Profile, ui terminal.UI) error {
	if cmd.dropped == 0 {
		ui.Print(terminal.NewTextLog("No accounts were dropped"))
		return nil
	}
	ui.Print(terminal.NewTextLog("Successfully dropped %d account(s)", cmd.dropped))
	return nil
}
