package provision

import (
	"context"

	"github.com/smartshark/sharkdb-cli/internal/cli"
	"github.com/smartshark/sharkdb-cli/internal/cloud/mongodb"
	"github.com/smartshark/sharkdb-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// Command is the `provision` command
type Command struct {
	inputs  inputs
	client  mongodb.Client
	applied bool
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
// Accounts are applied strictly in plan order: the existing account is
// dropped first, then recreated with the planned roles
// The first failing statement aborts the run, leaving later accounts untouched
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI) error {
	ctx := context.Background()
	defer cmd.client.Disconnect(ctx)

	accounts := cmd.inputs.plan.Accounts

	proceed, err := ui.Confirm(
		"This will drop and recreate %d account(s) on %s:%d, would you like to proceed?",
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
			return cli.NewPrivileged("failed to provision accounts", err)
		}
		if err := cmd.client.CreateUser(ctx, account.Database, account.NewUser()); err != nil {
			return cli.NewPrivileged("failed to provision accounts", err)
		}
		ui.Print(terminal.NewTextLog("Provisioned account %q on database %q", account.Username, account.Database))
	}

	cmd.applied = true
	return nil
}

// Feedback is the command feedback
func (cmd *Command) Feedback(profile *cli.Profile, ui terminal.UI) error {
	if !cmd.applied {
		ui.Print(terminal.NewTextLog("No accounts were provisioned"))
		return nil
	}
	ui.Print(terminal.NewTextLog("Successfully provisioned %d account(s)", len(cmd.inputs.plan.Accounts)))
	return nil
}
