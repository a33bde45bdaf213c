package configure

import (
	"github.com/smartshark/sharkdb-cli/internal/cli"
	"github.com/smartshark/sharkdb-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// Command is the `configure` command
type Command struct {
	inputs inputs
	saved  bool
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Username, flagUsername, flagUsernameShort, "", flagUsernameUsage)
	fs.StringVarP(&cmd.inputs.Password, flagPassword, flagPasswordShort, "", flagPasswordUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI) error {
	existing := profile.Credentials()

	if existing.Username != "" && existing.Username != cmd.inputs.Username {
		proceed, err := ui.Confirm(
			"This will replace the stored credentials for user: %s (%s), would you like to proceed?",
			existing.Username,
			existing.RedactedPassword(),
		)
		if err != nil {
			return err
		}
		if !proceed {
			return nil
		}
	}

	profile.SetMongoDBHost(cmd.inputs.Host)
	profile.SetMongoDBPort(cmd.inputs.Port)
	profile.SetCredentials(cli.Credentials{Username: cmd.inputs.Username, Password: cmd.inputs.Password})

	if err := profile.Save(); err != nil {
		return err
	}
	cmd.saved = true
	return nil
}

// Feedback is the command feedback
func (cmd *Command) Feedback(profile *cli.Profile, ui terminal.UI) error {
	if !cmd.saved {
		ui.Print(terminal.NewTextLog("No changes were saved"))
		return nil
	}
	ui.Print(terminal.NewTextLog("Successfully saved the %q profile", profile.Name))
	return nil
}
