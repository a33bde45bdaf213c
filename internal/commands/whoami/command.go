package whoami

import (
	"github.com/smartshark/sharkdb-cli/internal/cli"
	"github.com/smartshark/sharkdb-cli/internal/terminal"
)

// Command is the `whoami` command
type Command struct{}

// Handler is the command handler
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI) error {
	creds := profile.Credentials()

	if creds.Username == "" {
		ui.Print(terminal.NewTextLog(
			"No administrative credentials are configured for %s:%d",
			profile.MongoDBHost(),
			profile.MongoDBPort(),
		))
		return nil
	}

	ui.Print(terminal.NewTextLog(
		"Currently configured user: %s (%s) for %s:%d",
		creds.Username,
		creds.RedactedPassword(),
		profile.MongoDBHost(),
		profile.MongoDBPort(),
	))
	return nil
}
