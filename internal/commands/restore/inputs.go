package restore

import (
	"errors"

	"github.com/smartshark/sharkdb-cli/internal/cli"
	"github.com/smartshark/sharkdb-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

type inputs struct {
	ArchivePath string
	Gzip        bool
	NSInclude   string
	Drop        bool
}

func (i *inputs) Resolve(profile *cli.Profile, ui terminal.UI) error {
	if i.ArchivePath == "" {
		err := ui.AskOne(&i.ArchivePath, &survey.Input{Message: "Archive path"})
		if err != nil {
			return err
		}
	}

	if i.ArchivePath == "" {
		return errors.New("an archive path is required")
	}
	return nil
}
