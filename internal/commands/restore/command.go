package restore

import (
	"context"
	"os"

	"github.com/smartshark/sharkdb-cli/internal/cli"
	"github.com/smartshark/sharkdb-cli/internal/cloud/mongodb"
	"github.com/smartshark/sharkdb-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// Command is the `restore` command
// It shells out to mongorestore, the replication kit's documented way of
// loading the database archive dump
type Command struct {
	inputs   inputs
	restored bool
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.ArchivePath, flagArchive, "", flagArchiveUsage)
	fs.BoolVar(&cmd.inputs.Gzip, flagGzip, true, flagGzipUsage)
	fs.StringVar(&cmd.inputs.NSInclude, flagNSInclude, "", flagNSIncludeUsage)
	fs.BoolVar(&cmd.inputs.Drop, flagDrop, false, flagDropUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI) error {
	proceed, err := ui.Confirm(
		"This will restore %s into %s:%d, would you like to proceed?",
		cmd.inputs.ArchivePath,
		profile.MongoDBHost(),
		profile.MongoDBPort(),
	)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	restoreOptions := mongodb.RestoreOptions{
		ArchivePath: cmd.inputs.ArchivePath,
		Gzip:        cmd.inputs.Gzip,
		NSInclude:   cmd.inputs.NSInclude,
		Drop:        cmd.inputs.Drop,
	}

	// mongorestore reports progress on its own stderr stream
	if err := mongodb.Restore(context.Background(), profile.MongoDBOptions(), restoreOptions, os.Stdout, os.Stderr); err != nil {
		return err
	}

	cmd.restored = true
	return nil
}

// Feedback is the command feedback
func (cmd *Command) Feedback(profile *cli.Profile, ui terminal.UI) error {
	if !cmd.restored {
		ui.Print(terminal.NewTextLog("No data was restored"))
		return nil
	}
	ui.Print(terminal.NewTextLog("Successfully restored %s", cmd.inputs.ArchivePath))
	return nil
}
