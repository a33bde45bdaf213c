package cmd

import (
	"fmt"

	"github.com/smartshark/sharkdb-cli/internal/cli"
	"github.com/smartshark/sharkdb-cli/internal/commands"

	"github.com/spf13/cobra"
)

// Run runs the CLI
func Run() {
	// print commands in help/usage text in the order they are declared
	cobra.EnableCommandSorting = false

	cmd := &cobra.Command{
		Version:       cli.Version,
		Use:           cli.Name,
		Short:         "CLI tool to manage the MongoDB instance of a smartSHARK replication kit",
		Long:          fmt.Sprintf(`Use "%s [command] --help" for information on a specific command`, cli.Name),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	factory := cli.NewCommandFactory()

	cobra.OnInitialize(factory.Setup)

	cmd.Flags().SortFlags = false // ensures CLI help text displays global flags unsorted
	factory.SetGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(factory.Build(commands.Configure))
	cmd.AddCommand(factory.Build(commands.Whoami))
	cmd.AddCommand(factory.Build(commands.Plan))
	cmd.AddCommand(factory.Build(commands.Provision))
	cmd.AddCommand(factory.Build(commands.Verify))
	cmd.AddCommand(factory.Build(commands.Teardown))
	cmd.AddCommand(factory.Build(commands.Restore))

	defer factory.Close()
	factory.Run(cmd)
}
