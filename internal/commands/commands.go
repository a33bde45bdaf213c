package commands

import (
	"github.com/smartshark/sharkdb-cli/internal/cli"
	"github.com/smartshark/sharkdb-cli/internal/commands/configure"
	"github.com/smartshark/sharkdb-cli/internal/commands/plan"
	"github.com/smartshark/sharkdb-cli/internal/commands/provision"
	"github.com/smartshark/sharkdb-cli/internal/commands/restore"
	"github.com/smartshark/sharkdb-cli/internal/commands/teardown"
	"github.com/smartshark/sharkdb-cli/internal/commands/verify"
	"github.com/smartshark/sharkdb-cli/internal/commands/whoami"
)

// set of commands
var (
	Configure = cli.CommandDefinition{
		Command:     &configure.Command{},
		Use:         "configure",
		Description: "Save the connection details of the replication kit's MongoDB instance",
		Help: `Save the connection details of the replication kit's MongoDB instance

Stores the host, port and administrative credentials in your CLI profile so
the other commands can reach the server without re-entering them.`,
	}
	Whoami = cli.CommandDefinition{
		Command:     &whoami.Command{},
		Use:         "whoami",
		Description: "Display the currently configured connection details",
		Help:        "Display the currently configured connection details",
	}

	Plan = cli.CommandDefinition{
		Command:     &plan.Command{},
		Use:         "plan",
		Description: "Display the account-provisioning plan without applying it",
		Help: `Display the account-provisioning plan without applying it

Shows each target database with its account and role grants. Passwords are
never displayed. The server is not contacted.`,
	}
	Provision = cli.CommandDefinition{
		Command:     &provision.Command{},
		Use:         "provision",
		Description: "Create the replication kit's database accounts",
		Help: `Create the replication kit's database accounts

For each target database in the plan, an existing account of the same name is
dropped and the account is recreated with the planned role grants. Statements
run strictly in plan order and the first failure aborts the run. Running the
command twice leaves the server in the same state.`,
	}
	Verify = cli.CommandDefinition{
		Command:     &verify.Command{},
		Use:         "verify",
		Description: "Check the server's accounts against the provisioning plan",
		Help: `Check the server's accounts against the provisioning plan

Each planned database must report exactly the planned account with exactly
the planned role grants. The command exits non-zero if any account is missing
or its role set has drifted.`,
	}
	Teardown = cli.CommandDefinition{
		Command:     &teardown.Command{},
		Use:         "teardown",
		Description: "Drop the replication kit's database accounts",
		Help: `Drop the replication kit's database accounts

Drops each account named in the plan from its target database. Accounts that
do not exist are skipped, so tearing down an already-clean instance succeeds.`,
	}

	Restore = cli.CommandDefinition{
		Command:     &restore.Command{},
		Use:         "restore",
		Description: "Restore the replication kit's database archive dump via mongorestore",
		Help: `Restore the replication kit's database archive dump via mongorestore

Requires the MongoDB Database Tools to be installed; the archive is streamed
into the configured MongoDB instance using the profile's credentials.`,
	}
)
