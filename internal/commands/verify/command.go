package verify

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/smartshark/sharkdb-cli/internal/cli"
	"github.com/smartshark/sharkdb-cli/internal/cloud/mongodb"
	"github.com/smartshark/sharkdb-cli/internal/plan"
	"github.com/smartshark/sharkdb-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	headerDatabase = "Database"
	headerUsername = "Username"
	headerStatus   = "Status"
	headerDetails  = "Details"
)

// set of account verification statuses
const (
	statusOK      = "OK"
	statusMissing = "MISSING"
	statusDrift   = "DRIFT"
)

// Command is the `verify` command
type Command struct {
	inputs inputs
	client mongodb.Client
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
// Each planned database must report exactly the planned account with exactly
// the planned role set; the server reports roles in arbitrary order so the
// comparison is order-insensitive
func (cmd *Command) Handler(profile *cli.Profile, ui terminal.UI) error {
	ctx := context.Background()
	defer cmd.client.Disconnect(ctx)

	accounts := cmd.inputs.plan.Accounts

	rows := make([]map[string]interface{}, 0, len(accounts))
	var failures int

	for _, account := range accounts {
		users, err := cmd.client.Users(ctx, account.Database, account.Username)
		if err != nil {
			return cli.NewPrivileged("failed to verify accounts", err)
		}

		status, details := statusOf(account, users)
		if status != statusOK {
			failures++
		}

		rows = append(rows, map[string]interface{}{
			headerDatabase: account.Database,
			headerUsername: account.Username,
			headerStatus:   status,
			headerDetails:  details,
		})
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Account verification for %s:%d", profile.MongoDBHost(), profile.MongoDBPort()),
		[]string{headerDatabase, headerUsername, headerStatus, headerDetails},
		rows...,
	))

	if failures > 0 {
		return errVerificationFailed{failures}
	}
	return nil
}

func statusOf(account plan.Account, users []mongodb.User) (string, string) {
	if len(users) == 0 {
		return statusMissing, "account does not exist"
	}

	expected := account.NewUser().Roles
	actual := users[0].Roles

	if !rolesMatch(expected, actual) {
		return statusDrift, fmt.Sprintf("roles are [%s], want [%s]", formatRoles(actual), formatRoles(expected))
	}
	return statusOK, ""
}

func rolesMatch(expected, actual []mongodb.Role) bool {
	if len(expected) != len(actual) {
		return false
	}

	sorted := func(roles []mongodb.Role) []mongodb.Role {
		out := make([]mongodb.Role, len(roles))
		copy(out, roles)
		sort.Slice(out, func(i, j int) bool {
			if out[i].Role != out[j].Role {
				return out[i].Role < out[j].Role
			}
			return out[i].DB < out[j].DB
		})
		return out
	}

	expectedSorted, actualSorted := sorted(expected), sorted(actual)
	for i := range expectedSorted {
		if expectedSorted[i] != actualSorted[i] {
			return false
		}
	}
	return true
}

func formatRoles(roles []mongodb.Role) string {
	out := make([]string, 0, len(roles))
	for _, role := range roles {
		out = append(out, fmt.Sprintf("%s@%s", role.Role, role.DB))
	}
	sort.Strings(out)
	return strings.Join(out, ", ")
}

type errVerificationFailed struct {
	failures int
}

func (err errVerificationFailed) Error() string {
	return fmt.Sprintf("%d account(s) failed verification", err.failures)
}

// SuggestedCommands point the operator at re-provisioning the instance
func (err errVerificationFailed) SuggestedCommands() []string {
	return []string{fmt.Sprintf("%s provision", cli.Name)}
}
