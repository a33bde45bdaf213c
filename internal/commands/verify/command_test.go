package verify

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/smartshark/sharkdb-cli/internal/cli"
	"github.com/smartshark/sharkdb-cli/internal/cloud/mongodb"
	"github.com/smartshark/sharkdb-cli/internal/plan"
	"github.com/smartshark/sharkdb-cli/internal/utils/test/assert"
	"github.com/smartshark/sharkdb-cli/internal/utils/test/mock"
)

func TestVerifyHandler(t *testing.T) {
	testPlan := plan.Plan{Accounts: []plan.Account{
		{Database: "testRun", Username: "root", Roles: []plan.Role{{Name: "readWrite"}}},
		{Database: "test", Username: "root", Roles: []plan.Role{{Name: "readWrite"}}},
		{Database: "admin", Username: "root", Roles: []plan.Role{{Name: "clusterAdmin"}}},
	}}

	t.Run("should pass when every account matches the plan", func(t *testing.T) {
		client := mock.MongoDBClient{}
		client.UsersFn = func(ctx context.Context, db, username string) ([]mongodb.User, error) {
			var roles []mongodb.Role
			if db == "admin" {
				roles = []mongodb.Role{{Role: "clusterAdmin", DB: "admin"}}
			} else {
				roles = []mongodb.Role{{Role: "readWrite", DB: db}}
			}
			return []mongodb.User{{Username: username, Database: db, Roles: roles}}, nil
		}

		cmd := &Command{inputs: inputs{plan: testPlan}, client: client}

		profile := mock.NewProfile(t)
		out, ui := mock.NewUI()

		assert.Nil(t, cmd.Handler(profile, ui))

		output := out.String()
		assert.True(t, strings.Contains(output, "Account verification for localhost:27017"), "output must include the table title, got: %s", output)
		for _, row := range []string{"testRun   root      OK", "test      root      OK", "admin     root      OK"} {
			assert.True(t, strings.Contains(output, row), "output must include %q, got: %s", row, output)
		}
	})

	t.Run("should accept role grants reported in a different order", func(t *testing.T) {
		account := plan.Account{Database: "testRun", Username: "root", Roles: []plan.Role{
			{Name: "clusterAdmin", DB: "admin"},
			{Name: "readWrite"},
		}}

		client := mock.MongoDBClient{}
		client.UsersFn = func(ctx context.Context, db, username string) ([]mongodb.User, error) {
			return []mongodb.User{{Username: username, Database: db, Roles: []mongodb.Role{
				{Role: "readWrite", DB: "testRun"},
				{Role: "clusterAdmin", DB: "admin"},
			}}}, nil
		}

		cmd := &Command{inputs: inputs{plan: plan.Plan{Accounts: []plan.Account{account}}}, client: client}

		profile := mock.NewProfile(t)
		_, ui := mock.NewUI()

		assert.Nil(t, cmd.Handler(profile, ui))
	})

	t.Run("should flag missing accounts and role drift", func(t *testing.T) {
		client := mock.MongoDBClient{}
		client.UsersFn = func(ctx context.Context, db, username string) ([]mongodb.User, error) {
			switch db {
			case "testRun": // matches the plan
				return []mongodb.User{{Username: username, Database: db, Roles: []mongodb.Role{{Role: "readWrite", DB: db}}}}, nil
			case "test": // exists with the wrong roles
				return []mongodb.User{{Username: username, Database: db, Roles: []mongodb.Role{{Role: "read", DB: db}}}}, nil
			default: // does not exist
				return nil, nil
			}
		}

		cmd := &Command{inputs: inputs{plan: testPlan}, client: client}

		profile := mock.NewProfile(t)
		out, ui := mock.NewUI()

		err := cmd.Handler(profile, ui)
		assert.NotNil(t, err)
		assert.Equal(t, "2 account(s) failed verification", err.Error())

		output := out.String()
		assert.True(t, strings.Contains(output, "MISSING"), "output must flag the missing account, got: %s", output)
		assert.True(t, strings.Contains(output, "DRIFT"), "output must flag the drifted account, got: %s", output)
		assert.True(t, strings.Contains(output, "roles are [read@test], want [readWrite@test]"), "output must detail the drift, got: %s", output)
	})

	t.Run("a failed verification should suggest re-provisioning", func(t *testing.T) {
		var suggester cli.CommandSuggester = errVerificationFailed{2}
		assert.Match(t, []string{"sharkdb provision"}, suggester.SuggestedCommands())
	})

	t.Run("should surface server errors", func(t *testing.T) {
		client := mock.MongoDBClient{}
		client.UsersFn = func(ctx context.Context, db, username string) ([]mongodb.User, error) {
			return nil, errors.New("server selection timeout")
		}

		cmd := &Command{inputs: inputs{plan: testPlan}, client: client}

		profile := mock.NewProfile(t)
		ui := mock.NewUIWithOptions(mock.UIOptions{}, new(bytes.Buffer))

		err := cmd.Handler(profile, ui)
		assert.NotNil(t, err)
		assert.Equal(t, "failed to verify accounts: server selection timeout", err.Error())
	})
}
