package plan

import (
	"strings"
	"testing"

	planpkg "github.com/smartshark/sharkdb-cli/internal/plan"
	"github.com/smartshark/sharkdb-cli/internal/utils/test/assert"
	"github.com/smartshark/sharkdb-cli/internal/utils/test/mock"
)

func TestPlanHandler(t *testing.T) {
	t.Run("should display the built-in plan without touching the server", func(t *testing.T) {
		cmd := &Command{inputs: inputs{plan: planpkg.Default()}}

		out, ui := mock.NewUI()

		assert.Nil(t, cmd.Handler(nil, ui))

		output := out.String()
		assert.True(t, strings.Contains(output, "Provisioning plan"), "output must include the table title, got: %s", output)
		for _, database := range []string{"testRun", "test", "admin", "vcsshark"} {
			assert.True(t, strings.Contains(output, database), "output must include database %q, got: %s", database, output)
		}
		assert.True(t, strings.Contains(output, "clusterAdmin@admin, readAnyDatabase@admin, readWrite"), "output must spell out the role grants, got: %s", output)
		assert.True(t, strings.Contains(output, "w=majority, wtimeout=5000ms"), "output must include the admin write concern, got: %s", output)
	})

	t.Run("should never display account passwords", func(t *testing.T) {
		cmd := &Command{inputs: inputs{plan: planpkg.Plan{Accounts: []planpkg.Account{{
			Database: "testRun",
			Username: "root",
			Password: "superSecret",
			Roles:    []planpkg.Role{{Name: "readWrite"}},
		}}}}}

		out, ui := mock.NewUI()

		assert.Nil(t, cmd.Handler(nil, ui))
		assert.False(t, strings.Contains(out.String(), "superSecret"), "output must not include the password, got: %s", out.String())
	})
}

func TestFormatWriteConcern(t *testing.T) {
	assert.Equal(t, "", formatWriteConcern(nil))
	assert.Equal(t, "w=majority, wtimeout=5000ms", formatWriteConcern(&planpkg.WriteConcern{W: "majority", WTimeoutMS: 5000}))
}
