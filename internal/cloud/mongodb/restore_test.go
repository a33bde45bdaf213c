package mongodb

import (
	"testing"

	"github.com/smartshark/sharkdb-cli/internal/utils/test/assert"
)

func TestOptionsRestoreArgs(t *testing.T) {
	t.Run("without credentials should only pass the instance address", func(t *testing.T) {
		opts := Options{Host: "localhost", Port: 27017}

		args := opts.RestoreArgs(RestoreOptions{ArchivePath: "dump.agz", Gzip: true})
		assert.Match(t, []string{
			"--host", "localhost",
			"--port", "27017",
			"--gzip",
			"--archive=dump.agz",
		}, args)
	})

	t.Run("with credentials should pass them along with the auth source", func(t *testing.T) {
		opts := Options{
			Host:       "localhost",
			Port:       27017,
			Username:   "root",
			Password:   "pwd123",
			AuthSource: "admin",
		}

		args := opts.RestoreArgs(RestoreOptions{
			ArchivePath: "dump.agz",
			Gzip:        true,
			NSInclude:   "smartshark.*",
			Drop:        true,
		})
		assert.Match(t, []string{
			"--host", "localhost",
			"--port", "27017",
			"--username", "root",
			"--password", "pwd123",
			"--authenticationDatabase", "admin",
			"--gzip",
			"--drop",
			"--nsInclude", "smartshark.*",
			"--archive=dump.agz",
		}, args)
	})
}

func TestRestoreBinaryNotFound(t *testing.T) {
	err := errRestoreBinaryNotFound{}
	assert.Equal(t, "mongorestore was not found on this system's PATH", err.Error())
	assert.Equal(t, 1, len(err.ReferenceLinks()))
}
