package testutils

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/mitchellh/go-homedir"
)

// TempDir creates a temporary directory for the test
// and removes it when the test ends
func TempDir(t *testing.T, name string) string {
	t.Helper()

	dir, err := ioutil.TempDir("", name)
	if err != nil {
		t.Fatalf("failed to create temporary directory: %s", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	return dir
}

// SetupHomeDir points $HOME at the provided directory for the duration
// of the test, restoring the original value when the test ends
func SetupHomeDir(t *testing.T, newHome string) {
	t.Helper()

	origHome := os.Getenv("HOME")
	homedir.DisableCache = true
	_ = os.Setenv("HOME", newHome)

	t.Cleanup(func() {
		homedir.DisableCache = false
		_ = os.Setenv("HOME", origHome)
	})
}
