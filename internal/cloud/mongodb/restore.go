package mongodb

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
)

const restoreBinary = "mongorestore"

// RestoreOptions configure a mongorestore invocation
type RestoreOptions struct {
	ArchivePath string
	Gzip        bool
	NSInclude   string
	Drop        bool
}

// RestoreArgs builds the mongorestore argument list for the instance
func (opts Options) RestoreArgs(restore RestoreOptions) []string {
	args := []string{
		"--host", opts.Host,
		"--port", strconv.Itoa(opts.Port),
	}

	if opts.Username != "" {
		args = append(args,
			"--username", opts.Username,
			"--password", opts.Password,
			"--authenticationDatabase", opts.AuthSource,
		)
	}

	if restore.Gzip {
		args = append(args, "--gzip")
	}
	if restore.Drop {
		args = append(args, "--drop")
	}
	if restore.NSInclude != "" {
		args = append(args, "--nsInclude", restore.NSInclude)
	}

	return append(args, fmt.Sprintf("--archive=%s", restore.ArchivePath))
}

// Restore runs mongorestore against the configured MongoDB instance,
// streaming the tool's output to the provided writers
func Restore(ctx context.Context, opts Options, restore RestoreOptions, stdout, stderr io.Writer) error {
	binary, lookErr := exec.LookPath(restoreBinary)
	if lookErr != nil {
		return errRestoreBinaryNotFound{lookErr}
	}

	cmd := exec.CommandContext(ctx, binary, opts.RestoreArgs(restore)...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s exited with an error: %w", restoreBinary, err)
	}
	return nil
}

type errRestoreBinaryNotFound struct {
	cause error
}

func (err errRestoreBinaryNotFound) Error() string {
	return fmt.Sprintf("%s was not found on this system's PATH", restoreBinary)
}

func (err errRestoreBinaryNotFound) Unwrap() error { return err.cause }

// ReferenceLinks point the operator at the MongoDB Database Tools installation docs
func (err errRestoreBinaryNotFound) ReferenceLinks() []string {
	return []string{"https://docs.mongodb.com/database-tools/installation/installation/"}
}
