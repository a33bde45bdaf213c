// Sharkdb is a tool for command-line administration of the MongoDB instance
// backing a smartSHARK replication kit.
package main

import (
	"github.com/smartshark/sharkdb-cli/cmd"
)

func main() {
	cmd.Run()
}
