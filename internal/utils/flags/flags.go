package flags

import (
	"github.com/spf13/pflag"
)

// MarkHidden hides the named flag from the flag set's usage text
// A panic occurs if the flag is not registered
func MarkHidden(fs *pflag.FlagSet, name string) {
	if err := fs.MarkHidden(name); err != nil {
		panic(err)
	}
}
