// Package cli holds the subcommands run from main besides serve.
package cli

import (
	"errors"

	"github.com/spf13/pflag"
)

// HelpRequested reports whether ParseFlags stopped at -h or --help. The
// usage text has been printed by then.
func HelpRequested(err error) bool {
	return errors.Is(err, pflag.ErrHelp)
}
