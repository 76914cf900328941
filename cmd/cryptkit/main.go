// Command cryptkit encrypts files into a digest-tagged container and computes
// HOTP codes, checksums and digests.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/idelchi/cryptkit/internal/commands"
	"github.com/idelchi/cryptkit/internal/config"
	"github.com/idelchi/gogen/pkg/cobraext"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "unknown" //nolint:gochecknoglobals

func main() {
	cfg := &config.Config{}

	root := commands.NewRootCommand(cfg, version)

	switch err := root.Execute(); {
	case errors.Is(err, cobraext.ErrExitGracefully):
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
