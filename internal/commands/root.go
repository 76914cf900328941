package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/cryptkit/internal/config"
	"github.com/idelchi/cryptkit/internal/logging"
	"github.com/idelchi/gogen/pkg/cobraext"
)

// NewRootCommand creates the root command with common configuration.
// It sets up environment variable binding and flag handling.
func NewRootCommand(cfg *config.Config, version string) *cobra.Command {
	st := &state{}

	root := cobraext.NewDefaultRootCommand(version, func(cmd *cobra.Command, _ []string) error {
		logger, err := logging.New(cmd.ErrOrStderr(), viper.GetString("log-level"))
		if err != nil {
			return err
		}

		st.logger = logger

		return nil
	})

	root.Use = "cryptkit [flags] command [flags]"
	root.Short = "Small cryptographic toolkit"
	root.Long = `A toolkit of classic cryptographic and integrity primitives.
Encrypts files into a digest-tagged AES-CBC container, and computes HOTP codes,
CRC-32 checksums, digests and legacy DES strings.`

	root.PersistentFlags().BoolP("show", "s", false, "Show the configuration and exit")
	root.PersistentFlags().String("log-level", "warn",
		fmt.Sprintf("Log level, one of [%s]", strings.Join(logging.Levels, ", ")))

	root.AddCommand(
		NewEncryptCommand(cfg, st),
		NewDecryptCommand(cfg, st),
		NewGenerateCommand(st),
		NewHOTPCommand(cfg, st),
		NewCRC32Command(st),
		NewDigestCommand(cfg, st),
		NewDESCommand(cfg, st),
	)

	return root
}
