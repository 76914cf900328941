// Package commands provides the command-line interface for the cryptkit tool.
//
// It implements commands for:
//   - file encryption and decryption
//   - key generation
//   - HOTP codes
//   - CRC-32 and digest computation
//   - legacy DES string encryption
//
// The package handles command-line parsing, configuration validation,
// and environment variable binding through cobra, viper and cobraext.
package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/idelchi/cryptkit/internal/logic"
)

// state is shared by the command tree of one root command.
type state struct {
	logger *logrus.Logger
}

func (s *state) streams(cmd *cobra.Command) logic.Streams {
	return logic.Streams{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
}

// bindAs binds the command's flag under a different configuration key.
// Commands whose flags share a name with another command's flag use it
// so that neither the flag nor its environment variable leaks across commands.
func bindAs(cmd *cobra.Command, key, flag string) error {
	if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
		return fmt.Errorf("binding --%s as %q: %w", flag, key, err)
	}

	return nil
}
