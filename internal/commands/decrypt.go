package commands

import (
	"github.com/spf13/cobra"

	"github.com/idelchi/cryptkit/internal/config"
	"github.com/idelchi/cryptkit/internal/logic"
	"github.com/idelchi/gogen/pkg/cobraext"
)

// NewDecryptCommand creates a new cobra command for the decrypt subcommand.
func NewDecryptCommand(cfg *config.Config, st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decrypt [flags] files...",
		Aliases: []string{"dec"},
		Short:   "Decrypt files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: func(_ *cobra.Command, args []string) error {
			cfg.Transform.Files = args
			cfg.Transform.Decrypt = true

			return cobraext.Validate(cfg, &cfg.Transform)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Run(&cfg.Transform, st.logger, st.streams(cmd))
		},
	}

	transformFlags(cmd.Flags())

	cmd.Flags().Bool("strict", false, "Fail instead of warning when an embedded digest does not match")

	return cmd
}
