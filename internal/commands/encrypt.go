package commands

import (
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/cryptkit/internal/config"
	"github.com/idelchi/cryptkit/internal/logic"
	"github.com/idelchi/gogen/pkg/cobraext"
)

// NewEncryptCommand creates a new cobra command for the encrypt subcommand.
func NewEncryptCommand(cfg *config.Config, st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "encrypt [flags] files...",
		Aliases: []string{"enc"},
		Short:   "Encrypt files",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: func(_ *cobra.Command, args []string) error {
			cfg.Transform.Files = args

			return cobraext.Validate(cfg, &cfg.Transform)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.Run(&cfg.Transform, st.logger, st.streams(cmd))
		},
	}

	transformFlags(cmd.Flags())

	cmd.Flags().Bool("embed-sha1", false, "Store the SHA-1 digest in the container instead of leaving its slot zero")

	return cmd
}

// transformFlags registers the flags shared by encrypt and decrypt.
func transformFlags(flags *pflag.FlagSet) {
	flags.StringP("key", "k", "", "Encryption key (16 bytes, hex-encoded); defaults to the built-in key")
	flags.StringP("key-file", "f", "", "Path to a file with the hex-encoded encryption key")
	flags.String("iv", "", "Initialization vector (16 bytes, hex-encoded); defaults to zeros")
	flags.StringP("output", "o", "", "Output path, only with a single input file")
	flags.IntP("parallel", "j", runtime.NumCPU(), "Number of parallel workers, defaults to number of CPUs")
	flags.String("encrypt-ext", ".enc", "Suffix to append to encrypted files")
	flags.String("decrypt-ext", "", "Suffix to append to decrypted files, after stripping the encrypted suffix")
	flags.BoolP("delete", "d", false, "Delete the original file after successful encryption/decryption")
	flags.Bool("stats", false, "Print a summary after processing")
	flags.BoolP("quiet", "q", false, "Suppress non-error output")
}
