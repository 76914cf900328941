package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idelchi/cryptkit/internal/config"
	"github.com/idelchi/cryptkit/internal/digest"
	"github.com/idelchi/cryptkit/internal/logic"
	"github.com/idelchi/cryptkit/internal/otp"
	"github.com/idelchi/gogen/pkg/cobraext"
)

// NewGenerateCommand creates the generate subcommand, which prints a random key.
func NewGenerateCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Generate a new encryption key",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunGenerate(st.streams(cmd))
		},
	}
}

// NewHOTPCommand creates the hotp subcommand.
// Its --key is read from the "otp-key" setting, CRYPTKIT_OTP_KEY in the environment.
func NewHOTPCommand(cfg *config.Config, st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotp [flags]",
		Short: "Compute an HMAC-based one-time password",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := bindAs(cmd, "otp-key", "key"); err != nil {
				return err
			}

			return cobraext.Validate(cfg, &cfg.OTP)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunHOTP(&cfg.OTP, st.streams(cmd))
		},
	}

	cmd.Flags().StringP("key", "k", "", "Shared secret")
	cmd.Flags().Bool("hex", false, "Treat the secret as hex-encoded")
	cmd.Flags().Int64P("counter", "c", 0, "Counter value")
	cmd.Flags().IntP("digits", "d", otp.DefaultDigits, "Number of digits")

	return cmd
}

// NewCRC32Command creates the crc32 subcommand.
func NewCRC32Command(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "crc32 files...",
		Short: "Print CRC-32 checksums",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return logic.RunCRC32(args, st.streams(cmd))
		},
	}
}

// NewDigestCommand creates the digest subcommand.
func NewDigestCommand(cfg *config.Config, st *state) *cobra.Command {
	algorithms := make([]string, 0, len(digest.Algorithms()))
	for _, alg := range digest.Algorithms() {
		algorithms = append(algorithms, string(alg))
	}

	cmd := &cobra.Command{
		Use:   "digest [flags] files...",
		Short: "Print cryptographic digests",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(_ *cobra.Command, args []string) error {
			cfg.Digest.Files = args

			return cobraext.Validate(cfg, &cfg.Digest)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return logic.RunDigest(&cfg.Digest, st.streams(cmd))
		},
	}

	cmd.Flags().StringP("algorithm", "a", string(digest.AlgSHA256),
		fmt.Sprintf("Digest algorithm, one of [%s]", strings.Join(algorithms, ", ")))

	return cmd
}

// NewDESCommand creates the des subcommand and its encrypt/decrypt children.
// Their --key is read from the "des-key" setting, CRYPTKIT_DES_KEY in the environment.
func NewDESCommand(cfg *config.Config, st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "des",
		Short: "Encrypt or decrypt strings with legacy DES-CBC",
		RunE:  cobraext.UnknownSubcommandAction,
	}

	for _, decrypt := range []bool{false, true} {
		use, short := "encrypt [flags] text", "Encrypt text to base64"
		if decrypt {
			use, short = "decrypt [flags] base64", "Decrypt base64 to text"
		}

		child := &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(1),
			PreRunE: func(cmd *cobra.Command, args []string) error {
				cfg.DES.Text = args[0]
				cfg.DES.Decrypt = decrypt

				if err := bindAs(cmd, "des-key", "key"); err != nil {
					return err
				}

				return cobraext.Validate(cfg, &cfg.DES)
			},
			RunE: func(cmd *cobra.Command, _ []string) error {
				return logic.RunDES(&cfg.DES, st.streams(cmd))
			},
		}

		child.Flags().StringP("key", "k", "", "DES key; only the first 8 bytes are used")

		cmd.AddCommand(child)
	}

	return cmd
}
