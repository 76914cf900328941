package logic

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tink-crypto/tink-go/v2/subtle/random"

	"github.com/idelchi/cryptkit/internal/checksum"
	"github.com/idelchi/cryptkit/internal/config"
	"github.com/idelchi/cryptkit/internal/digest"
	"github.com/idelchi/cryptkit/internal/legacy"
	"github.com/idelchi/cryptkit/internal/otp"
	"github.com/idelchi/gogen/pkg/key"
)

// RunGenerate prints a random hex-encoded key for --key.
func RunGenerate(streams Streams) error {
	generated := key.Key(random.GetRandomBytes(config.KeySize))

	_, err := fmt.Fprintln(streams.Out, generated.AsHex())

	return err
}

// RunHOTP prints the one-time password for the configured key and counter.
func RunHOTP(cfg *config.OTP, streams Streams) error {
	key, err := cfg.KeyBytes()
	if err != nil {
		return err
	}

	code, err := otp.HOTP(key, cfg.Counter, cfg.Digits)
	if err != nil {
		return fmt.Errorf("generating code: %w", err)
	}

	_, err = fmt.Fprintln(streams.Out, code)

	return err
}

// RunCRC32 prints the checksum of every file. Unreadable files are reported
// on the error stream and do not stop the remaining files.
func RunCRC32(files []string, streams Streams) error {
	return eachFile(files, streams, func(data []byte) string {
		return fmt.Sprintf("%08x", checksum.CRC32(data))
	})
}

// RunDigest prints the configured digest of every file.
func RunDigest(cfg *config.Digest, streams Streams) error {
	if _, err := digest.New(cfg.Algorithm); err != nil {
		return err
	}

	return eachFile(cfg.Files, streams, func(data []byte) string {
		sum, _ := digest.Sum(cfg.Algorithm, data)

		return digest.Hex(sum)
	})
}

func eachFile(files []string, streams Streams, sum func([]byte) string) error {
	var errs []error

	for _, file := range files {
		data, err := os.ReadFile(filepath.Clean(file))
		if err != nil {
			err = fmt.Errorf("reading %q: %w", file, err)
			fmt.Fprintf(streams.Err, "Error: %v\n", err)

			errs = append(errs, err)

			continue
		}

		fmt.Fprintf(streams.Out, "%s  %s\n", sum(data), file)
	}

	return errors.Join(errs...)
}

// RunDES encrypts or decrypts a single string.
func RunDES(cfg *config.DES, streams Streams) error {
	d, err := legacy.NewDES(cfg.Key)
	if err != nil {
		return err
	}

	var out string

	if cfg.Decrypt {
		out, err = d.Decrypt(cfg.Text)
		if err != nil {
			return err
		}
	} else {
		out = d.Encrypt(cfg.Text)
	}

	_, err = fmt.Fprintln(streams.Out, out)

	return err
}
