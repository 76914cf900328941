package config

import (
	"fmt"
	"os"

	"github.com/idelchi/gogen/pkg/key"
)

const (
	// DefaultKey is the hex encoding of the fixed 16-byte key "mysecretkey12345"
	// shared by every cryptkit release, so files stay decryptable without flags.
	DefaultKey = "6d797365637265746b65793132333435"
	// DefaultIV is the all-zero 16-byte initialization vector.
	DefaultIV = "00000000000000000000000000000000"
	// KeySize is the AES-128 key length in bytes.
	KeySize = 16
	// IVSize is the AES block length in bytes.
	IVSize = 16
)

// Suffixes controls how output paths are derived from input paths.
type Suffixes struct {
	// Encrypt is appended to encrypted files and stripped before decrypting.
	Encrypt string `mapstructure:"encrypt-ext"`

	// Decrypt is appended to decrypted files.
	Decrypt string `mapstructure:"decrypt-ext"`
}

// Transform is the configuration for the encrypt and decrypt commands.
type Transform struct {
	// Key is the hex encoded AES key.
	Key string `label:"--key" mapstructure:"key" validate:"omitempty,hexbytes=16,exclusive=KeyFile"`

	// KeyFile points to a file holding the hex encoded key.
	KeyFile string `label:"--key-file" mapstructure:"key-file" validate:"omitempty,file"`

	// IV is the hex encoded initialization vector.
	IV string `label:"--iv" mapstructure:"iv" validate:"omitempty,hexbytes=16"`

	// Output overrides the derived output path; only valid for a single file.
	Output string `label:"--output" mapstructure:"output"`

	// Parallel bounds the number of files processed concurrently.
	Parallel int `label:"--parallel" mapstructure:"parallel" validate:"min=1"`

	Suffixes Suffixes `mapstructure:",squash"`

	// Strict turns digest mismatches on decrypt into errors.
	Strict bool `mapstructure:"strict"`

	// EmbedSHA1 stores the SHA-1 digest in the container's SHA-1 slot instead of zeros.
	EmbedSHA1 bool `mapstructure:"embed-sha1"`

	// Delete removes each input after it was transformed successfully.
	Delete bool `mapstructure:"delete"`

	// Stats prints a summary after processing.
	Stats bool `mapstructure:"stats"`

	// Quiet suppresses per-file output.
	Quiet bool `mapstructure:"quiet"`

	// Decrypt is set by the decrypt command.
	Decrypt bool `mapstructure:"-"`

	// Files are the positional arguments.
	Files []string `label:"files" mapstructure:"-" validate:"min=1,dive,required"`
}

func (t *Transform) check() error {
	if t.Output != "" && len(t.Files) != 1 {
		return fmt.Errorf("--output requires exactly one file, got %d", len(t.Files))
	}

	return nil
}

// KeyBytes resolves the key from --key, --key-file or the default, in that order.
func (t *Transform) KeyBytes() ([]byte, error) {
	encoded := t.Key

	if t.KeyFile != "" {
		data, err := os.ReadFile(t.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("reading key file: %w", err)
		}

		encoded = string(data)
	}

	if encoded == "" {
		encoded = DefaultKey
	}

	return decodeHex("key", encoded, KeySize)
}

// IVBytes returns the configured initialization vector or the zero IV.
func (t *Transform) IVBytes() ([]byte, error) {
	encoded := t.IV
	if encoded == "" {
		encoded = DefaultIV
	}

	return decodeHex("iv", encoded, IVSize)
}

func decodeHex(name, encoded string, size int) ([]byte, error) {
	raw, err := key.FromHex(encoded)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}

	if len(raw) != size {
		return nil, fmt.Errorf("%s must be %d bytes (%d hex characters), got %d bytes", name, size, 2*size, len(raw))
	}

	return raw, nil
}
