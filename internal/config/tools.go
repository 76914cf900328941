package config

import (
	"fmt"

	"github.com/idelchi/cryptkit/internal/digest"
	"github.com/idelchi/gogen/pkg/key"
)

// OTP configures the hotp command.
// Its secret has its own key so the AES key of encrypt never reaches it.
type OTP struct {
	// Key is the shared secret, taken literally unless Hex is set.
	Key string `label:"--key" mapstructure:"otp-key" validate:"required"`

	// Hex marks Key as hex encoded.
	Hex bool `mapstructure:"hex"`

	// Counter is the moving factor.
	Counter int64 `mapstructure:"counter"`

	// Digits is the code length.
	Digits int `label:"--digits" mapstructure:"digits" validate:"min=1,max=10"`
}

// KeyBytes returns the secret as raw bytes.
func (o *OTP) KeyBytes() ([]byte, error) {
	if !o.Hex {
		return []byte(o.Key), nil
	}

	raw, err := key.FromHex(o.Key)
	if err != nil {
		return nil, fmt.Errorf("decoding key: %w", err)
	}

	return raw, nil
}

// Digest configures the digest command.
type Digest struct {
	Algorithm digest.Algorithm `label:"--algorithm" mapstructure:"algorithm" validate:"oneof=sha1 sha256 md5"`

	Files []string `label:"files" mapstructure:"-" validate:"min=1,dive,required"`
}

// DES configures the des command.
type DES struct {
	// Key needs at least 8 bytes; only the first 8 are used.
	Key string `label:"--key" mapstructure:"des-key" validate:"required,min=8"`

	// Text is the input string.
	Text string `label:"text" mapstructure:"-"`

	// Decrypt is set by the decrypt subcommand.
	Decrypt bool `mapstructure:"-"`
}
