// Package legacy holds the DES-CBC string encryptor kept for compatibility
// with text produced by older tooling. DES is broken; do not use it for new data.
package legacy

import (
	"crypto/cipher"
	"crypto/des" //nolint:gosec // legacy compatibility
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/idelchi/cryptkit/internal/padding"
)

// KeySize is the number of key bytes DES consumes.
const KeySize = des.BlockSize

var (
	// ErrInvalidKey is returned when the key string is shorter than KeySize bytes.
	ErrInvalidKey = errors.New("invalid DES key")
	// ErrInvalidCiphertext is returned for input that is not valid base64 DES-CBC output.
	ErrInvalidCiphertext = errors.New("invalid DES ciphertext")
)

// DES encrypts and decrypts strings with DES-CBC, using the key as IV,
// and carries ciphertext as standard base64.
type DES struct {
	block cipher.Block
	key   []byte
}

// NewDES keeps the first KeySize bytes of key.
func NewDES(key string) (*DES, error) {
	if len(key) < KeySize {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", ErrInvalidKey, KeySize, len(key))
	}

	raw := []byte(key[:KeySize])

	block, err := des.NewCipher(raw) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	return &DES{block: block, key: raw}, nil
}

// Encrypt returns the base64 ciphertext of plainText.
func (d *DES) Encrypt(plainText string) string {
	padded := padding.Pad([]byte(plainText), des.BlockSize)

	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(d.block, d.key).CryptBlocks(out, padded)

	return base64.StdEncoding.EncodeToString(out)
}

// Decrypt reverses Encrypt.
func (d *DES) Decrypt(encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: decoding base64: %w", ErrInvalidCiphertext, err)
	}

	if len(data) == 0 || len(data)%des.BlockSize != 0 {
		return "", fmt.Errorf("%w: length %d is not a multiple of %d", ErrInvalidCiphertext, len(data), des.BlockSize)
	}

	plain := make([]byte, len(data))
	cipher.NewCBCDecrypter(d.block, d.key).CryptBlocks(plain, data)

	unpadded, err := padding.Unpad(plain, des.BlockSize)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCiphertext, err)
	}

	return string(unpadded), nil
}
