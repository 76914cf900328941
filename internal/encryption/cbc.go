package encryption

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"

	"github.com/idelchi/cryptkit/internal/padding"
)

// Cipher encrypts whole buffers with AES-CBC under a fixed key and IV.
type Cipher struct {
	block cipher.Block
	iv    []byte
}

// NewCipher accepts a 16, 24 or 32 byte key and a 16 byte IV.
func NewCipher(key, iv []byte) (*Cipher, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}

	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("creating cipher: IV must be %d bytes, got %d", aes.BlockSize, len(iv))
	}

	return &Cipher{block: block, iv: append([]byte(nil), iv...)}, nil
}

// Encrypt pads plaintext and returns its ciphertext.
func (c *Cipher) Encrypt(plaintext []byte) []byte {
	padded := padding.Pad(plaintext, aes.BlockSize)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(ciphertext, padded)

	return ciphertext
}

// Decrypt returns the unpadded plaintext of ciphertext.
func (c *Cipher) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidBlockSize, len(ciphertext))
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, c.iv).CryptBlocks(plaintext, ciphertext)

	unpadded, err := padding.Unpad(plaintext, aes.BlockSize)
	if err != nil {
		if errors.Is(err, padding.ErrInvalidPadding) {
			return nil, ErrInvalidPadding
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidPadding, err)
	}

	return unpadded, nil
}
