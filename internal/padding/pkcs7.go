// Package padding implements PKCS#7 block padding.
package padding

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	// ErrEmptyData is returned when unpadding an empty buffer.
	ErrEmptyData = errors.New("empty data")
	// ErrInvalidPadding is returned when the trailing pad bytes are malformed.
	ErrInvalidPadding = errors.New("invalid padding")
)

// Pad returns a copy of data extended to a multiple of blockSize.
// A full block of padding is added when data is already aligned.
func Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize

	out := make([]byte, len(data), len(data)+n)
	copy(out, data)

	return append(out, bytes.Repeat([]byte{byte(n)}, n)...)
}

// Unpad strips PKCS#7 padding from data, which must be a multiple of blockSize.
func Unpad(data []byte, blockSize int) ([]byte, error) {
	length := len(data)
	if length == 0 {
		return nil, ErrEmptyData
	}

	if length%blockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d", ErrInvalidPadding, length, blockSize)
	}

	n := int(data[length-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidPadding, n)
	}

	for _, b := range data[length-n:] {
		if b != byte(n) {
			return nil, ErrInvalidPadding
		}
	}

	return data[:length-n], nil
}
