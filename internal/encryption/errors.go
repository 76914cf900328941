package encryption

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is the parent of every error caused by malformed ciphertext or container bytes.
	ErrFormat = errors.New("malformed input")
	// ErrInvalidBlockSize is returned when ciphertext is empty or not aligned with the AES block size.
	ErrInvalidBlockSize = fmt.Errorf("%w: ciphertext is not a multiple of block size", ErrFormat)
	// ErrInvalidPadding is returned when PKCS#7 padding is malformed after decryption.
	ErrInvalidPadding = fmt.Errorf("%w: invalid padding", ErrFormat)
	// ErrTruncated is returned when the length field points past the end of the container.
	ErrTruncated = fmt.Errorf("%w: container truncated", ErrFormat)
	// ErrTooLarge is returned when the input does not fit the 32-bit length field.
	ErrTooLarge = errors.New("input exceeds container size limit")
	// ErrIntegrityMismatch is returned in strict mode when an embedded digest does not match the data.
	ErrIntegrityMismatch = errors.New("integrity mismatch")
	// ErrSameFile is returned when the derived output path is the input itself.
	ErrSameFile = errors.New("output path is the input path")
)
