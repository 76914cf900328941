// Package digest computes the fixed-size digests used by the file transform
// container and exposed on the command line.
package digest

import (
	"crypto/md5" //nolint:gosec // MD5 is offered as a legacy fingerprint only
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"strings"

	"github.com/tink-crypto/tink-go/v2/subtle"
)

// Algorithm names a supported digest.
type Algorithm string

const (
	// AlgSHA1 is SHA-1 (20 bytes).
	AlgSHA1 Algorithm = "sha1"
	// AlgSHA256 is SHA-256 (32 bytes).
	AlgSHA256 Algorithm = "sha256"
	// AlgMD5 is MD5 (16 bytes).
	AlgMD5 Algorithm = "md5"
)

const (
	// SHA1Size is the length of a SHA-1 digest in bytes.
	SHA1Size = 20
	// SHA256Size is the length of a SHA-256 digest in bytes.
	SHA256Size = 32
	// MD5Size is the length of an MD5 digest in bytes.
	MD5Size = 16
)

// ErrUnknownAlgorithm is returned for algorithm names outside of sha1, sha256 and md5.
var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

// Algorithms lists the supported algorithms in display order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgSHA1, AlgSHA256, AlgMD5}
}

// Func returns the constructor for alg, in the shape crypto/hmac expects.
func Func(alg Algorithm) (func() hash.Hash, error) {
	switch Algorithm(strings.ToLower(string(alg))) {
	case AlgSHA1:
		return subtle.GetHashFunc("SHA1"), nil
	case AlgSHA256:
		return subtle.GetHashFunc("SHA256"), nil
	case AlgMD5:
		return md5.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
	}
}

// New returns a fresh hash.Hash for alg.
func New(alg Algorithm) (hash.Hash, error) {
	newHash, err := Func(alg)
	if err != nil {
		return nil, err
	}

	return newHash(), nil
}

// Sum hashes data with alg.
func Sum(alg Algorithm, data []byte) ([]byte, error) {
	h, err := New(alg)
	if err != nil {
		return nil, err
	}

	h.Write(data)

	return h.Sum(nil), nil
}

// SHA1 returns the SHA-1 digest of data.
func SHA1(data []byte) [SHA1Size]byte {
	var out [SHA1Size]byte

	sum, _ := Sum(AlgSHA1, data)
	copy(out[:], sum)

	return out
}

// SHA256 returns the SHA-256 digest of data.
func SHA256(data []byte) [SHA256Size]byte {
	var out [SHA256Size]byte

	sum, _ := Sum(AlgSHA256, data)
	copy(out[:], sum)

	return out
}

// MD5 returns the MD5 digest of data.
func MD5(data []byte) [MD5Size]byte {
	return md5.Sum(data) //nolint:gosec
}

// Hex renders a digest as lowercase hexadecimal.
func Hex(sum []byte) string {
	return hex.EncodeToString(sum)
}
