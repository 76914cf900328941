// Package otp generates HMAC-based one-time passwords (RFC 4226).
package otp

import (
	"crypto/hmac"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/idelchi/cryptkit/internal/digest"
)

const (
	// DefaultDigits is the code length used when none is configured.
	DefaultDigits = 6
	// MaxDigits bounds the code length. The truncated value has 31 bits,
	// so longer codes would only add leading zeros.
	MaxDigits = 10
)

// ErrInvalidArgument is returned for an empty key or an out-of-range digit count.
var ErrInvalidArgument = errors.New("invalid argument")

// HOTP derives a zero-padded numeric code of the given length from key and counter.
func HOTP(key []byte, counter int64, digits int) (string, error) {
	if len(key) == 0 {
		return "", fmt.Errorf("%w: key must not be empty", ErrInvalidArgument)
	}

	if digits <= 0 || digits > MaxDigits {
		return "", fmt.Errorf("%w: digits must be between 1 and %d, got %d", ErrInvalidArgument, MaxDigits, digits)
	}

	msg := make([]byte, 8)
	binary.BigEndian.PutUint64(msg, uint64(counter)) //nolint:gosec // two's complement encoding is intended

	newHash, err := digest.Func(digest.AlgSHA1)
	if err != nil {
		return "", err
	}

	mac := hmac.New(newHash, key)
	mac.Write(msg)
	sum := mac.Sum(nil)

	code := truncate(sum)

	otp := uint64(code) % pow10(digits)

	s := strconv.FormatUint(otp, 10)

	return strings.Repeat("0", digits-len(s)) + s, nil
}

// truncate applies dynamic truncation to an HMAC-SHA1 value.
func truncate(sum []byte) uint32 {
	offset := sum[len(sum)-1] & 0x0F

	return binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7FFFFFFF
}

func pow10(n int) uint64 {
	p := uint64(1)

	for range n {
		p *= 10
	}

	return p
}
