package encryption

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/idelchi/cryptkit/internal/digest"
)

const (
	lengthSize = 4
	dataOffset = lengthSize + digest.SHA1Size

	// Overhead is the number of container bytes besides the file data.
	Overhead = dataOffset + digest.SHA256Size
)

// Container is the plaintext unit of encryption:
//
//	int32 LE length | [20]byte SHA-1 | [length]byte data | [32]byte SHA-256
type Container struct {
	SHA1   [digest.SHA1Size]byte
	Data   []byte
	SHA256 [digest.SHA256Size]byte
}

// NewContainer wraps data with its digests. The SHA-1 slot stays zero unless
// embedSHA1 is set, which is how files written by earlier releases look.
func NewContainer(data []byte, embedSHA1 bool) *Container {
	c := &Container{
		Data:   data,
		SHA256: digest.SHA256(data),
	}

	if embedSHA1 {
		c.SHA1 = digest.SHA1(data)
	}

	return c
}

// MarshalBinary lays the container out in wire order.
func (c *Container) MarshalBinary() ([]byte, error) {
	if len(c.Data) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(c.Data))
	}

	buf := make([]byte, Overhead+len(c.Data))

	binary.LittleEndian.PutUint32(buf, uint32(len(c.Data))) //nolint:gosec // bounded above
	copy(buf[lengthSize:], c.SHA1[:])
	copy(buf[dataOffset:], c.Data)
	copy(buf[dataOffset+len(c.Data):], c.SHA256[:])

	return buf, nil
}

// UnmarshalBinary parses buf. Data aliases buf. Bytes after the SHA-256 slot are ignored.
func (c *Container) UnmarshalBinary(buf []byte) error {
	if len(buf) < Overhead {
		return fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncated, len(buf), Overhead)
	}

	length := int64(int32(binary.LittleEndian.Uint32(buf))) //nolint:gosec // the field is a signed int32
	if length < 0 {
		return fmt.Errorf("%w: negative length %d", ErrTruncated, length)
	}

	if int64(len(buf)) < int64(Overhead)+length {
		return fmt.Errorf("%w: length field %d exceeds %d available bytes", ErrTruncated, length, len(buf)-Overhead)
	}

	end := dataOffset + int(length)

	copy(c.SHA1[:], buf[lengthSize:dataOffset])
	c.Data = buf[dataOffset:end]
	copy(c.SHA256[:], buf[end:end+digest.SHA256Size])

	return nil
}

// Verification reports how the embedded digests compare to the data.
type Verification struct {
	// SHA1Unset is true when the SHA-1 slot is all zeros and was not compared.
	SHA1Unset bool
	// SHA1 is true when the embedded SHA-1 matches.
	SHA1 bool
	// SHA256 is true when the embedded SHA-256 matches.
	SHA256 bool
}

// OK reports whether every populated digest matched.
func (v Verification) OK() bool {
	return v.SHA256 && (v.SHA1 || v.SHA1Unset)
}

// Verify recomputes both digests over Data.
func (c *Container) Verify() Verification {
	var zero [digest.SHA1Size]byte

	sha1Sum := digest.SHA1(c.Data)
	sha256Sum := digest.SHA256(c.Data)

	return Verification{
		SHA1Unset: c.SHA1 == zero,
		SHA1:      bytes.Equal(c.SHA1[:], sha1Sum[:]),
		SHA256:    bytes.Equal(c.SHA256[:], sha256Sum[:]),
	}
}
