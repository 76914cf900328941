package legacy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/idelchi/cryptkit/internal/legacy"
)

func TestEncryptKnownVector(t *testing.T) {
	t.Parallel()

	d, err := legacy.NewDES("mysecretkey12345")
	require.NoError(t, err)

	assert.Equal(t, "c7CZYz4BCrxLbdAiy0uVVQ==", d.Encrypt("Hello, World!"))

	plain, err := d.Decrypt("c7CZYz4BCrxLbdAiy0uVVQ==")
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", plain)
}

func TestOnlyFirstEightBytesOfKeyMatter(t *testing.T) {
	t.Parallel()

	a, err := legacy.NewDES("mysecret")
	require.NoError(t, err)

	b, err := legacy.NewDES("mysecret-and-more")
	require.NoError(t, err)

	assert.Equal(t, a.Encrypt("payload"), b.Encrypt("payload"))
}

func TestShortKey(t *testing.T) {
	t.Parallel()

	_, err := legacy.NewDES("short")
	require.ErrorIs(t, err, legacy.ErrInvalidKey)
}

func TestDecryptRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	d, err := legacy.NewDES("mysecretkey12345")
	require.NoError(t, err)

	for name, input := range map[string]string{
		"not base64":  "!!!",
		"empty":       "",
		"short block": "AAAA",
		"wrong key":   mustEncrypt(t, "anotherkey", "text"),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := d.Decrypt(input)
			require.ErrorIs(t, err, legacy.ErrInvalidCiphertext)
		})
	}
}

func mustEncrypt(t *testing.T, key, text string) string {
	t.Helper()

	d, err := legacy.NewDES(key)
	require.NoError(t, err)

	return d.Encrypt(text)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	d, err := legacy.NewDES("mysecretkey12345")
	require.NoError(t, err)

	rapid.Check(t, func(t *rapid.T) {
		text := rapid.String().Draw(t, "text")

		out, err := d.Decrypt(d.Encrypt(text))
		if err != nil {
			t.Fatalf("Decrypt: %v", err)
		}

		if out != text {
			t.Fatalf("round trip %q != %q", out, text)
		}
	})
}
