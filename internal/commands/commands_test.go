package commands_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/cryptkit/internal/commands"
	"github.com/idelchi/cryptkit/internal/config"
	"github.com/idelchi/gogen/pkg/cobraext"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := commands.NewRootCommand(&config.Config{}, "test")

	var out bytes.Buffer

	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), err
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")
	dec := filepath.Join(dir, "notes.out")

	require.NoError(t, os.WriteFile(src, []byte("meeting at noon"), 0o600))

	out, err := execute(t, "encrypt", "--embed-sha1", src)
	require.NoError(t, err)
	assert.Contains(t, out, "notes.txt.enc")

	_, err = execute(t, "decrypt", "--strict", "-o", dec, src+".enc")
	require.NoError(t, err)

	got, err := os.ReadFile(dec)
	require.NoError(t, err)
	assert.Equal(t, "meeting at noon", string(got))
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "notes.txt")

	require.NoError(t, os.WriteFile(src, []byte("meeting at noon"), 0o600))

	_, err := execute(t, "encrypt", src)
	require.NoError(t, err)

	_, err = execute(t, "decrypt", "--strict", "-q", "--key", "000102030405060708090a0b0c0d0e0f", src+".enc")
	require.Error(t, err)
}

func TestKeyFromEnvironment(t *testing.T) {
	t.Setenv("CRYPTKIT_KEY", "zz")

	dir := t.TempDir()
	src := filepath.Join(dir, "a")
	require.NoError(t, os.WriteFile(src, []byte("a"), 0o600))

	_, err := execute(t, "encrypt", src)
	require.ErrorContains(t, err, "--key")
}

func TestEncryptRequiresFiles(t *testing.T) {
	_, err := execute(t, "encrypt")
	require.Error(t, err)
}

func TestHOTP(t *testing.T) {
	out, err := execute(t, "hotp", "--key", "my_secret_key", "--counter", "624675")
	require.NoError(t, err)
	assert.Equal(t, "034371\n", out)

	_, err = execute(t, "hotp", "--key", "my_secret_key", "--digits", "0")
	require.ErrorContains(t, err, "--digits")
}

func TestCRC32AndDigest(t *testing.T) {
	dir := t.TempDir()
	abc := filepath.Join(dir, "abc")
	require.NoError(t, os.WriteFile(abc, []byte("abc"), 0o600))

	out, err := execute(t, "crc32", abc)
	require.NoError(t, err)
	assert.Equal(t, "352441c2  "+abc+"\n", out)

	out, err = execute(t, "digest", "-a", "md5", abc)
	require.NoError(t, err)
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72  "+abc+"\n", out)
}

func TestDES(t *testing.T) {
	out, err := execute(t, "des", "encrypt", "--key", "mysecretkey12345", "Hello, World!")
	require.NoError(t, err)
	assert.Equal(t, "c7CZYz4BCrxLbdAiy0uVVQ==\n", out)

	out, err = execute(t, "des", "decrypt", "--key", "mysecretkey12345", "c7CZYz4BCrxLbdAiy0uVVQ==")
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!\n", out)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "loud", "generate")
	require.Error(t, err)
}

func TestToolSecretsIgnoreEncryptionKey(t *testing.T) {
	t.Setenv("CRYPTKIT_KEY", config.DefaultKey)

	_, err := execute(t, "hotp", "--counter", "1")
	require.ErrorContains(t, err, "--key is a required field")

	_, err = execute(t, "des", "encrypt", "hello")
	require.ErrorContains(t, err, "--key is a required field")
}

func TestToolSecretsFromEnvironment(t *testing.T) {
	t.Setenv("CRYPTKIT_OTP_KEY", "my_secret_key")
	t.Setenv("CRYPTKIT_DES_KEY", "mysecretkey12345")

	out, err := execute(t, "hotp", "--counter", "624675")
	require.NoError(t, err)
	assert.Equal(t, "034371\n", out)

	out, err = execute(t, "des", "encrypt", "Hello, World!")
	require.NoError(t, err)
	assert.Equal(t, "c7CZYz4BCrxLbdAiy0uVVQ==\n", out)
}

func TestShowExitsBeforeRunning(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a")
	require.NoError(t, os.WriteFile(src, []byte("a"), 0o600))

	_, err := execute(t, "encrypt", "--show", src)
	require.True(t, errors.Is(err, cobraext.ErrExitGracefully))
	assert.NoFileExists(t, src+".enc")
}

func TestEncryptDeleteRemovesInput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(src, []byte("classified"), 0o600))

	out, err := execute(t, "encrypt", "-d", src)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted")
	assert.NoFileExists(t, src)

	_, err = execute(t, "decrypt", "--delete", src+".enc")
	require.NoError(t, err)
	assert.NoFileExists(t, src+".enc")

	got, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "classified", string(got))
}

func TestDecryptRefusesToOverwriteInput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "no-suffix")
	require.NoError(t, os.WriteFile(src, []byte("0123456789abcdef"), 0o600))

	_, err := execute(t, "decrypt", "-q", src)
	require.ErrorContains(t, err, "output path is the input path")

	got, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef", string(got))
}

func TestEncryptRejectsPrefixedHexKey(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a")
	require.NoError(t, os.WriteFile(src, []byte("a"), 0o600))

	_, err := execute(t, "encrypt", "--key", "0x797365637265746b65793132333435", src)
	require.ErrorIs(t, err, config.ErrUsage)
	require.ErrorContains(t, err, "--key must be 16 hex-encoded bytes")
}
