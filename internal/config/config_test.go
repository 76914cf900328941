package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/cryptkit/internal/config"
)

func valid() config.Transform {
	return config.Transform{
		Parallel: 1,
		Suffixes: config.Suffixes{Encrypt: ".enc"},
		Files:    []string{"a.txt"},
	}
}

func TestValidateTransform(t *testing.T) {
	t.Parallel()

	keyFile := filepath.Join(t.TempDir(), "key")
	require.NoError(t, os.WriteFile(keyFile, []byte(config.DefaultKey+"\n"), 0o600))

	tests := []struct {
		name    string
		mutate  func(*config.Transform)
		wantErr string
	}{
		{name: "defaults", mutate: func(*config.Transform) {}},
		{name: "explicit key", mutate: func(c *config.Transform) { c.Key = config.DefaultKey }},
		{name: "key file", mutate: func(c *config.Transform) { c.KeyFile = keyFile }},
		{
			name:    "key and key file",
			mutate:  func(c *config.Transform) { c.Key = config.DefaultKey; c.KeyFile = keyFile },
			wantErr: "--key is mutually exclusive",
		},
		{name: "short key", mutate: func(c *config.Transform) { c.Key = "abcd" }, wantErr: "--key must be 16 hex-encoded bytes"},
		{
			name:    "non hex key",
			mutate:  func(c *config.Transform) { c.Key = "zz797365637265746b65793132333435" },
			wantErr: "--key must be 16 hex-encoded bytes",
		},
		{
			name:    "0x prefixed key",
			mutate:  func(c *config.Transform) { c.Key = "0x797365637265746b65793132333435" },
			wantErr: "--key must be 16 hex-encoded bytes",
		},
		{name: "missing key file", mutate: func(c *config.Transform) { c.KeyFile = "/does/not/exist" }, wantErr: "--key-file"},
		{name: "bad iv", mutate: func(c *config.Transform) { c.IV = "00" }, wantErr: "--iv must be 16 hex-encoded bytes"},
		{name: "no files", mutate: func(c *config.Transform) { c.Files = nil }, wantErr: "files"},
		{name: "zero parallel", mutate: func(c *config.Transform) { c.Parallel = 0 }, wantErr: "--parallel"},
		{
			name:    "output with many files",
			mutate:  func(c *config.Transform) { c.Output = "out"; c.Files = []string{"a", "b"} },
			wantErr: "--output requires exactly one file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(&cfg)

			err := config.Config{}.Validate(&cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.True(t, errors.Is(err, config.ErrUsage))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDisplay(t *testing.T) {
	t.Parallel()

	assert.False(t, config.Config{}.Display())
	assert.True(t, config.Config{Show: true}.Display())
}

func TestKeyBytes(t *testing.T) {
	t.Parallel()

	cfg := valid()

	key, err := cfg.KeyBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("mysecretkey12345"), key)

	iv, err := cfg.IVBytes()
	require.NoError(t, err)
	assert.Equal(t, make([]byte, config.IVSize), iv)

	keyFile := filepath.Join(t.TempDir(), "key")
	require.NoError(t, os.WriteFile(keyFile, []byte("  000102030405060708090a0b0c0d0e0f\n"), 0o600))

	cfg.KeyFile = keyFile

	key, err = cfg.KeyBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, key)
}

func TestKeyBytesRejectsWrongLength(t *testing.T) {
	t.Parallel()

	keyFile := filepath.Join(t.TempDir(), "key")
	require.NoError(t, os.WriteFile(keyFile, []byte("0001"), 0o600))

	cfg := valid()
	cfg.KeyFile = keyFile

	_, err := cfg.KeyBytes()
	require.ErrorContains(t, err, "key must be 16 bytes")
}

func TestOTP(t *testing.T) {
	t.Parallel()

	o := config.OTP{Key: "6d79", Hex: true, Digits: 6}
	require.NoError(t, config.Config{}.Validate(&o))

	key, err := o.KeyBytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("my"), key)

	o.Digits = 0
	require.ErrorContains(t, config.Config{}.Validate(&o), "--digits must be 1 or greater")

	o.Digits = 11
	require.ErrorContains(t, config.Config{}.Validate(&o), "--digits")

	o = config.OTP{Digits: 6}
	require.ErrorContains(t, config.Config{}.Validate(&o), "--key is a required field")
}

func TestDigest(t *testing.T) {
	t.Parallel()

	d := config.Digest{Algorithm: "sha256", Files: []string{"x"}}
	require.NoError(t, config.Config{}.Validate(&d))

	d.Algorithm = "crc"
	require.ErrorContains(t, config.Config{}.Validate(&d), "--algorithm must be one of")
}

func TestDES(t *testing.T) {
	t.Parallel()

	d := config.DES{Key: "mysecret", Text: "hi"}
	require.NoError(t, config.Config{}.Validate(&d))

	d.Key = "short"
	require.ErrorContains(t, config.Config{}.Validate(&d), "--key")
}
