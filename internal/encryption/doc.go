// Package encryption implements the file transform pipeline: a file is packed
// into a length-prefixed container bracketed by its SHA-1 and SHA-256 digests,
// and the container is encrypted with AES-128-CBC and PKCS#7 padding.
//
// The ciphertext carries no header, MAC or IV; key and IV are supplied out of
// band through the configuration. CBC without a MAC is malleable and the
// embedded digests are not keyed, so the format detects accidental corruption
// at best. Digest mismatches are advisory unless strict mode is enabled.
package encryption
