package encryption

// Operation selects the direction of a transform.
type Operation int

const (
	// Decrypt turns ciphertext back into the original file.
	Decrypt Operation = iota
	// Encrypt packs and encrypts a file.
	Encrypt
)

func (o Operation) String() string {
	switch o {
	case Decrypt:
		return "decrypt"
	case Encrypt:
		return "encrypt"
	default:
		return "unknown"
	}
}
