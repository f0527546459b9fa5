package ports

// PasswordHasher is the one-way credential hashing contract. The digest is
// self-describing (salt and cost are embedded), so verification needs no
// side channel.
type PasswordHasher interface {
	// Hash produces a salted digest of the plaintext.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches digest. A malformed digest
	// is a mismatch, never an error or a panic.
	Verify(plaintext, digest string) bool
}
