// Package crypto implements the password hashing primitives used by the
// authentication service. Hashing is delegated to Argon2id, a memory-hard
// KDF, so stored credentials resist offline brute-force attacks even if the
// database leaks.
package crypto

// PasswordHasher derives and verifies password hashes.
//
// Implementations must be safe for concurrent use: the authentication
// service calls Hash and Verify from arbitrary request goroutines.
type PasswordHasher interface {
	// Hash derives a salted hash from the plaintext password and returns it
	// in an encoded, self-describing string form suitable for storage.
	Hash(password string) (string, error)

	// Verify reports whether the plaintext password matches the previously
	// encoded hash. A malformed encoded value yields an error, not a
	// silent mismatch.
	Verify(password, encoded string) (bool, error)
}
