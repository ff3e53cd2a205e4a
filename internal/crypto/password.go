// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Artyom Volkhov

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrMalformedHash is returned by Verify when the stored encoded hash cannot
// be parsed back into its parameters, salt, and digest.
var ErrMalformedHash = errors.New("malformed password hash")

// passwordHasher is the private implementation of [PasswordHasher].
type passwordHasher struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target without touching callers.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
	saltLen      int
}

// NewPasswordHasher constructs a [PasswordHasher] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
//   - salt length: 16 bytes
func NewPasswordHasher() PasswordHasher {
	return &passwordHasher{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
		saltLen:      16,
	}
}

// Hash implements [PasswordHasher]. It reads a fresh random salt from the OS
// CSPRNG, derives the Argon2id digest, and encodes everything in the
// PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt-b64>$<digest-b64>
//
// The parameters are embedded in the string, so they can be tightened later
// without invalidating previously stored hashes.
func (p *passwordHasher) Hash(password string) (string, error) {
	salt := make([]byte, p.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("error reading salt from CSPRNG: %w", err)
	}

	digest := argon2.IDKey([]byte(password), salt, p.argonTime, p.argonMemory, p.argonThreads, p.argonKeyLen)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.argonMemory,
		p.argonTime,
		p.argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)

	return encoded, nil
}

// Verify implements [PasswordHasher]. It re-derives the digest from the
// candidate password using the parameters and salt embedded in encoded and
// compares the results in constant time.
func (p *passwordHasher) Verify(password, encoded string) (bool, error) {
	memory, time, threads, salt, digest, err := decodeHash(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(digest)))

	return subtle.ConstantTimeCompare(candidate, digest) == 1, nil
}

// decodeHash parses a PHC-formatted Argon2id string back into its parts.
func decodeHash(encoded string) (memory, time uint32, threads uint8, salt, digest []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	digest, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, ErrMalformedHash
	}

	return memory, time, threads, salt, digest, nil
}
