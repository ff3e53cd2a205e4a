package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := NewPasswordHasher()

	encoded, err := hasher.Hash("123")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	ok, err := hasher.Verify("123", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPasswordHasher_WrongPassword(t *testing.T) {
	hasher := NewPasswordHasher()

	encoded, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)

	ok, err := hasher.Verify("wrong password", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewPasswordHasher()

	first, err := hasher.Hash("123")
	require.NoError(t, err)
	second, err := hasher.Hash("123")
	require.NoError(t, err)

	// fresh random salt per call, so identical passwords never share a hash
	assert.NotEqual(t, first, second)
}

func TestPasswordHasher_MalformedEncodedHash(t *testing.T) {
	hasher := NewPasswordHasher()

	tests := []struct {
		name    string
		encoded string
	}{
		{name: "empty", encoded: ""},
		{name: "not a phc string", encoded: "plaintext"},
		{name: "wrong algorithm", encoded: "$bcrypt$v=19$m=65536,t=1,p=4$c2FsdA$ZGlnZXN0"},
		{name: "bad salt encoding", encoded: "$argon2id$v=19$m=65536,t=1,p=4$!!!$ZGlnZXN0"},
		{name: "bad digest encoding", encoded: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hasher.Verify("123", tt.encoded)
			assert.ErrorIs(t, err, ErrMalformedHash)
		})
	}
}
