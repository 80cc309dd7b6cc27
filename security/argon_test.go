package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgonHashRoundTrip(t *testing.T) {
	a := NewArgon()

	encoded, err := a.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))
	assert.NotContains(t, encoded, "correct horse battery staple")

	ok, err := a.Verify("correct horse battery staple", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.Verify("wrong password", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgonHashSaltedPerCall(t *testing.T) {
	a := NewArgon()

	first, err := a.Hash("same password")
	require.NoError(t, err)

	second, err := a.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	for _, encoded := range []string{first, second} {
		ok, err := a.Verify("same password", encoded)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestArgonVerifyRejectsGarbage(t *testing.T) {
	a := NewArgon()

	for _, bad := range []string{
		"",
		"not a hash",
		"$argon2id$v=19$m=65536,t=3,p=2$short",
		"$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
	} {
		_, err := a.Verify("whatever", bad)
		assert.Error(t, err, "input %q", bad)
	}
}
