package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticationValidateKey(t *testing.T) {
	authentication, err := NewAuthentication("super-secret")
	require.NoError(t, err)

	assert.NoError(t, authentication.ValidateKey("super-secret"))
	assert.Error(t, authentication.ValidateKey("wrong"))
	assert.Error(t, authentication.ValidateKey(""))
}

// some hosting platforms inject '@' into env values; the configured secret
// must match with those stripped
func TestAuthenticationStripsAtSigns(t *testing.T) {
	authentication, err := NewAuthentication("@super@-secret@")
	require.NoError(t, err)

	assert.NoError(t, authentication.ValidateKey("super-secret"))
	assert.Error(t, authentication.ValidateKey("@super@-secret@"))
}

func TestAuthenticationEmptySecret(t *testing.T) {
	_, err := NewAuthentication("")
	assert.Error(t, err)

	_, err = NewAuthentication("@@@")
	assert.Error(t, err)
}
