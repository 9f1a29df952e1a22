package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	manager := NewManager("test-secret", "lifehub", time.Hour)
	userID := uuid.New()

	token, err := manager.Generate(userID, "alice", "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "Alice", claims.Name)

	parsed, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestValidateExpired(t *testing.T) {
	manager := NewManager("test-secret", "lifehub", -time.Minute)

	token, err := manager.Generate(uuid.New(), "alice", "Alice")
	require.NoError(t, err)

	_, err = manager.Validate(token)
	assert.Error(t, err)
}

func TestValidateWrongKey(t *testing.T) {
	manager := NewManager("test-secret", "lifehub", time.Hour)
	other := NewManager("other-secret", "lifehub", time.Hour)

	token, err := manager.Generate(uuid.New(), "alice", "Alice")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestValidateWrongIssuer(t *testing.T) {
	manager := NewManager("test-secret", "lifehub", time.Hour)
	other := NewManager("test-secret", "someone-else", time.Hour)

	token, err := manager.Generate(uuid.New(), "alice", "Alice")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestValidateGarbage(t *testing.T) {
	manager := NewManager("test-secret", "lifehub", time.Hour)

	_, err := manager.Validate("not.a.token")
	assert.Error(t, err)
}
