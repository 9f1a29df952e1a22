package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "lifehub/pkg/jwt"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo, *jwtpkg.Manager) {
	t.Helper()
	users := newFakeUserRepo()
	manager := jwtpkg.NewManager("test-secret", "lifehub", time.Hour)
	return NewAuthService(users, manager), users, manager
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _, manager := newAuthFixture(t)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "alice", "hunter22", "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "alice", user.Username)
	assert.NotEqual(t, "hunter22", user.Password)

	claims, err := manager.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)

	loggedIn, token, err := svc.Login(ctx, "alice", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, users, _ := newAuthFixture(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice", "hunter22", "Alice")
	require.NoError(t, err)

	_, _, err = svc.Register(ctx, "alice", "different", "Other Alice")
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// The failed registration must not leave a row behind.
	assert.Len(t, users.users, 1)
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice", "hunter22", "Alice")
	require.NoError(t, err)

	_, _, wrongPassword := svc.Login(ctx, "alice", "wrong")
	_, _, unknownUser := svc.Login(ctx, "nobody", "whatever")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, ErrInvalidCredentials)
}

func TestProfile(t *testing.T) {
	svc, _, _ := newAuthFixture(t)
	ctx := context.Background()

	user, _, err := svc.Register(ctx, "alice", "hunter22", "Alice")
	require.NoError(t, err)

	profile, err := svc.Profile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", profile.Name)
}
