package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserSvc(t *testing.T) (UserService, *testEnv) {
	env := newTestEnv(t)
	return NewUserService(env.users, "test-secret", time.Hour), env
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, _ := newUserSvc(t)
	ctx := context.Background()

	user, fields, err := svc.Register(ctx, "alice", "alice@example.com", "password1")
	require.NoError(t, err)
	require.Nil(t, fields)
	assert.NotEqual(t, "password1", user.Password) // 只存哈希

	token, err := svc.Authenticate(ctx, "alice", "password1")
	require.NoError(t, err)

	claims, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	svc, _ := newUserSvc(t)
	ctx := context.Background()

	_, fields, err := svc.Register(ctx, "alice", "", "password1")
	require.NoError(t, err)
	require.Nil(t, fields)

	_, fields, err = svc.Register(ctx, "alice", "", "password2")
	require.NoError(t, err)
	require.NotNil(t, fields)
	assert.Contains(t, fields, "username")
}

func TestAuthenticateRejectsBadPassword(t *testing.T) {
	svc, _ := newUserSvc(t)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "alice", "", "password1")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "nobody", "password1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenRejectsTampered(t *testing.T) {
	svc, _ := newUserSvc(t)
	other := NewUserService(nil, "other-secret", time.Hour)

	_, _, err := svc.Register(context.Background(), "alice", "", "password1")
	require.NoError(t, err)
	token, err := svc.Authenticate(context.Background(), "alice", "password1")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}
