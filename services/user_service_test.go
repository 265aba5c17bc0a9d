package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamchat/models"
)

func TestUserRegisterAndAuthenticate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user, err := env.users.Register(ctx, " Alice ", "Alice@Example.com", "s3cretpass", "")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "s3cretpass", user.PasswordHash)

	got, err := env.users.Authenticate(ctx, "alice@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	var stored models.User
	require.NoError(t, env.db.Where("id = ?", user.ID).Take(&stored).Error)
	assert.False(t, stored.LastLogin.IsZero())

	_, err = env.users.Authenticate(ctx, "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = env.users.Authenticate(ctx, "nobody@example.com", "s3cretpass")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUserRegister_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.users.Register(ctx, "Alice", "alice@example.com", "s3cretpass", "")
	require.NoError(t, err)

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"missing name", "", "x@example.com", "s3cretpass"},
		{"bad email", "X", "not-an-email", "s3cretpass"},
		{"short password", "X", "x@example.com", "short"},
		{"duplicate email", "Other", "ALICE@example.com", "s3cretpass"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.users.Register(ctx, tt.userName, tt.email, tt.password, "")
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestUserCurrent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")

	profile, err := env.users.Current(ctx, alice)
	require.NoError(t, err)
	require.NotNil(t, profile)
	assert.Equal(t, "alice", profile.Name)

	profile, err = env.users.Current(ctx, Anonymous)
	require.NoError(t, err)
	assert.Nil(t, profile)

	profile, err = env.users.Current(ctx, Identity("deleted-user"))
	require.NoError(t, err)
	assert.Nil(t, profile)
}
