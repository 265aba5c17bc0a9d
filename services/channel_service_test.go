package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamchat/models"
)

func TestNormalizeChannelName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My  Channel", "my-channel"},
		{"  multi   space  ", "multi-space"},
		{"General", "general"},
		{"tabs\tand\nnewlines", "tabs-and-newlines"},
		{"already-normal", "already-normal"},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeChannelName(tt.in))
		})
	}
}

func TestChannelCreate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	wsID, _ := env.createWorkspace(t, alice, "Engineering")

	id, err := env.channels.Create(ctx, alice, wsID, "My  Channel")
	require.NoError(t, err)

	var ch models.Channel
	require.NoError(t, env.db.Where("id = ?", id).Take(&ch).Error)
	assert.Equal(t, "my-channel", ch.Name)
	assert.Equal(t, wsID, ch.WorkspaceID)

	_, err = env.channels.Create(ctx, alice, wsID, "   ")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	// No member row in an unknown workspace, so not an admin there.
	_, err = env.channels.Create(ctx, alice, "missing", "random")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestChannelRenameAndRemove(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	wsID, _ := env.createWorkspace(t, alice, "Engineering")
	chID, err := env.channels.Create(ctx, alice, wsID, "random")
	require.NoError(t, err)

	id, err := env.channels.Rename(ctx, alice, chID, "  Off   Topic ")
	require.NoError(t, err)
	assert.Equal(t, chID, id)

	ch, err := env.channels.GetByID(ctx, alice, chID)
	require.NoError(t, err)
	require.NotNil(t, ch)
	assert.Equal(t, "off-topic", ch.Name)

	_, err = env.channels.Rename(ctx, alice, chID, "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = env.channels.Rename(ctx, alice, "missing", "x")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.channels.Remove(ctx, alice, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = env.channels.Remove(ctx, Anonymous, chID)
	assert.ErrorIs(t, err, ErrUnauthorized)

	id, err = env.channels.Remove(ctx, alice, chID)
	require.NoError(t, err)
	assert.Equal(t, chID, id)

	ch, err = env.channels.GetByID(ctx, alice, chID)
	require.NoError(t, err)
	assert.Nil(t, ch)
}

func TestChannelReads_SoftFailures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "alice")
	carol := env.createUser(t, "carol")
	wsID, _ := env.createWorkspace(t, alice, "Engineering")

	var general models.Channel
	require.NoError(t, env.db.Where("workspace_id = ?", wsID).Take(&general).Error)

	for _, caller := range []Caller{Anonymous, carol} {
		ch, err := env.channels.GetByID(ctx, caller, general.ID)
		require.NoError(t, err)
		assert.Nil(t, ch)

		list, err := env.channels.ListForWorkspace(ctx, caller, wsID)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	}

	list, err := env.channels.ListForWorkspace(ctx, alice, "missing")
	require.NoError(t, err)
	assert.Empty(t, list)
}
