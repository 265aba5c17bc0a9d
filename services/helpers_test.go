package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"teamchat/database"
	"teamchat/models"
)

type testEnv struct {
	db         *gorm.DB
	workspaces *WorkspaceService
	channels   *ChannelService
	members    *MemberService
	users      *UserService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := database.SetupSQLiteTestDB(t)
	log := zerolog.Nop()
	return &testEnv{
		db:         db,
		workspaces: NewWorkspaceService(db, log),
		channels:   NewChannelService(db, log),
		members:    NewMemberService(db, NewUserDirectory(db), log),
		users:      NewUserService(db, log),
	}
}

// createUser inserts a user row directly and returns its identity.
func (e *testEnv) createUser(t *testing.T, name string) Identity {
	t.Helper()
	user := &models.User{Name: name, Email: name + "@example.com"}
	require.NoError(t, e.db.Create(user).Error)
	return Identity(user.ID)
}

func (e *testEnv) createWorkspace(t *testing.T, owner Identity, name string) (string, string) {
	t.Helper()
	id, err := e.workspaces.Create(context.Background(), owner, name)
	require.NoError(t, err)

	var ws models.Workspace
	require.NoError(t, e.db.Where("id = ?", id).Take(&ws).Error)
	return id, ws.JoinCode
}

func (e *testEnv) join(t *testing.T, who Identity, workspaceID, code string) {
	t.Helper()
	_, err := e.workspaces.Join(context.Background(), who, workspaceID, code)
	require.NoError(t, err)
}

func fixedCodes(codes ...string) func() (string, error) {
	i := 0
	return func() (string, error) {
		code := codes[i%len(codes)]
		i++
		return code, nil
	}
}
