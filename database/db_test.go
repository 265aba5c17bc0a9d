package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"teamchat/models"
)

func TestMigrations_CreateTables(t *testing.T) {
	db := SetupSQLiteTestDB(t)

	for _, table := range []any{&models.User{}, &models.Workspace{}, &models.Member{}, &models.Channel{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}
	assert.True(t, db.Migrator().HasIndex(&models.Member{}, "idx_members_workspace_user"))
	assert.NoError(t, Ping(context.Background(), db))
}

func TestMemberUniqueIndex_RejectsDuplicatePair(t *testing.T) {
	db := SetupSQLiteTestDB(t)

	first := &models.Member{WorkspaceID: "ws-1", UserID: "user-1", Role: models.MemberRoleAdmin}
	require.NoError(t, db.Create(first).Error)

	dup := &models.Member{WorkspaceID: "ws-1", UserID: "user-1", Role: models.MemberRoleMember}
	err := db.Create(dup).Error
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)

	other := &models.Member{WorkspaceID: "ws-2", UserID: "user-1", Role: models.MemberRoleMember}
	assert.NoError(t, db.Create(other).Error)
}
