package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"teamchat/models"
)

// findMember returns the caller's member row for a workspace, or nil when
// there is none.
func findMember(tx *gorm.DB, workspaceID, userID string) (*models.Member, error) {
	var member models.Member
	err := tx.Where("workspace_id = ? AND user_id = ?", workspaceID, userID).
		Take(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("looking up member: %w", err)
	}
	return &member, nil
}

// requireAdmin fails with Unauthorized unless caller is an authenticated
// admin member of the workspace.
func requireAdmin(tx *gorm.DB, caller Caller, entity, entityID, workspaceID string) (string, error) {
	userID, ok := identityOf(caller)
	if !ok {
		return "", unauthorized(entity, entityID)
	}

	member, err := findMember(tx, workspaceID, userID)
	if err != nil {
		return "", err
	}
	if !member.IsAdmin() {
		return "", unauthorized(entity, entityID)
	}
	return userID, nil
}

// isMember reports whether caller is authenticated and holds a member row.
func isMember(tx *gorm.DB, caller Caller, workspaceID string) (bool, error) {
	userID, ok := identityOf(caller)
	if !ok {
		return false, nil
	}
	member, err := findMember(tx, workspaceID, userID)
	if err != nil {
		return false, err
	}
	return member != nil, nil
}
