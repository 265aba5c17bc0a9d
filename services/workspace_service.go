// services/workspace_service.go - Workspace lifecycle and join codes
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"teamchat/models"
)

type WorkspaceService struct {
	db      *gorm.DB
	log     zerolog.Logger
	newCode func() (string, error)
}

func NewWorkspaceService(db *gorm.DB, log zerolog.Logger) *WorkspaceService {
	return &WorkspaceService{
		db:      db,
		log:     log.With().Str("service", "workspace").Logger(),
		newCode: GenerateJoinCode,
	}
}

// ================== WORKSPACE CRUD OPERATIONS ==================

// Create makes a workspace with the caller as its first admin and a
// "general" channel. All three rows are written in one transaction.
func (s *WorkspaceService) Create(ctx context.Context, caller Caller, name string) (string, error) {
	userID, ok := identityOf(caller)
	if !ok {
		return "", unauthorized("workspace", "")
	}

	name, err := validateWorkspaceName(name)
	if err != nil {
		return "", err
	}

	joinCode, err := s.newCode()
	if err != nil {
		return "", err
	}

	workspace := &models.Workspace{
		Name:     name,
		UserID:   userID,
		JoinCode: joinCode,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(workspace).Error; err != nil {
			return fmt.Errorf("creating workspace: %w", err)
		}

		admin := &models.Member{
			WorkspaceID: workspace.ID,
			UserID:      userID,
			Role:        models.MemberRoleAdmin,
		}
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("creating admin member: %w", err)
		}

		general := &models.Channel{
			WorkspaceID: workspace.ID,
			Name:        models.DefaultChannelName,
		}
		if err := tx.Create(general).Error; err != nil {
			return fmt.Errorf("creating default channel: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.log.Info().
		Str("workspace_id", workspace.ID).
		Str("user_id", userID).
		Msg("workspace created")
	return workspace.ID, nil
}

// Rename patches the workspace name (admin only).
func (s *WorkspaceService) Rename(ctx context.Context, caller Caller, id, name string) (string, error) {
	name, nameErr := validateWorkspaceName(name)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := requireAdmin(tx, caller, "workspace", id, id); err != nil {
			return err
		}
		if nameErr != nil {
			return nameErr
		}

		res := tx.Model(&models.Workspace{}).Where("id = ?", id).Update("name", name)
		if res.Error != nil {
			return fmt.Errorf("renaming workspace: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return notFound("workspace", id)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Remove deletes the workspace together with all of its members and
// channels (admin only).
func (s *WorkspaceService) Remove(ctx context.Context, caller Caller, id string) (string, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := requireAdmin(tx, caller, "workspace", id, id); err != nil {
			return err
		}

		if err := tx.Where("workspace_id = ?", id).Delete(&models.Member{}).Error; err != nil {
			return fmt.Errorf("deleting members: %w", err)
		}
		if err := tx.Where("workspace_id = ?", id).Delete(&models.Channel{}).Error; err != nil {
			return fmt.Errorf("deleting channels: %w", err)
		}

		res := tx.Where("id = ?", id).Delete(&models.Workspace{})
		if res.Error != nil {
			return fmt.Errorf("deleting workspace: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return notFound("workspace", id)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.log.Info().Str("workspace_id", id).Msg("workspace removed")
	return id, nil
}

// ================== JOIN CODES ==================

// Join adds the caller as a plain member when joinCode matches the
// workspace's current code. The comparison is case-insensitive.
func (s *WorkspaceService) Join(ctx context.Context, caller Caller, workspaceID, joinCode string) (string, error) {
	userID, ok := identityOf(caller)
	if !ok {
		return "", unauthorized("workspace", workspaceID)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var workspace models.Workspace
		if err := tx.Where("id = ?", workspaceID).Take(&workspace).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("workspace", workspaceID)
			}
			return fmt.Errorf("loading workspace: %w", err)
		}

		if workspace.JoinCode != strings.ToLower(strings.TrimSpace(joinCode)) {
			return &DomainError{Kind: KindInvalidJoinCode, Entity: "workspace", ID: workspaceID}
		}

		existing, err := findMember(tx, workspaceID, userID)
		if err != nil {
			return err
		}
		if existing != nil {
			return &DomainError{Kind: KindAlreadyMember, Entity: "workspace", ID: workspaceID}
		}

		member := &models.Member{
			WorkspaceID: workspaceID,
			UserID:      userID,
			Role:        models.MemberRoleMember,
		}
		if err := tx.Create(member).Error; err != nil {
			// A concurrent join won the race past the lookup above.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return &DomainError{Kind: KindAlreadyMember, Entity: "workspace", ID: workspaceID}
			}
			return fmt.Errorf("creating member: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.log.Info().
		Str("workspace_id", workspaceID).
		Str("user_id", userID).
		Msg("member joined workspace")
	return workspaceID, nil
}

// RotateJoinCode replaces the join code; the previous code stops working
// immediately. Returns the new code.
func (s *WorkspaceService) RotateJoinCode(ctx context.Context, caller Caller, workspaceID string) (string, error) {
	joinCode, err := s.newCode()
	if err != nil {
		return "", err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := requireAdmin(tx, caller, "workspace", workspaceID, workspaceID); err != nil {
			return err
		}

		res := tx.Model(&models.Workspace{}).Where("id = ?", workspaceID).Update("join_code", joinCode)
		if res.Error != nil {
			return fmt.Errorf("rotating join code: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return notFound("workspace", workspaceID)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.log.Info().Str("workspace_id", workspaceID).Msg("join code rotated")
	return joinCode, nil
}

// ================== QUERIES ==================

// ListForCaller returns every workspace the caller belongs to. Anonymous
// callers get an empty list.
func (s *WorkspaceService) ListForCaller(ctx context.Context, caller Caller) ([]models.Workspace, error) {
	workspaces := []models.Workspace{}

	userID, ok := identityOf(caller)
	if !ok {
		return workspaces, nil
	}

	err := s.db.WithContext(ctx).
		Joins("JOIN members ON members.workspace_id = workspaces.id").
		Where("members.user_id = ?", userID).
		Find(&workspaces).Error
	if err != nil {
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}
	return workspaces, nil
}

// GetSummary returns the workspace name and whether the caller is a member.
// It does not require membership; Name is nil for an unknown workspace.
func (s *WorkspaceService) GetSummary(ctx context.Context, caller Caller, id string) (models.WorkspaceSummary, error) {
	var summary models.WorkspaceSummary
	db := s.db.WithContext(ctx)

	member, err := isMember(db, caller, id)
	if err != nil {
		return summary, err
	}
	summary.IsMember = member

	var workspace models.Workspace
	err = db.Where("id = ?", id).Take(&workspace).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return summary, fmt.Errorf("loading workspace: %w", err)
	default:
		summary.Name = &workspace.Name
	}
	return summary, nil
}

// GetDetail returns the full workspace for a member. Anonymous callers get
// Unauthorized; authenticated non-members get nil.
func (s *WorkspaceService) GetDetail(ctx context.Context, caller Caller, id string) (*models.Workspace, error) {
	if _, ok := identityOf(caller); !ok {
		return nil, unauthorized("workspace", id)
	}

	db := s.db.WithContext(ctx)
	member, err := isMember(db, caller, id)
	if err != nil || !member {
		return nil, err
	}

	var workspace models.Workspace
	err = db.Where("id = ?", id).Take(&workspace).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading workspace: %w", err)
	}
	return &workspace, nil
}
