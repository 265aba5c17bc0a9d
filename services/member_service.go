// services/member_service.go - Workspace membership queries
package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"teamchat/models"
)

type MemberService struct {
	db         *gorm.DB
	identities IdentityProvider
	log        zerolog.Logger
}

func NewMemberService(db *gorm.DB, identities IdentityProvider, log zerolog.Logger) *MemberService {
	return &MemberService{
		db:         db,
		identities: identities,
		log:        log.With().Str("service", "member").Logger(),
	}
}

// Current returns the caller's own member row, or nil.
func (s *MemberService) Current(ctx context.Context, caller Caller, workspaceID string) (*models.Member, error) {
	userID, ok := identityOf(caller)
	if !ok {
		return nil, nil
	}
	return findMember(s.db.WithContext(ctx), workspaceID, userID)
}

// ListForWorkspace returns every member of the workspace with its profile.
// Only members may list; members whose identity no longer resolves are
// left out.
func (s *MemberService) ListForWorkspace(ctx context.Context, caller Caller, workspaceID string) ([]models.MemberWithUser, error) {
	result := []models.MemberWithUser{}
	db := s.db.WithContext(ctx)

	member, err := isMember(db, caller, workspaceID)
	if err != nil {
		return nil, err
	}
	if !member {
		return result, nil
	}

	var members []models.Member
	if err := db.Where("workspace_id = ?", workspaceID).Order("created_at ASC").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}

	for _, m := range members {
		profile, err := s.identities.Profile(ctx, m.UserID)
		if err != nil {
			return nil, err
		}
		if profile == nil {
			s.log.Debug().
				Str("workspace_id", workspaceID).
				Str("user_id", m.UserID).
				Msg("skipping member without identity")
			continue
		}
		result = append(result, models.MemberWithUser{Member: m, User: *profile})
	}
	return result, nil
}
