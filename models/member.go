// models/member.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "admin"
	MemberRoleMember MemberRole = "member"
)

// Member ties an identity to a workspace. The composite unique index backs
// the one-row-per-(workspace, user) rule when two joins race.
type Member struct {
	ID          string     `json:"id" gorm:"primaryKey;size:36"`
	WorkspaceID string     `json:"workspace_id" gorm:"not null;size:36;uniqueIndex:idx_members_workspace_user"`
	UserID      string     `json:"user_id" gorm:"not null;size:36;uniqueIndex:idx_members_workspace_user;index:idx_members_user"`
	Role        MemberRole `json:"role" gorm:"not null;size:16;default:'member'"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Member) TableName() string {
	return "members"
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func (m *Member) IsAdmin() bool {
	return m != nil && m.Role == MemberRoleAdmin
}

// MemberWithUser is a member row joined with the profile of its identity.
type MemberWithUser struct {
	Member
	User Profile `json:"user"`
}
