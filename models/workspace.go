// models/workspace.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Workspace struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"not null;size:80"`
	UserID    string    `json:"user_id" gorm:"not null;size:36;index"`
	JoinCode  string    `json:"join_code" gorm:"not null;size:6"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Workspace) TableName() string {
	return "workspaces"
}

func (w *Workspace) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// WorkspaceSummary is the membership-independent view used by join pages.
// Name is nil when the workspace does not exist.
type WorkspaceSummary struct {
	Name     *string `json:"name"`
	IsMember bool    `json:"is_member"`
}
