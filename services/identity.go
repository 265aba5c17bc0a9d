package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"teamchat/models"
)

// IdentityProvider resolves identity profiles. Profile returns nil without
// an error when the identity no longer exists.
type IdentityProvider interface {
	Profile(ctx context.Context, userID string) (*models.Profile, error)
}

// UserDirectory is the IdentityProvider backed by the users table.
type UserDirectory struct {
	db *gorm.DB
}

func NewUserDirectory(db *gorm.DB) *UserDirectory {
	return &UserDirectory{db: db}
}

func (d *UserDirectory) Profile(ctx context.Context, userID string) (*models.Profile, error) {
	var user models.User
	err := d.db.WithContext(ctx).Where("id = ?", userID).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading user %s: %w", userID, err)
	}
	profile := user.Profile()
	return &profile, nil
}
