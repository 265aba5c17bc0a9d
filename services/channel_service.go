// services/channel_service.go - Channels inside a workspace
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"teamchat/models"
)

type ChannelService struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewChannelService(db *gorm.DB, log zerolog.Logger) *ChannelService {
	return &ChannelService{
		db:  db,
		log: log.With().Str("service", "channel").Logger(),
	}
}

// Create adds a channel to the workspace (admin only). The name is stored
// normalized: "My  Channel" becomes "my-channel".
func (s *ChannelService) Create(ctx context.Context, caller Caller, workspaceID, name string) (string, error) {
	channel := &models.Channel{WorkspaceID: workspaceID}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := requireAdmin(tx, caller, "workspace", workspaceID, workspaceID); err != nil {
			return err
		}

		normalized, err := validateChannelName(name)
		if err != nil {
			return err
		}
		channel.Name = normalized

		if err := tx.Create(channel).Error; err != nil {
			return fmt.Errorf("creating channel: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.log.Info().
		Str("workspace_id", workspaceID).
		Str("channel_id", channel.ID).
		Str("name", channel.Name).
		Msg("channel created")
	return channel.ID, nil
}

// Rename changes the channel name, normalized the same way as Create. The
// channel is resolved first, then the caller must be an admin of its
// workspace.
func (s *ChannelService) Rename(ctx context.Context, caller Caller, id, name string) (string, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		channel, err := s.loadForAdmin(tx, caller, id)
		if err != nil {
			return err
		}

		normalized, err := validateChannelName(name)
		if err != nil {
			return err
		}

		if err := tx.Model(channel).Update("name", normalized).Error; err != nil {
			return fmt.Errorf("renaming channel: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// Remove deletes a single channel. Same authorization as Rename.
func (s *ChannelService) Remove(ctx context.Context, caller Caller, id string) (string, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		channel, err := s.loadForAdmin(tx, caller, id)
		if err != nil {
			return err
		}

		if err := tx.Delete(channel).Error; err != nil {
			return fmt.Errorf("deleting channel: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	s.log.Info().Str("channel_id", id).Msg("channel removed")
	return id, nil
}

// GetByID returns the channel when the caller is a member of its workspace,
// nil otherwise.
func (s *ChannelService) GetByID(ctx context.Context, caller Caller, id string) (*models.Channel, error) {
	if _, ok := identityOf(caller); !ok {
		return nil, nil
	}

	db := s.db.WithContext(ctx)
	channel, err := loadChannel(db, id)
	if err != nil || channel == nil {
		return nil, err
	}

	member, err := isMember(db, caller, channel.WorkspaceID)
	if err != nil || !member {
		return nil, err
	}
	return channel, nil
}

// ListForWorkspace returns every channel of the workspace for members and
// an empty list for everyone else.
func (s *ChannelService) ListForWorkspace(ctx context.Context, caller Caller, workspaceID string) ([]models.Channel, error) {
	channels := []models.Channel{}
	db := s.db.WithContext(ctx)

	member, err := isMember(db, caller, workspaceID)
	if err != nil {
		return nil, err
	}
	if !member {
		return channels, nil
	}

	if err := db.Where("workspace_id = ?", workspaceID).Order("created_at ASC").Find(&channels).Error; err != nil {
		return nil, fmt.Errorf("listing channels: %w", err)
	}
	return channels, nil
}

func (s *ChannelService) loadForAdmin(tx *gorm.DB, caller Caller, id string) (*models.Channel, error) {
	if _, ok := identityOf(caller); !ok {
		return nil, unauthorized("channel", id)
	}

	channel, err := loadChannel(tx, id)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, notFound("channel", id)
	}

	if _, err := requireAdmin(tx, caller, "channel", id, channel.WorkspaceID); err != nil {
		return nil, err
	}
	return channel, nil
}

func loadChannel(tx *gorm.DB, id string) (*models.Channel, error) {
	var channel models.Channel
	err := tx.Where("id = ?", id).Take(&channel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading channel: %w", err)
	}
	return &channel, nil
}
