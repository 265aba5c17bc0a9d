// services/user_service.go - Accounts behind the identity provider
package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"teamchat/models"
)

const minPasswordLength = 8

type UserService struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewUserService(db *gorm.DB, log zerolog.Logger) *UserService {
	return &UserService{
		db:  db,
		log: log.With().Str("service", "user").Logger(),
	}
}

// Register creates an account with a bcrypt password hash.
func (s *UserService) Register(ctx context.Context, name, email, password, image string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, invalidArgument("user", "name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, invalidArgument("user", "email is invalid")
	}
	if len(password) < minPasswordLength {
		return nil, invalidArgument("user", "password must be at least %d characters", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		Image:        strings.TrimSpace(image),
		PasswordHash: string(hash),
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, invalidArgument("user", "email is already registered")
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Authenticate checks an email/password pair. Any mismatch is Unauthorized.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	db := s.db.WithContext(ctx)

	var user models.User
	err := db.Where("email = ?", email).Take(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, unauthorized("user", "")
	}
	if err != nil {
		return nil, fmt.Errorf("loading user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, unauthorized("user", "")
	}

	if err := db.Model(&user).Update("last_login", time.Now().UTC()).Error; err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to record last login")
	}
	return &user, nil
}

// Current returns the caller's profile, or nil when the caller is anonymous
// or no longer exists.
func (s *UserService) Current(ctx context.Context, caller Caller) (*models.Profile, error) {
	userID, ok := identityOf(caller)
	if !ok {
		return nil, nil
	}
	return NewUserDirectory(s.db).Profile(ctx, userID)
}
