// database/migrate.go - Database Migration Runner
package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"teamchat/models"
)

// RunMigrations creates or updates every table the service uses.
func RunMigrations(db *gorm.DB, log zerolog.Logger) error {
	log.Info().Msg("running database migrations")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Workspace{},
		&models.Member{},
		&models.Channel{},
	); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	// The composite unique index is declared on models.Member; make sure it
	// exists on databases migrated before it was added.
	if !db.Migrator().HasIndex(&models.Member{}, "idx_members_workspace_user") {
		if err := db.Migrator().CreateIndex(&models.Member{}, "idx_members_workspace_user"); err != nil {
			return fmt.Errorf("creating member uniqueness index: %w", err)
		}
	}

	log.Info().Msg("migrations completed")
	return nil
}
