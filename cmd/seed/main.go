// cmd/seed - creates demo accounts and a workspace for local development
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"teamchat/config"
	"teamchat/database"
	"teamchat/middleware"
	"teamchat/models"
	"teamchat/services"
)

const demoPassword = "password123"

type demoUser struct {
	name  string
	email string
}

var demoUsers = []demoUser{
	{"Ada Admin", "ada@example.com"},
	{"Bob Builder", "bob@example.com"},
	{"Cy Contractor", "cy@example.com"},
}

func main() {
	if err := run(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	db, err := database.Connect(cfg, log)
	if err != nil {
		return fmt.Errorf("cannot connect to database: %w", err)
	}
	defer database.Close(db)

	ctx := context.Background()
	userSvc := services.NewUserService(db, log)
	workspaceSvc := services.NewWorkspaceService(db, log)
	channelSvc := services.NewChannelService(db, log)
	tokens := middleware.NewTokenAuth(cfg.JWTSecret, cfg.TokenTTL)

	users := make([]*models.User, 0, len(demoUsers))
	for _, du := range demoUsers {
		user, err := userSvc.Register(ctx, du.name, du.email, demoPassword, "")
		if errors.Is(err, services.ErrInvalidArgument) {
			// Already seeded; log in instead.
			user, err = userSvc.Authenticate(ctx, du.email, demoPassword)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", du.email, err)
		}
		users = append(users, user)
	}

	admin := services.Identity(users[0].ID)
	wsID, err := workspaceSvc.Create(ctx, admin, "Engineering")
	if err != nil {
		return fmt.Errorf("create workspace: %w", err)
	}
	if _, err := channelSvc.Create(ctx, admin, wsID, "Random Talk"); err != nil {
		return fmt.Errorf("create channel: %w", err)
	}

	joinCode, err := workspaceSvc.RotateJoinCode(ctx, admin, wsID)
	if err != nil {
		return fmt.Errorf("rotate join code: %w", err)
	}

	// Bob joins; Cy is left outside to try the join flow by hand.
	if _, err := workspaceSvc.Join(ctx, services.Identity(users[1].ID), wsID, joinCode); err != nil {
		return fmt.Errorf("join: %w", err)
	}

	fmt.Printf("workspace  %s  (Engineering)\n", wsID)
	fmt.Printf("join code  %s\n\n", joinCode)
	for _, u := range users {
		token, err := tokens.Issue(u)
		if err != nil {
			return fmt.Errorf("issue token: %w", err)
		}
		fmt.Printf("%-18s %s\n  token: %s\n", u.Email, u.ID, token)
	}
	fmt.Printf("\nall demo passwords: %s\n", demoPassword)
	return nil
}
