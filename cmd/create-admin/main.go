package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"trendsight/config"
	"trendsight/internal/db"
	"trendsight/internal/logging"
	"trendsight/internal/models"
)

// Seeds (or resets) an administrator account on the premium plan.
func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		slog.Error("[CreateAdmin] ADMIN_EMAIL and ADMIN_PASSWORD are required")
		os.Exit(1)
	}

	db.InitDynamoDB()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("[CreateAdmin] Failed to hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Plan:         models.PlanPremium,
		CreatedAt:    time.Now().UTC(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.UpsertUser(ctx, user); err != nil {
		slog.Error("[CreateAdmin] Failed to create admin account", slog.String("error", err.Error()))
		os.Exit(1)
	}

	stored, err := db.GetUserByEmail(ctx, email)
	if err != nil {
		slog.Error("[CreateAdmin] Account not found after creation", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("[CreateAdmin] Admin account ready",
		slog.String("email", stored.Email),
		slog.String("plan", stored.Plan))
}
