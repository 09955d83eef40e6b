// Package main implements a small seeding utility that creates the initial
// admin user. It is idempotent: re-running against a seeded database is a
// no-op.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"blogapi/internal/config"
	"blogapi/internal/domain"
	"blogapi/internal/platform/logger"
	"blogapi/internal/platform/postgres"
	"blogapi/internal/service/auth"
	"blogapi/internal/store"
)

func main() {
	email := flag.String("email", "admin@example.com", "email for the admin user")
	name := flag.String("name", "Admin", "display name for the admin user")
	password := flag.String("password", "", "password for the admin user (required)")
	flag.Parse()

	if *password == "" {
		log.Fatal("the -password flag is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Server)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Error("error closing database connection", "error", err)
		}
	}()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	if err := seedAdmin(ctx, db, appLogger, *email, *name, *password); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
}

// seedAdmin hashes the password and inserts the admin user. An existing user
// with the same email is reported, not treated as a failure.
func seedAdmin(
	ctx context.Context,
	db *sql.DB,
	appLogger *slog.Logger,
	email, name, password string,
) error {
	hasher := auth.NewBcryptVerifier()
	hashed, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(email, name, hashed, true)
	if err != nil {
		return fmt.Errorf("invalid admin user: %w", err)
	}

	userStore := postgres.NewPostgresUserStore(db, appLogger)
	if err := userStore.Create(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			fmt.Printf("Admin user %s already exists, nothing to do.\n", email)
			return nil
		}
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	fmt.Printf("Admin user %s created with ID %d.\n", email, user.ID)
	return nil
}
