package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/m04kA/SMC-CanchaBooking/internal/config"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/session"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/migrations"
	"github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/postgres"
	userRepo "github.com/m04kA/SMC-CanchaBooking/internal/infra/storage/user"
	authService "github.com/m04kA/SMC-CanchaBooking/internal/service/auth"
	"github.com/m04kA/SMC-CanchaBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-CanchaBooking/pkg/logger"
	"github.com/m04kA/SMC-CanchaBooking/pkg/txmanager"
)

// Создание администратора платформы. Флаги имеют приоритет над ADMIN_NAME, ADMIN_EMAIL, ADMIN_PASSWORD.
func main() {
	name := flag.String("name", os.Getenv("ADMIN_NAME"), "имя администратора")
	email := flag.String("email", os.Getenv("ADMIN_EMAIL"), "email администратора")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "пароль администратора")
	configPath := flag.String("config", "config.toml", "путь к config.toml")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: create_admin -name <name> -email <email> -password <password>")
		os.Exit(2)
	}
	if *name == "" {
		*name = "Administrador"
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	wrappedDB := dbmetrics.Wrap(db, nil)

	// Схема должна существовать до первой записи пользователя
	if cfg.Database.ApplyMigrations {
		if _, err := migrations.NewMigrator(wrappedDB, txmanager.NewTransactionManager(wrappedDB), log).Up(ctx); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	// Сессии здесь не выдаются, хранилище в памяти достаточно
	svc := authService.NewService(
		userRepo.NewRepository(wrappedDB),
		session.NewMemoryStore(),
		authService.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.SessionTTL()),
		cfg.Auth.BcryptCost,
		log,
	)

	created, err := svc.EnsureAdmin(ctx, *name, *email, *password)
	if err != nil {
		log.Fatal("Failed to ensure admin: %v", err)
	}
	if created {
		fmt.Printf("Admin %s created\n", *email)
		return
	}
	fmt.Printf("Admin %s already present or promoted\n", *email)
}
