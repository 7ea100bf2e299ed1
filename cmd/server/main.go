package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"github.com/kotche/noteshare/infrastructure/metrics"
	"github.com/kotche/noteshare/infrastructure/tracing"
	"github.com/kotche/noteshare/internal/app/server"
	"github.com/kotche/noteshare/internal/config"
	grants_repo "github.com/kotche/noteshare/internal/repository/grants"
	notes_repo "github.com/kotche/noteshare/internal/repository/notes"
	users_repo "github.com/kotche/noteshare/internal/repository/users"
	auth_serv "github.com/kotche/noteshare/internal/service/auth"
	"github.com/kotche/noteshare/internal/service/events"
	grants_serv "github.com/kotche/noteshare/internal/service/grants"
	notes_serv "github.com/kotche/noteshare/internal/service/notes"
	token_serv "github.com/kotche/noteshare/internal/service/token"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	metrics.Init()
	metrics.StartMetricsServer(cfg.MetricsConfig.Port)

	connStr := cfg.PostgresConfig.DSN()
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalln(err)
	}

	if err = runMigrations(connStr); err != nil {
		log.Fatalln("migration error:", err)
	}

	if cfg.TracingConfig.Endpoint != "" {
		_, cleanup, err := tracing.InitTracing(cfg.TracingConfig.Endpoint)
		if err != nil {
			log.Fatal(err)
		}
		defer cleanup()
	}

	var publisher events.Publisher = events.NewNopPublisher()
	if cfg.KafkaConfig.Enabled() {
		publisher, err = events.NewKafkaPublisher(cfg.KafkaConfig.Brokers, cfg.KafkaConfig.Topic, 1, 1)
		if err != nil {
			log.Fatalf("failed to initialize kafka: %v", err)
		}
		defer publisher.Close()
	}

	usersRepo := users_repo.NewDefaultRepository(db)
	notesRepo := notes_repo.NewDefaultRepository(db)
	grantsRepo := grants_repo.NewDefaultRepository(db)

	tokenServ := token_serv.NewJWTService(
		cfg.JWTConfig.SecretKey,
		time.Duration(cfg.JWTConfig.TTLMinutes)*time.Minute,
		usersRepo,
	)
	authServ := auth_serv.NewDefaultService(usersRepo, tokenServ)
	notesServ := notes_serv.NewDefaultService(notesRepo)
	grantsServ := grants_serv.NewDefaultService(usersRepo, notesRepo, grantsRepo, publisher)

	srv := server.New(authServ, notesServ, grantsServ, tokenServ)
	if err = srv.Run(":" + cfg.HTTPConfig.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func runMigrations(dbURL string) error {
	m, err := migrate.New(
		"file://migrations",
		dbURL,
	)
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}

	if err = m.Up(); !errors.Is(err, migrate.ErrNoChange) && err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
