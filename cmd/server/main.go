package main

import (
	"context"
	"fmt"

	"github.com/avkarpov/itemvault/internal/config"
	"github.com/avkarpov/itemvault/internal/handler"
	"github.com/avkarpov/itemvault/internal/logger"
	"github.com/avkarpov/itemvault/internal/server"
	"github.com/avkarpov/itemvault/internal/service"
	"github.com/avkarpov/itemvault/internal/store"
	"github.com/avkarpov/itemvault/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("itemvault-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := connectDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repos := store.NewRepositories(db)
	services := service.NewServices(repos, cfg, log)

	if err = workers.NewWorkers(repos, cfg, log).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("error running startup workers")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func connectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*store.DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return store.NewConnectSQLite(ctx, cfg, log)
	default:
		return store.NewConnectPostgres(ctx, cfg, log)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
