package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-web-server/internal/config"
	"github.com/MKhiriev/go-web-server/internal/handler"
	"github.com/MKhiriev/go-web-server/internal/logger"
	"github.com/MKhiriev/go-web-server/internal/server"
	"github.com/MKhiriev/go-web-server/internal/service"
	"github.com/MKhiriev/go-web-server/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-web-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("static_dir", cfg.Server.StaticDir).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Bool("enable_metrics", cfg.Server.EnableMetrics).
		Str("cookie_name", cfg.Cookie.Name).
		Dur("token_duration", cfg.App.TokenDuration).
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)

	if cfg.App.DevSeed {
		if err = service.SeedDemoAccount(log.WithContext(ctx), services.AuthService); err != nil {
			log.Fatal().Err(err).Msg("error seeding demo account")
		}
		log.Warn().Str("login", service.DemoLogin).Msg("demo account is enabled")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err := srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
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
