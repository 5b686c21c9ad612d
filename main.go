package main

import (
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sachben91/agent-protocol-risk/adapters/fsstore"
	"github.com/sachben91/agent-protocol-risk/adapters/postgres"
	"github.com/sachben91/agent-protocol-risk/api"
	"github.com/sachben91/agent-protocol-risk/internal/config"
	"github.com/sachben91/agent-protocol-risk/internal/errors"
	"github.com/sachben91/agent-protocol-risk/internal/observability"
	"github.com/sachben91/agent-protocol-risk/ports"
	"github.com/sachben91/agent-protocol-risk/ui"
)

func main() {
	logger := observability.InitLogger("agent-protocol-risk")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	reader, cleanup, err := buildReader(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize record store")
	}
	defer cleanup()

	app, err := ui.NewApp(ui.Config{
		Port:   cfg.Server.Port,
		Reader: reader,
		Essays: fsstore.NewEssayStoreFromDir(cfg.Data.EssaysDir),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create UI app")
	}

	apiServer := api.NewServer(api.Config{
		Port:    cfg.Server.APIPort,
		GinMode: cfg.Server.GinMode,
		Reader:  reader,
	})

	var g errgroup.Group
	g.Go(app.Start)
	g.Go(apiServer.Start)
	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("server exited")
	}
}

// buildReader selects the record store backend. Both backends serve
// the identical record schema; the dashboard cannot tell them apart.
func buildReader(cfg *config.Config, logger zerolog.Logger) (ports.ProtocolReaderPort, func(), error) {
	switch cfg.Data.Backend {
	case config.BackendPostgres:
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to connect to database")
		}
		if err := db.Ping(); err != nil {
			return nil, nil, errors.Wrap(err, "failed to ping database")
		}
		logger.Info().Msg("serving protocol records from postgres")
		return postgres.NewProtocolRepository(db), func() { _ = db.Close() }, nil
	default:
		logger.Info().Str("dir", cfg.Data.ProtocolsDir).Msg("serving protocol records from disk")
		return fsstore.NewFromDir(cfg.Data.ProtocolsDir), func() {}, nil
	}
}
