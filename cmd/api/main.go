package main

import (
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/sachben91/agent-protocol-risk/adapters/fsstore"
	"github.com/sachben91/agent-protocol-risk/adapters/postgres"
	"github.com/sachben91/agent-protocol-risk/api"
	"github.com/sachben91/agent-protocol-risk/internal/config"
	"github.com/sachben91/agent-protocol-risk/internal/observability"
	"github.com/sachben91/agent-protocol-risk/ports"
)

func main() {
	logger := observability.InitLogger("apr-api")
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	var reader ports.ProtocolReaderPort
	if cfg.Data.Backend == config.BackendPostgres {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()
		reader = postgres.NewProtocolRepository(db)
	} else {
		reader = fsstore.NewFromDir(cfg.Data.ProtocolsDir)
	}

	server := api.NewServer(api.Config{
		Port:    cfg.Server.APIPort,
		GinMode: cfg.Server.GinMode,
		Reader:  reader,
	})
	logger.Fatal().Err(server.Start()).Msg("server exited")
}
