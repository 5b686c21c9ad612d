package main

import (
	"github.com/joho/godotenv"

	"github.com/sachben91/agent-protocol-risk/adapters/fsstore"
	"github.com/sachben91/agent-protocol-risk/internal/config"
	"github.com/sachben91/agent-protocol-risk/internal/observability"
	"github.com/sachben91/agent-protocol-risk/ui"
)

func main() {
	logger := observability.InitLogger("apr-ui")
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	app, err := ui.NewApp(ui.Config{
		Port:   cfg.Server.Port,
		Reader: fsstore.NewFromDir(cfg.Data.ProtocolsDir),
		Essays: fsstore.NewEssayStoreFromDir(cfg.Data.EssaysDir),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create UI app")
	}

	logger.Info().Str("port", cfg.Server.Port).Msg("starting dashboard")
	logger.Fatal().Err(app.Start()).Msg("server exited")
}
