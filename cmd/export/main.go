// Command export writes the scored collection to an xlsx workbook for
// offline editorial review.
package main

import (
	"context"
	"flag"

	"github.com/joho/godotenv"

	"github.com/sachben91/agent-protocol-risk/adapters/excel"
	"github.com/sachben91/agent-protocol-risk/adapters/fsstore"
	"github.com/sachben91/agent-protocol-risk/internal/config"
	"github.com/sachben91/agent-protocol-risk/internal/observability"
)

func main() {
	logger := observability.InitLogger("apr-export")
	_ = godotenv.Load()

	out := flag.String("out", "agent-protocol-risk.xlsx", "output workbook path")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	store := fsstore.NewFromDir(cfg.Data.ProtocolsDir)
	protocols, err := store.LoadAll(context.Background())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load protocols")
	}

	workbook, err := excel.BuildWorkbook(protocols)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build workbook")
	}
	defer workbook.Close()

	if err := workbook.SaveAs(*out); err != nil {
		logger.Fatal().Err(err).Msg("failed to save workbook")
	}
	logger.Info().Str("path", *out).Int("protocols", len(protocols)).Msg("workbook written")
}
