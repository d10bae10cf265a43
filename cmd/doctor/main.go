package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/gramcare/caselink/internal/buildinfo"
	"github.com/gramcare/caselink/internal/casestore"
	"github.com/gramcare/caselink/internal/config"
	"github.com/gramcare/caselink/internal/doctorcli"
	"github.com/gramcare/caselink/internal/logging"
	"github.com/gramcare/caselink/internal/profile"
	"github.com/gramcare/caselink/internal/storage"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	zl, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.NewZapLogger(zl)
	defer func() { _ = logger.Sync() }()

	doctor, err := profile.LoadDoctor(cfg.ProfilePath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	slot, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = slot.Close() }()

	store := casestore.New(slot, logger)
	app := doctorcli.NewApp(cfg, store, doctor, logger)
	app.Run(ctx)
}
