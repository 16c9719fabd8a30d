package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/cli"
	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/client/config"
	"github.com/Xavier-Kevin/evalux-Personal-ai-interviwer/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
