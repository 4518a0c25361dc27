package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	platformcmd "github.com/louisbranch/sgfplayer/internal/platform/cmd"
	"github.com/louisbranch/sgfplayer/internal/platform/config"
	"github.com/louisbranch/sgfplayer/internal/platform/logging"
	"github.com/louisbranch/sgfplayer/internal/tools/assetsymgen"
)

func main() {
	cfg, err := assetsymgen.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := platformcmd.RunWithTelemetry(context.Background(), platformcmd.ServiceAssetSymGen, func(ctx context.Context) error {
		return assetsymgen.Run(ctx, cfg, logger)
	}); err != nil {
		config.Exitf("Error: %v", err)
	}
}
