// rayinspect listens on the Ray port and prints every event it receives.
// Use it where the Ray desktop app is not available.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/akave-ai/goray/internal/config"
	"github.com/akave-ai/goray/internal/inspector"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.LoadInspector()
	if err != nil {
		logger.Fatal().Err(err).Msg("could not load config")
	}

	flagSet := pflag.NewFlagSet("rayinspect", pflag.ExitOnError)
	flagSet.StringVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	flagSet.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable colored output")
	verbose := flagSet.BoolP("verbose", "v", false, "log every HTTP request")
	_ = flagSet.Parse(os.Args[1:])

	if *verbose {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := inspector.New(cfg, os.Stdout, logger)
	if err := srv.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "server exited: %v\n", err)
		os.Exit(1)
	}
}
