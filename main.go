package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	config, err := loadConfig(configFile)
	if err != nil {
		log.Fatalf("Invalid configuration: %+v", err)
	}

	sim, err := initializeGame(config)
	if err != nil {
		log.Fatalf("Failed to initialize game: %+v", err)
	}
	log.Printf("Grid: %dx%d | Initial living cells: %d | Max generations: %d",
		sim.Rows(), sim.Cols(), sim.Population(), config.MaxGenerations)

	// Handle Ctrl+C gracefully
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		stats  = utils.NewStats()
		reason string
	)

	ctx, cancel := context.WithCancel(sigCtx)
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		defer cancel()
		reason = runGame(ctx, os.Stdout, config, sim, stats)
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		if sigCtx.Err() != nil {
			log.Println("Shutting down gracefully...")
		}
		return nil
	})
	if err = eg.Wait(); err != nil {
		log.Printf("Error running game: %+v", err)
	}

	logFinalStats(reason, stats)
}
