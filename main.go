package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-cgol/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON configuration file")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("loading config: %+v", err)
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}

	g, err := newGame(config, os.Stdout)
	if err != nil {
		log.Fatalf("seeding grid: %+v", err)
	}
	g.displayGameInfo()

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := g.run(ctx); err != nil {
		log.Fatalf("game stopped: %+v", err)
	}

	if ctx.Err() != nil {
		fmt.Println("\n🛑 Shutting down gracefully...")
	}
	g.printFinalStats()
}
