// Command watch prints the movement events of a running game.
//
//	REDIS_URL=localhost:6379 watch <game-id>
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/jwebster45206/text-adventure/internal/config"
	"github.com/jwebster45206/text-adventure/internal/logger"
	"github.com/jwebster45206/text-adventure/internal/services"
	"github.com/jwebster45206/text-adventure/internal/services/events"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <game-id>\n", os.Args[0])
		os.Exit(1)
	}

	gameID, err := uuid.Parse(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid game id: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Load()
	log := logger.Setup(cfg, os.Stdout)

	if !cfg.BroadcastEnabled() {
		log.Error("REDIS_URL is required")
		os.Exit(1)
	}

	log.Info("Starting event watcher",
		"environment", cfg.Environment,
		"redis_url", cfg.RedisURL,
		"game_id", gameID.String())

	redisService, err := services.NewRedisService(cfg.RedisURL, log)
	if err != nil {
		log.Error("Failed to create redis service", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisService.Close(); err != nil {
			log.Error("Error closing redis service", "error", err)
		}
	}()

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	waitCtx, cancel := context.WithTimeout(ctx, time.Minute)
	err = redisService.WaitForConnection(waitCtx)
	cancel()
	if err != nil {
		log.Error("Failed to connect to Redis", "error", err)
		return
	}

	broadcaster := events.NewBroadcaster(redisService.GetClient(), log)

	log.Info("Watching for events...", "channel", events.Channel(gameID))
	err = broadcaster.Listen(ctx, gameID, func(e events.Event) {
		log.Info("Event received", "type", e.Type, "data", e.Data)
	})
	if err != nil {
		log.Error("Watcher error", "error", err)
		return
	}

	log.Info("Watcher exited")
}
