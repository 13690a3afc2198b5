package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jwebster45206/text-adventure/internal/config"
	"github.com/jwebster45206/text-adventure/internal/logger"
	"github.com/jwebster45206/text-adventure/internal/services"
	"github.com/jwebster45206/text-adventure/internal/services/events"
)

func main() {
	cfg := config.Load()

	logFile, err := logger.OpenFile(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logFile.Close() // Ignore error in defer
	}()
	log := logger.Setup(cfg, logFile)

	scenarios, err := listScenarios(filepath.Dir(cfg.ScenarioFile))
	if err != nil || len(scenarios) == 0 {
		fmt.Fprintf(os.Stderr, "Failed to list scenarios: %v\n", err)
		os.Exit(1)
	}

	starter := &sessionStarter{logger: log, publishTimeout: cfg.PublishTimeout}

	if cfg.BroadcastEnabled() {
		redisService, err := services.NewRedisService(cfg.RedisURL, log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid REDIS_URL: %v\n", err)
			os.Exit(1)
		}
		defer func() {
			_ = redisService.Close() // Ignore error in defer
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = redisService.WaitForConnection(ctx)
		cancel()
		if err != nil {
			// Play on without broadcasting.
			logger.WithError(log, err).Warn("Redis unavailable, movement events will not be published")
		} else {
			starter.broadcaster = events.NewBroadcaster(redisService.GetClient(), log)
		}
	}

	log.Info("Starting console",
		"environment", cfg.Environment,
		"scenarios", len(scenarios),
		"broadcast", starter.broadcaster != nil)

	p := tea.NewProgram(NewConsoleUI(starter, scenarios, cfg.ScenarioFile),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// listScenarios returns the YAML scenario files in dir, sorted by name.
func listScenarios(dir string) ([]string, error) {
	var paths []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, fmt.Errorf("no scenario files in %s", dir)
	}
	return paths, nil
}
