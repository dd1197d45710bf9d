package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/GabrielH4nma/Pilar-IV/internal/config"
	"github.com/GabrielH4nma/Pilar-IV/internal/logger"
	"github.com/GabrielH4nma/Pilar-IV/internal/storage"
	"github.com/GabrielH4nma/Pilar-IV/pkg/cave"
	"github.com/GabrielH4nma/Pilar-IV/pkg/dialogue"
	"github.com/GabrielH4nma/Pilar-IV/pkg/game"
	"github.com/GabrielH4nma/Pilar-IV/pkg/story"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg)

	var store storage.Store
	if cfg.RedisURL != "" {
		rs := storage.NewRedisStore(cfg.RedisURL, log)
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		if err := rs.WaitForConnection(ctx); err != nil {
			cancel()
			logger.WithError(log, err).Error("could not connect to Redis", "url", cfg.RedisURL)
			fmt.Fprintf(os.Stderr, "Could not connect to Redis at %s: %v\n", cfg.RedisURL, err)
			os.Exit(1)
		}
		if cfg.ResetSave {
			if err := rs.Reset(ctx); err != nil {
				logger.WithError(log, err).Warn("failed to reset save")
			}
		}
		cancel()
		store = rs
	} else {
		// No Redis configured: the save lives only for this process.
		store = storage.NewMockStore()
	}
	defer func() {
		_ = store.Close()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	rebooted, err := store.Rebooted(ctx)
	cancel()
	if err != nil {
		logger.WithError(log, err).Warn("failed to read save state, starting fresh")
	}

	speed := cfg.GameSpeed
	g := game.New(game.Config{
		Timeline: story.DefaultTimeline().Scaled(speed),
		DialoguePacing: dialogue.Pacing{
			Think: scaleDuration(dialogue.DefaultPacing().Think, speed),
			Pause: scaleDuration(dialogue.DefaultPacing().Pause, speed),
		},
		CavePacing:    cave.DefaultPacing().Scaled(speed),
		InstallPacing: game.DefaultInstallPacing().Scaled(speed),
		Store:         store,
		Logger:        log,
		Rebooted:      rebooted,
	})
	defer g.Close()

	p := tea.NewProgram(newPhoneUI(g),
		tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func scaleDuration(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d) * f)
}
