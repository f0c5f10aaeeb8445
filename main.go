package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"zhanzen/internal/config"
	"zhanzen/internal/logging"
	"zhanzen/internal/store"
	"zhanzen/internal/tui"
	"zhanzen/internal/wisdom"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		os.Exit(1)
	}

	log, logFile, err := logging.Open(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	s, err := store.New(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	journal := store.OpenJournal(s, log)
	provider := wisdom.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel, log)

	app := tui.NewApp(s, journal, provider, log, cfg.DefaultMinutes)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
