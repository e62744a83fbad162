package main

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskwidgets/internal/config"
	"github.com/jask/jaskwidgets/internal/content"
	"github.com/jask/jaskwidgets/internal/diag"
	"github.com/jask/jaskwidgets/internal/tui"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	overrides, err := config.LoadKeybindings(cfg.UI.KeybindingsPath)
	if err != nil {
		log.Fatalf("keybindings: %v", err)
	}

	sink, logFile, err := diag.Open(cfg.Log.Path)
	if err != nil {
		log.Fatalf("diagnostics: %v", err)
	}
	defer logFile.Close()

	keys := tui.NewKeyRegistry(tui.ApplyActionKeybindings(tui.DefaultKeyBindings(), overrides))

	provider := content.NewHTTPProvider(cfg.Content.URL, nil, cfg.Content.Timeout)
	app := tui.New(keys,
		tui.NewAuthWidget(cfg.Auth.PlaceholderUser),
		tui.NewPostsWidget(ctx, provider, sink),
	)
	app.Focus(cfg.UI.StartTab)

	log.Printf("starting: content url %s", provider.URL())
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
