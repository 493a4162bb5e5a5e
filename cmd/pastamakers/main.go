package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pastamakers/internal/config"
	"pastamakers/internal/logging"
	"pastamakers/internal/menu"
	"pastamakers/internal/reservation"
	"pastamakers/internal/telemetry"
	"pastamakers/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "usage: pastamakers [-api URL] [-menu FILE] [-log-file PATH] [-log-level LEVEL] [-env FILE]")
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}

	log, closer, err := logging.Open(logging.Config{Level: cfg.LogLevel, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx := context.Background()
	tp, err := telemetry.NewProvider(ctx, cfg.Telemetry())
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("tracer shutdown failed")
		}
	}()

	dishes, err := loadMenu(cfg.MenuFile)
	if err != nil {
		return err
	}

	client := reservation.NewClient(cfg.APIBaseURL,
		reservation.WithTracer(tp.Tracer()),
		reservation.WithLogger(logging.Component(log, "reservation")),
	)
	log.Info().
		Str("api", client.BaseURL()).
		Int("dishes", len(dishes)).
		Bool("tracing", tp.Enabled()).
		Msg("starting")

	model := ui.NewAppModel(ui.Deps{
		Service: client,
		Dishes:  dishes,
		Logger:  logging.Component(log, "ui"),
	}).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func loadMenu(path string) ([]menu.Dish, error) {
	if path == "" {
		return menu.Load()
	}
	return menu.LoadFile(path)
}
