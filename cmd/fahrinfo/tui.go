package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mobil-koeln/fahrinfo/internal/app"
	"github.com/mobil-koeln/fahrinfo/internal/catalog"
	"github.com/mobil-koeln/fahrinfo/internal/config"
	"github.com/mobil-koeln/fahrinfo/internal/event"
	"github.com/mobil-koeln/fahrinfo/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := newClient(cfg, logger)

	_, _ = fmt.Fprintln(os.Stderr, "Loading stations...")
	res, loadErr := newLoader(cfg, client, logger).Load(sigCtx)
	if loadErr != nil {
		logger.Error("station catalog unavailable", "error", loadErr)
	} else {
		logger.Info("station catalog loaded", "stations", len(res.Stations), "origin", res.Origin.String())
	}

	keys := app.DefaultKeyMap()
	machine := app.NewMachine(res.Stations, client,
		app.WithStatus(catalog.Status(res, loadErr)),
		app.WithKeyMap(keys),
		app.WithLogger(logger),
	)

	src := event.NewSource(
		event.WithTickRate(cfg.TickRate),
		event.WithRefreshInterval(cfg.RefreshInterval),
		event.WithLogger(logger),
	)

	ctx, cancel := context.WithCancel(sigCtx)
	defer cancel()

	p := tea.NewProgram(tui.New(src, keys), tea.WithAltScreen(), tea.WithContext(ctx))
	renderer := tui.NewProgramRenderer(p)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return src.Run(gctx)
	})
	g.Go(func() error {
		defer cancel()
		defer p.Quit()
		return app.Run(gctx, machine, src, renderer)
	})
	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("terminal: %w", err)
		}
		return nil
	})

	err = g.Wait()
	if sigCtx.Err() != nil {
		logger.Info("interrupted")
		return nil
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("dashboard stopped", "error", err)
		return err
	}
	return nil
}
