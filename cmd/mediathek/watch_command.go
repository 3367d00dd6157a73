package main

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"mediathek/internal/logging"
	"mediathek/internal/placement"
	"mediathek/internal/watch"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the incoming directory and place files as they arrive",
		RunE: func(cmd *cobra.Command, args []string) error {
			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.New(logging.Options{
				Level:       cfg.Logging.Level,
				Format:      cfg.Logging.Format,
				OutputPaths: []string{"stdout", filepath.Join(cfg.Paths.LogDir, "mediathek.log")},
			})
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			engine := placement.NewEngine(cfg, logger)
			service := watch.NewService(cfg, engine, logger)
			return service.Run(signalCtx)
		},
	}
}
