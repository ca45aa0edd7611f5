package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/vncsmyrnk/vote/internal/core/ports"
	"github.com/vncsmyrnk/vote/internal/core/services"
	"github.com/vncsmyrnk/vote/internal/platform/config"
	"github.com/vncsmyrnk/vote/internal/platform/logger"
	"github.com/vncsmyrnk/vote/internal/platform/storage"
)

type app struct {
	cfg        config.Config
	backend    *storage.Backend
	newService func() ports.VoteService
}

// service builds a VoteService over a fresh context; one per command run.
func (a *app) service() ports.VoteService {
	if a.newService != nil {
		return a.newService()
	}
	return services.NewVoteService(a.backend.NewContext())
}

func (a *app) close() error {
	if a.backend == nil {
		return nil
	}
	return a.backend.Close()
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "vote",
		Short:        "Cast and inspect votes for Messi or Ronaldo",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			slog.SetDefault(logger.New(cmd.ErrOrStderr(), a.cfg.LogLevel))
			if a.newService != nil {
				return nil
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			backend, err := storage.Open(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			a.backend = backend
			slog.Debug("store opened", "store", a.cfg.Store)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfg.Store, "store", a.cfg.Store, "vote store: memory, sqlite, postgres or redis")
	rootCmd.PersistentFlags().StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&a.cfg.SQLitePath, "sqlite-path", a.cfg.SQLitePath, "sqlite database file")

	rootCmd.AddCommand(
		newCastCmd(a),
		newGetCmd(a),
		newListCmd(a),
		newExistsCmd(a),
		newResultsCmd(a),
	)
	return rootCmd
}
