package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/config"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/database"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/kvstore"
	"github.com/spf13/cobra"
)

// app is shared by the subcommands once the root pre-run has loaded it.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "employee-dashboard",
		Short:         "Employee records dashboard API",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("error loading config: %w", err)
			}
			a.cfg = cfg

			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: cfg.App.SlogLevel(),
			})))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}

	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newEmployeesCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// openStore connects the persistence backend selected by STORAGE_TYPE. The
// returned close function releases backend connections.
func openStore(ctx context.Context, cfg *config.Config) (kvstore.Store, func(), error) {
	noop := func() {}

	switch cfg.Storage.Type {
	case config.StorageMemory:
		return kvstore.NewMemoryStore(), noop, nil
	case config.StorageFile:
		store, err := kvstore.NewFileStore(cfg.Storage.BasePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize file storage: %w", err)
		}
		return store, noop, nil
	case config.StoragePostgres:
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		if err != nil {
			return nil, nil, fmt.Errorf("error connecting to database: %w", err)
		}
		store, err := kvstore.NewPostgresStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, db.Close, nil
	case config.StorageElasticsearch:
		store, err := kvstore.NewElasticsearchStore(ctx, cfg.Elasticsearch.URL, cfg.Elasticsearch.Index)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage type: %s", cfg.Storage.Type)
	}
}
