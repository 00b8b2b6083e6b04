package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rayfin-dev/rayfin/internal/config"
	"github.com/rayfin-dev/rayfin/internal/expense"
	"github.com/rayfin-dev/rayfin/internal/repo"
)

// loadService builds the expense service for a command invocation from
// the configured backend. The returned func releases the backing store.
func loadService(cmd *cobra.Command) (*expense.Service, func() error, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	return newService(cfg)
}

func newService(cfg *config.Config) (*expense.Service, func() error, error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		r, err := repo.NewSQLiteRepository(cfg.Storage.DBPath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite backing: %w", err)
		}
		return expense.NewService(r), r.Close, nil
	default:
		r := repo.NewCSVRepository(cfg.Storage.CSVPath)
		return expense.NewService(r), func() error { return nil }, nil
	}
}
