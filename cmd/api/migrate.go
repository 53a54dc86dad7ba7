package main

import (
	"fmt"

	"dog-breeds/internal/adapters/storage"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the favorites schema to the configured store and exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		defer func() { _ = log.Sync() }()

		store, err := storage.Open(cmd.Context(), cfg.Database, log)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		if err := store.Migrate(cmd.Context()); err != nil {
			return err
		}
		log.Info("migrations applied", map[string]any{"driver": store.Driver})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
