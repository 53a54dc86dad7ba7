package main

import (
	"dog-breeds/internal/config"
	"dog-breeds/internal/platform/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version se pisa en build: -ldflags "-X main.version=1.2.3"
var version = "dev"

var (
	configFile string
	v          = viper.New()
)

var rootCmd = &cobra.Command{
	Use:           "dogapi",
	Short:         "Dog breeds catalog + favorites API",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	// sin subcomando => serve
	RunE: runServe,
}

func init() {
	rootCmd.SetVersionTemplate("dogapi version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, json, toml or env)")
	rootCmd.PersistentFlags().Int("port", 0, "HTTP port (overrides PORT / server.port)")

	_ = v.BindPFlag("server.port", rootCmd.PersistentFlags().Lookup("port"))
}

// loadConfig lee config y arma el logger raíz.
func loadConfig() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return nil, nil, err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})
	return cfg, log, nil
}
