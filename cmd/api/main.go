package main

import (
	"os"

	"dog-breeds/internal/platform/logger"
)

// @title        Dog Breeds API
// @version      1.0
// @description  Catálogo de razas (proxy a The Dog API) y favoritos persistidos.
// @BasePath     /
func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.NewFromEnv().Error("command failed", map[string]any{"err": err})
		os.Exit(1)
	}
}
