// Command joltage sums the maximum 12-digit joltage of every battery bank.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/joltage-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/joltage-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/joltage-cli/internal/connectors"
	"github.com/custodia-labs/joltage-cli/internal/core/services"
	"github.com/custodia-labs/joltage-cli/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

// bootstrap wires the adapters into the core services.
func bootstrap(opts cli.Options) error {
	store, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Debug("Config: %s", store.Path())

	settingsService := services.NewSettingsService(store)
	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	sources := connectors.NewFactory(settings.Watch.MinInterval)

	cli.SetSettingsService(settingsService)
	cli.SetJoltageService(services.NewJoltageService(sources))
	return nil
}
