// Command propunit converts physical quantities between units and does
// arithmetic on values that carry units.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/propunit/internal/adapters/driven/config/file"
	"github.com/custodia-labs/propunit/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/propunit/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/propunit/internal/adapters/driving/cli"
	"github.com/custodia-labs/propunit/internal/core/ports/driven"
	"github.com/custodia-labs/propunit/internal/core/services"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	var configStore driven.ConfigStore
	fileConfig, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: settings unavailable, using defaults: %v\n", err)
		configStore = memory.NewConfigStore()
	} else {
		configStore = fileConfig
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	var unitStore driven.UnitStore
	store, err := sqlite.NewStore(settings.Storage.DataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: custom unit database unavailable, custom units will not be saved: %v\n", err)
		unitStore = memory.NewUnitStore()
	} else {
		defer store.Close()
		unitStore = store.UnitStore()
	}

	catalogService := services.NewCatalogService(unitStore)
	conversionService := services.NewConversionService(catalogService)

	cli.SetServices(catalogService, conversionService, settingsService)
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		return 1
	}
	return 0
}
