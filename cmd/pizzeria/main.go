package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lor/pizzeria/internal/catalog"
	"github.com/lor/pizzeria/internal/config"
	"github.com/lor/pizzeria/internal/logging"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pizzeria",
		Short: "LOR Pizzeria - order pizzas from the console",
		Long: `pizzeria runs an interactive pizza ordering session.

Pick a store, choose pizzas from its menu, add toppings, and watch
your order being prepared. Running pizzeria without a subcommand
starts an order.`,
		SilenceUsage: true,
		RunE:         runOrder,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON where supported")
	rootCmd.PersistentFlags().String("catalog", "", "Path to a catalog YAML file (default: built-in menus)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug or trace")

	rootCmd.AddCommand(
		newOrderCmd(),
		newMenuCmd(),
		newToppingsCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// appEnv is what every command needs: resolved config, a logger and the
// catalog.
type appEnv struct {
	cfg     *config.PizzeriaConfig
	log     *slog.Logger
	catalog *catalog.Catalog
}

// loadConfig resolves configuration from defaults, the config file and env,
// then applies the --catalog and --log-level flags on top.
func loadConfig(cmd *cobra.Command) (*config.PizzeriaConfig, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if v, _ := cmd.Flags().GetString("catalog"); v != "" {
		cfg.Catalog.Path = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Logging.Level = v
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// loadEnv resolves configuration, builds the logger on stderr and loads
// the catalog.
func loadEnv(cmd *cobra.Command) (*appEnv, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())

	cat, err := loadCatalog(cfg.Catalog.Path)
	if err != nil {
		return nil, err
	}
	log.Debug("catalog loaded", "path", valueOrDefault(cfg.Catalog.Path, "(built-in)"), "locations", cat.Locations())

	return &appEnv{cfg: cfg, log: log, catalog: cat}, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		cat, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in catalog: %w", err)
		}
		return cat, nil
	}
	cat, err := catalog.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return cat, nil
}

// valueOrDefault returns the value if non-empty, otherwise the default.
func valueOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
