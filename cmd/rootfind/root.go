package main

import (
	"errors"
	"fmt"
	"os"

	"rootfind/internal/config"
	"rootfind/internal/detect"
	"rootfind/internal/logging"
	"rootfind/internal/version"

	"github.com/spf13/cobra"
)

var (
	jsonFlag     bool
	checkFlag    bool
	logLevelFlag string
	workersFlag  int
)

// errCheckFailed signals a --check failure; main maps it to exit code 1
// instead of the generic error code 2.
var errCheckFailed = errors.New("check failed: excluded files present")

var rootCmd = &cobra.Command{
	Use:   "rootfind",
	Short: "rootfind - project root detection",
	Long: `rootfind resolves source files to their project roots. It walks directory
trees, prunes exclusion zones (virtualenvs, node_modules, build output),
finds marker files (.git, Cargo.toml, package.json, ...) with the innermost
match winning, and groups files that share no marker by common ancestry.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.SetVersionTemplate("rootfind version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Emit JSON instead of human-readable output")
	rootCmd.PersistentFlags().BoolVar(&checkFlag, "check", false, "Exit with code 1 if any file resolves as excluded")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().IntVar(&workersFlag, "workers", 1, "Resolution workers for batch operations")
}

// loadConfig reads .rootfind/config.json from the working directory,
// falling back to the built-in defaults when absent.
func loadConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to determine working directory: %w", err)
	}
	return config.Load(cwd)
}

// newEngine builds a resolution engine from the effective config and the
// global flags. Precedence for the log level: CLI flag > config file.
func newEngine(cfg *config.Config) *detect.Engine {
	level := cfg.Logging.Level
	if logLevelFlag != "" {
		level = logLevelFlag
	}
	format := logging.Format(cfg.Logging.Format)
	if format == "" {
		format = logging.HumanFormat
	}

	logger := logging.NewLogger(logging.Config{
		Format: format,
		Level:  logging.ParseLevel(level),
	})

	engine := detect.NewEngine(cfg, logger)
	engine.SetWorkers(workersFlag)
	return engine
}

// checkResults enforces --check: any excluded file fails the run.
func checkResults(results map[string]detect.Result) error {
	if !checkFlag {
		return nil
	}
	for _, res := range results {
		if res.Excluded {
			return errCheckFailed
		}
	}
	return nil
}
