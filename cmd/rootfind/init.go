package main

import (
	"fmt"
	"os"
	"path/filepath"

	"rootfind/internal/config"
	"rootfind/internal/errors"

	"github.com/spf13/cobra"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize rootfind configuration",
	Long:  "Creates a .rootfind/ directory with default configuration in the current directory",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing configuration")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return errors.New(errors.InternalError, "failed to determine working directory", err)
	}

	configPath := filepath.Join(cwd, config.ConfigDirName, "config.json")
	if _, statErr := os.Stat(configPath); statErr == nil && !initForce {
		// Already initialized is success, reruns stay cheap in CI
		fmt.Fprintf(cmd.OutOrStdout(), "rootfind already initialized.\nConfiguration at: %s\n", configPath)
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'rootfind init --force' to overwrite.")
		return nil
	}

	if err := config.Default().Save(cwd); err != nil {
		return errors.New(errors.ConfigInvalid, "failed to write configuration", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "rootfind initialized.\nConfiguration written to: %s\n", configPath)
	return nil
}
