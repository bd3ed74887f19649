package main

import (
	"bufio"
	"fmt"
	"strings"

	"rootfind/internal/errors"
	"rootfind/internal/output"

	"github.com/spf13/cobra"
)

var filesBatch bool

var filesCmd = &cobra.Command{
	Use:   "files [file...]",
	Short: "Resolve explicit file paths to their project roots",
	Long: `Resolves each given path to its project root. All paths are handled as
one batch, so files without markers that live under a shared work area are
grouped into the same root. With --batch paths are read from stdin, one
per line.`,
	RunE: runFiles,
}

func init() {
	filesCmd.Flags().BoolVar(&filesBatch, "batch", false, "Read newline-separated file paths from stdin")
	rootCmd.AddCommand(filesCmd)
}

func runFiles(cmd *cobra.Command, args []string) error {
	files := args
	if filesBatch {
		stdinFiles, err := readLines(cmd)
		if err != nil {
			return errors.New(errors.NoInput, "failed to read file list from stdin", err)
		}
		files = append(files, stdinFiles...)
	}
	if len(files) == 0 {
		return errors.New(errors.NoInput, "no files given; pass paths as arguments or use --batch", nil)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	engine := newEngine(cfg)

	results := engine.ResolveAll(files, nil)

	rendered, err := FormatReport(output.NewReport(results), selectedFormat())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), rendered)

	return checkResults(results)
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
