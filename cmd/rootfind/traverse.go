package main

import (
	"fmt"
	"strings"

	"rootfind/internal/detect"
	"rootfind/internal/output"

	"github.com/spf13/cobra"
)

var (
	traverseExtensions string
	traverseMaxDepth   int
	traverseRootsOnly  bool
)

var traverseCmd = &cobra.Command{
	Use:   "traverse <directory>",
	Short: "Traverse a directory tree and resolve every discovered file",
	Long: `Walks the directory depth-first, skipping exclusion zones entirely,
and prints the project root of each discovered file. With --roots-only the
unique set of roots is printed instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runTraverse,
}

func init() {
	traverseCmd.Flags().StringVar(&traverseExtensions, "extensions", "",
		"Comma-separated file extensions to include (e.g. rs,py,ts); empty includes all")
	traverseCmd.Flags().IntVar(&traverseMaxDepth, "max-depth", detect.UnlimitedDepth,
		"Maximum descent depth; 0 visits only the start directory, negative is unlimited")
	traverseCmd.Flags().BoolVar(&traverseRootsOnly, "roots-only", false,
		"Print the unique set of project roots instead of per-file results")
	rootCmd.AddCommand(traverseCmd)
}

func runTraverse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	engine := newEngine(cfg)

	opts := detect.TraverseOptions{
		MaxDepth:   traverseMaxDepth,
		Extensions: splitExtensions(traverseExtensions),
	}

	if traverseRootsOnly {
		roots, err := engine.DiscoverRoots(cmd.Context(), args[0], opts)
		if err != nil {
			return fmt.Errorf("traversal failed: %w", err)
		}
		rendered, err := FormatRoots(output.NewRootsReport(roots), selectedFormat())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	}

	results, err := engine.Traverse(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("traversal failed: %w", err)
	}

	rendered, err := FormatReport(output.NewReport(results), selectedFormat())
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), rendered)

	return checkResults(results)
}

func splitExtensions(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	extensions := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			extensions = append(extensions, p)
		}
	}
	return extensions
}
