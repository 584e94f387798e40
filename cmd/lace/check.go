package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lace/internal/diagfmt"
	"lace/internal/driver"
	"lace/internal/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [file.lace...]",
	Short: "Check lace source files for syntax errors",
	Long: `Check parses every file in parallel and reports diagnostics.
Without arguments the file list comes from lace.toml in the working directory.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("kind", "expr", "what the files contain (expr|type)")
	checkCmd.Flags().Int("jobs", 0, "parallel workers (0 = number of CPUs)")
	checkCmd.Flags().Bool("no-cache", false, "disable the on-disk result cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	kind, err := parseKindFlag(cmd)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}

	maxDiag := maxDiagnostics(cmd)
	files := args
	if len(files) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg, found, err := project.Load(cwd)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", project.ConfigFileName, err)
		}
		if !found || len(cfg.Check.Files) == 0 {
			return fmt.Errorf("no files given and no %s with a [check] files list", project.ConfigFileName)
		}
		files = cfg.Check.Files
		if !cmd.Root().PersistentFlags().Changed("max-diagnostics") {
			maxDiag = cfg.Check.MaxDiagnostics
		}
	}

	var cache *driver.DiskCache
	if !noCache {
		// A cache that fails to open just means every file re-parses.
		cache, _ = driver.OpenDiskCache("lace")
	}

	results, err := driver.Check(cmd.Context(), files, driver.CheckOptions{
		Kind:           kind,
		MaxDiagnostics: maxDiag,
		Jobs:           jobs,
		Cache:          cache,
	})
	if err != nil {
		return err
	}

	opts := diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
	}
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Path, res.Err)
			failed++
			continue
		}
		if res.Bag.Len() > 0 {
			diagfmt.Pretty(os.Stderr, res.Bag, res.FileSet, opts)
		}
		if !res.OK {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d file(s) failed", failed, len(results))
	}
	fmt.Fprintf(os.Stdout, "checked %d file(s)\n", len(results))
	return nil
}
