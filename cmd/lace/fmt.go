package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lace/internal/diagfmt"
	"lace/internal/driver"
	"lace/internal/format"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] file.lace...",
	Short: "Reprint lace source files in canonical form",
	Long:  `Fmt parses each file and prints the minimally parenthesized rendering`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runFmt,
}

func init() {
	fmtCmd.Flags().String("kind", "expr", "what the files contain (expr|type)")
	fmtCmd.Flags().BoolP("write", "w", false, "rewrite files in place instead of printing")
}

func runFmt(cmd *cobra.Command, args []string) error {
	kind, err := parseKindFlag(cmd)
	if err != nil {
		return err
	}
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return fmt.Errorf("failed to get write flag: %w", err)
	}

	failed := 0
	for _, path := range args {
		if err := fmtOne(cmd, path, kind, write); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) not formatted", failed)
	}
	return nil
}

func fmtOne(cmd *cobra.Command, path string, kind driver.Kind, write bool) error {
	result, err := driver.ParseFile(path, kind, maxDiagnostics(cmd))
	if err != nil {
		return err
	}
	if !result.OK {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
		return fmt.Errorf("%s: syntax errors", path)
	}

	var rendered string
	if kind == driver.KindType {
		rendered = format.Type(result.Builder, result.Type)
	} else {
		rendered = format.Expr(result.Builder, result.Expr)
	}
	rendered += "\n"

	if write {
		return os.WriteFile(path, []byte(rendered), 0o644)
	}
	_, err = fmt.Fprint(os.Stdout, rendered)
	return err
}
