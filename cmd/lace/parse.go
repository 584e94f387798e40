package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lace/internal/diagfmt"
	"lace/internal/driver"
	"lace/internal/format"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.lace",
	Short: "Parse a lace source file and dump its tree",
	Long:  `Parse reads one term per file and prints the resulting tree`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("kind", "expr", "what the file contains (expr|type)")
	parseCmd.Flags().String("format", "tree", "output format (tree|json|source)")
}

func parseKindFlag(cmd *cobra.Command) (driver.Kind, error) {
	kind, err := cmd.Flags().GetString("kind")
	if err != nil {
		return driver.KindExpr, fmt.Errorf("failed to get kind flag: %w", err)
	}
	switch kind {
	case "expr":
		return driver.KindExpr, nil
	case "type":
		return driver.KindType, nil
	default:
		return driver.KindExpr, fmt.Errorf("unknown kind: %s", kind)
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	kind, err := parseKindFlag(cmd)
	if err != nil {
		return err
	}
	outFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	result, err := driver.ParseFile(args[0], kind, maxDiagnostics(cmd))
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			ShowNotes: true,
		})
	}
	if !result.OK {
		return fmt.Errorf("%s: syntax errors", args[0])
	}

	switch outFormat {
	case "tree":
		opts := diagfmt.ASTOpts{Indent: "  "}
		if kind == driver.KindType {
			diagfmt.WriteTypeTree(os.Stdout, result.Builder, result.Type, opts)
		} else {
			diagfmt.WriteExprTree(os.Stdout, result.Builder, result.Expr, opts)
		}
		return nil
	case "json":
		if kind == driver.KindType {
			return diagfmt.WriteJSON(os.Stdout, diagfmt.TypeJSON(result.Builder, result.Type))
		}
		return diagfmt.WriteJSON(os.Stdout, diagfmt.ExprJSON(result.Builder, result.Expr))
	case "source":
		if kind == driver.KindType {
			fmt.Fprintln(os.Stdout, format.Type(result.Builder, result.Type))
		} else {
			fmt.Fprintln(os.Stdout, format.Expr(result.Builder, result.Expr))
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", outFormat)
	}
}
