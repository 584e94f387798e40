package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"lace/internal/ui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Read terms interactively",
	Long:  `Repl parses one term per line, as an expression first and a type second`,
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, _ []string) error {
	if !isTerminal(os.Stdin) {
		return fmt.Errorf("repl needs a terminal; pipe input through 'lace parse' instead")
	}
	model := ui.NewReplModel(maxDiagnostics(cmd), useColor(cmd, os.Stdout))
	_, err := tea.NewProgram(model).Run()
	return err
}
