// Package ui holds the interactive terminal front-end.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"lace/internal/diagfmt"
	"lace/internal/driver"
	"lace/internal/format"
)

var (
	bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	kindStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faintStyle  = lipgloss.NewStyle().Faint(true)
)

// historyLimit bounds how many past entries the view keeps.
const historyLimit = 40

type replModel struct {
	input          textinput.Model
	history        []string
	maxDiagnostics int
	color          bool
	showTree       bool
	width          int
}

// NewReplModel returns a Bubble Tea model reading one term per line.
// Each line is parsed as an expression first, then as a type.
func NewReplModel(maxDiagnostics int, color bool) tea.Model {
	ti := textinput.New()
	ti.Prompt = "lace> "
	ti.Placeholder = "let x = v in move x"
	ti.Focus()
	return &replModel{
		input:          ti,
		maxDiagnostics: maxDiagnostics,
		color:          color,
	}
}

func (m *replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "" {
				return m, nil
			}
			if quit := m.dispatch(line); quit {
				return m, tea.Quit
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if m.width > 8 {
			m.input.Width = m.width - len(m.input.Prompt) - 2
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *replModel) View() string {
	var b strings.Builder
	b.WriteString(bannerStyle.Render("lace repl"))
	b.WriteString(faintStyle.Render("  :ast toggles tree output, :quit exits"))
	b.WriteString("\n\n")

	start := 0
	if len(m.history) > historyLimit {
		start = len(m.history) - historyLimit
	}
	for _, entry := range m.history[start:] {
		b.WriteString(entry)
		b.WriteString("\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

// dispatch handles one submitted line; true means quit.
func (m *replModel) dispatch(line string) bool {
	switch line {
	case ":quit", ":q":
		return true
	case ":ast":
		m.showTree = !m.showTree
		if m.showTree {
			m.record(faintStyle.Render("tree output on"))
		} else {
			m.record(faintStyle.Render("tree output off"))
		}
		return false
	}
	m.record(faintStyle.Render("lace> " + line))
	m.record(m.evaluate(line))
	return false
}

func (m *replModel) record(entry string) {
	m.history = append(m.history, entry)
}

// evaluate parses the line as an expression, falling back to a type;
// expression diagnostics win when both fail.
func (m *replModel) evaluate(line string) string {
	content := []byte(line)

	asExpr := driver.ParseSource("repl", content, driver.KindExpr, m.maxDiagnostics)
	if asExpr.OK {
		return m.render("expr", func(sb *strings.Builder) {
			if m.showTree {
				diagfmt.WriteExprTree(sb, asExpr.Builder, asExpr.Expr, diagfmt.ASTOpts{Indent: "  "})
			} else {
				sb.WriteString(format.Expr(asExpr.Builder, asExpr.Expr))
				sb.WriteString("\n")
			}
		})
	}

	asType := driver.ParseSource("repl", content, driver.KindType, m.maxDiagnostics)
	if asType.OK {
		return m.render("type", func(sb *strings.Builder) {
			if m.showTree {
				diagfmt.WriteTypeTree(sb, asType.Builder, asType.Type, diagfmt.ASTOpts{Indent: "  "})
			} else {
				sb.WriteString(format.Type(asType.Builder, asType.Type))
				sb.WriteString("\n")
			}
		})
	}

	var sb strings.Builder
	asExpr.Bag.Sort()
	diagfmt.Pretty(&sb, asExpr.Bag, asExpr.FileSet, diagfmt.PrettyOpts{Color: m.color, ShowNotes: true})
	out := strings.TrimRight(sb.String(), "\n")
	if out == "" {
		out = errStyle.Render("parse failed")
	}
	return out
}

func (m *replModel) render(kind string, body func(*strings.Builder)) string {
	var sb strings.Builder
	sb.WriteString(kindStyle.Render(kind))
	sb.WriteString(": ")
	if m.showTree {
		sb.WriteString("\n")
	}
	body(&sb)
	return strings.TrimRight(sb.String(), "\n")
}
