package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lace/internal/diag"
	"lace/internal/source"
)

// Pretty renders each diagnostic as
//
//	path:line:col: SEV CODE: message
//
// followed by the offending source line and a caret underline measured
// in display cells. Call bag.Sort() beforehand for stable output.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, fs, d, opts)
	}
}

func sevColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func writeDiagnostic(w io.Writer, fs *source.FileSet, d diag.Diagnostic, opts PrettyOpts) {
	start, end := fs.Resolve(d.Primary)
	file := fs.Get(d.Primary.File)

	sev := d.Severity.String()
	code := d.Code.ID()
	if opts.Color {
		c := sevColor(d.Severity)
		sev = c.Sprint(sev)
		code = c.Sprint(code)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", file.Path, start.Line, start.Col, sev, code, d.Message)

	writeUnderline(w, file, d.Severity, start, end, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			nStart, _ := fs.Resolve(note.Span)
			nf := fs.Get(note.Span.File)
			fmt.Fprintf(w, "%s:%d:%d: note: %s\n", nf.Path, nStart.Line, nStart.Col, note.Msg)
		}
	}
}

func writeUnderline(w io.Writer, file *source.File, sev diag.Severity, start, end source.LineCol, opts PrettyOpts) {
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	// Columns are byte-based; pad and width count display cells so the
	// caret lines up under tabs and wide runes.
	startByte := int(start.Col) - 1
	if startByte < 0 {
		startByte = 0
	}
	if startByte > len(line) {
		startByte = len(line)
	}
	pad := runewidth.StringWidth(line[:startByte])

	width := 1
	if end.Line == start.Line && int(end.Col)-1 > startByte {
		endByte := int(end.Col) - 1
		if endByte > len(line) {
			endByte = len(line)
		}
		if wseg := runewidth.StringWidth(line[startByte:endByte]); wseg > width {
			width = wseg
		}
	}

	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = sevColor(sev).Sprint(marker)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
}
