package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color bool
	// ShowNotes controls whether secondary notes are printed.
	ShowNotes bool
}

// ASTOpts configures AST dumps.
type ASTOpts struct {
	// Indent is the per-level indent; two spaces when empty.
	Indent string
}
