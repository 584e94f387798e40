package driver

import (
	"fortio.org/safecast"

	"lace/internal/ast"
	"lace/internal/diag"
	"lace/internal/lexer"
	"lace/internal/parser"
	"lace/internal/source"
)

// Kind selects the parser entry point.
type Kind uint8

const (
	KindExpr Kind = iota
	KindType
)

func (k Kind) String() string {
	switch k {
	case KindExpr:
		return "expr"
	case KindType:
		return "type"
	default:
		return "unknown"
	}
}

// ParseResult carries the arenas together with the root node. Exactly
// one of Type and Expr is set, per Kind; OK is false when any error
// was reported.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	Type    ast.TypeID
	Expr    ast.ExprID
	OK      bool
	Bag     *diag.Bag
}

// ParseFile loads path and parses its whole content as one type or
// one expression.
func ParseFile(path string, kind Kind, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fileID, kind, maxDiagnostics), nil
}

// ParseSource parses in-memory content under a virtual name.
func ParseSource(name string, content []byte, kind Kind, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseFile(fs, fileID, kind, maxDiagnostics)
}

func parseFile(fs *source.FileSet, fileID source.FileID, kind Kind, maxDiagnostics int) *ParseResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	reporter := &diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{})

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		maxErrors = 0
	}
	opts := parser.Options{MaxErrors: maxErrors, Reporter: reporter}

	res := &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		Bag:     bag,
	}
	switch kind {
	case KindType:
		res.Type, res.OK = parser.ParseType(lx, builder, opts)
	default:
		res.Expr, res.OK = parser.ParseExpr(lx, builder, opts)
	}
	if bag.HasErrors() {
		res.OK = false
	}
	return res
}
