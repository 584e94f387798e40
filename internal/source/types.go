package source

// FileID identifies a file inside a FileSet.
type FileID uint32

// FileFlags records normalization applied when a file was loaded.
type FileFlags uint8

const (
	// FileVirtual marks in-memory files (stdin, tests, repl lines).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM marks files that carried a UTF-8 BOM before normalization.
	FileHadBOM
	// FileNormalizedCRLF marks files whose CRLF line endings were rewritten.
	FileNormalizedCRLF
)

// File is one source file with its normalized content and line index.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offsets of every '\n'
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a 1-based line/column position.
type LineCol struct {
	Line uint32
	Col  uint32
}
