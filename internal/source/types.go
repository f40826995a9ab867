// Package source holds the data model shared by every later stage: source
// files, byte-offset spans, and the process-wide symbol interner.
package source

// FileID uniquely identifies a source file within a Map.
type FileID uint32

// NoFileID is the zero FileID, used by the dummy span. Map numbers files
// from 0, so the first file added to a Map also has this ID.
const NoFileID FileID = 0

// FileFlags records how a file entered the Map.
type FileFlags uint8

const (
	// FileVirtual marks a file added from memory (stdin, tests, generated code).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM marks a file that carried a UTF-8 BOM, now stripped.
	FileHadBOM
	// FileNormalizedCRLF marks a file whose CRLF line endings were normalized to LF.
	FileNormalizedCRLF
)

// File is the immutable record of one ingested source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offset of every '\n', ascending
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a 1-based human-readable position.
type LineCol struct {
	Line uint32
	Col  uint32
}
