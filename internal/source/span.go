package source

import "fmt"

// Span is a contiguous byte range inside one source file: [Start, End).
// The dummy span (0,0) in file NoFileID is reserved for synthesized nodes
// that carry no real source location.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

// Dummy is the reserved empty span used for synthesized nodes (e.g. a
// synthesized getter with no declaration of its own).
var Dummy = Span{File: NoFileID, Start: 0, End: 0}

// IsDummy reports whether the span is the reserved placeholder.
func (s Span) IsDummy() bool { return s == Dummy }

// Empty reports whether the span has zero length.
func (s Span) Empty() bool { return s.Start == s.End }

// Len returns the span's length in bytes.
func (s Span) Len() uint32 { return s.End - s.Start }

func (s Span) String() string { return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End) }

// Cover returns the smallest span containing both s and other. Spans from
// different files cannot be covered; s is returned unchanged.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// IsLeftOf reports whether s starts strictly before other, within the same file.
func (s Span) IsLeftOf(other Span) bool {
	return s.File == other.File && s.Start < other.Start
}
