package token

import "surge/internal/source"

// TriviaKind classifies types of non-code elements.
type TriviaKind uint8

const (
	// TriviaSpace represents horizontal whitespace.
	TriviaSpace TriviaKind = iota
	// TriviaNewline represents a newline character.
	TriviaNewline
	// TriviaLineComment represents a '//' line comment.
	TriviaLineComment
	// TriviaBlockComment represents a '/* */' block comment.
	TriviaBlockComment
	// TriviaDocLine represents a '///' doc line comment.
	TriviaDocLine
	// TriviaDocBlock represents a '/** */' doc block comment.
	TriviaDocBlock
)

// Trivia represents a non-code source element: whitespace or a comment.
// Doc-comment trivia is preserved with its span so the parser can attach it
// to the next item; other trivia is kept only for round-trip diagnostics.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsDoc reports whether the trivia is a doc-comment line or block.
func (tv Trivia) IsDoc() bool {
	return tv.Kind == TriviaDocLine || tv.Kind == TriviaDocBlock
}
