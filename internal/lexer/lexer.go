package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"surge/internal/diag"
	"surge/internal/source"
	"surge/internal/token"
)

const maxTokenLength = 64 * 1024 // hard limit in bytes to avoid pathological tokens

// Lexer converts source content into a stream of tokens.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // one-token lookahead buffer
	hold   []token.Trivia // trivia accumulated ahead of the next significant token
}

// New creates a new Lexer for the provided file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
		hold:   nil,
	}
}

// SetRange restricts the lexer to a specific byte range within the file.
func (lx *Lexer) SetRange(start, end uint32) {
	if lx == nil {
		return
	}
	lx.cursor.Off = start
	if end != 0 {
		lx.cursor.Limit = end
	}
	lx.look = nil
	lx.hold = nil
}

// Next returns the next significant token with its collected leading trivia.
// Past EOF it always returns an EOF token.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.EmptySpan(),
			Text: "",
		}
	}

	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case (ch == 'h' || ch == 'u') && lx.isStringPrefix():
		tok = lx.scanPrefixedString(start)

	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"' || ch == '\'':
		tok = lx.scanString()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil

	lx.enforceTokenLength(&tok)

	return tok
}

// isStringPrefix reports whether the cursor sits on "hex" or "unicode"
// immediately followed by a quote character, with no intervening bytes.
func (lx *Lexer) isStringPrefix() bool {
	rest := lx.file.Content[lx.cursor.Off:]
	for _, prefix := range [2]string{"hex", "unicode"} {
		n := len(prefix)
		if len(rest) > n && string(rest[:n]) == prefix && (rest[n] == '"' || rest[n] == '\'') {
			return true
		}
	}
	return false
}

// scanPrefixedString consumes the "hex"/"unicode" prefix and the quoted body
// that follows it, emitting a single HexLit/UnicodeLit token.
func (lx *Lexer) scanPrefixedString(start Mark) token.Token {
	kind := token.HexLit
	if lx.cursor.Peek() == 'u' {
		kind = token.UnicodeLit
		for i := 0; i < len("unicode"); i++ {
			lx.cursor.Bump()
		}
	} else {
		for i := 0; i < len("hex"); i++ {
			lx.cursor.Bump()
		}
	}
	return lx.scanQuotedBody(start, kind)
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Push injects a token back into the lookahead buffer.
func (lx *Lexer) Push(tok token.Token) {
	lx.look = &tok
}

// EmptySpan returns a zero-length span at the current cursor position.
func (lx *Lexer) EmptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) errLex(code diag.Code, span source.Span, msg string) {
	lx.reportLex(code, diag.SevError, span, msg)
}

func (lx *Lexer) enforceTokenLength(tok *token.Token) {
	if tok == nil {
		return
	}
	length := tok.Span.End - tok.Span.Start
	if length <= maxTokenLength {
		return
	}
	msg := fmt.Sprintf("token length %d exceeds limit %d", length, maxTokenLength)
	lx.errLex(diag.LexTokenTooLong, tok.Span, msg)
	tok.Kind = token.Invalid
	if tok.Text == "" && tok.Span.End > tok.Span.Start && int(tok.Span.End) <= len(lx.file.Content) {
		tok.Text = string(lx.file.Content[tok.Span.Start:tok.Span.End])
	}
	// Fast-forward to EOF to avoid cascading work on a pathological token.
	if off, err := safecast.Conv[uint32](len(lx.file.Content)); err == nil {
		lx.cursor.Off = off
	}
}
