package lexer

import (
	"surge/internal/diag"
	"surge/internal/token"
)

// collectLeadingTrivia gathers the run of trivia preceding the next
// significant token.
//   - ' ' and '\t' coalesce into one TriviaSpace.
//   - consecutive '\n' coalesce into one TriviaNewline (source.Map rewrites
//     CRLF to LF when it loads a file; a lone CR is left as it is).
//   - "//..." up to '\n' becomes TriviaLineComment, or TriviaDocLine for "///".
//   - "/* ... */" becomes TriviaBlockComment, or TriviaDocBlock for "/** ... */".
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		if b == '/' {
			if lx.scanCommentIntoHold() {
				continue
			}
		}

		break
	}
}

// scanCommentIntoHold consumes a "//", "///", "/*", or "/**" comment starting
// at the current position and appends it to lx.hold. Returns false (cursor
// unchanged) if the current position is not actually a comment.
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}

	switch lx.cursor.Peek() {
	case '/':
		lx.cursor.Bump()
		kind := token.TriviaLineComment
		if lx.cursor.Peek() == '/' {
			lx.cursor.Bump()
			kind = token.TriviaDocLine
		}
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.hold = append(lx.hold, token.Trivia{
			Kind: kind,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		})
		return true

	case '*':
		lx.cursor.Bump()
		kind := token.TriviaBlockComment
		if lx.cursor.Peek() == '*' {
			// "/**" — but "/**/" is an empty plain block comment, not doc.
			if b0, b1, ok := lx.cursor.Peek2(); !(ok && b0 == '*' && b1 == '/') {
				lx.cursor.Bump()
				kind = token.TriviaDocBlock
			}
		}
		closed := false
		for !lx.cursor.EOF() {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if !closed {
			lx.errLex(diag.LexUnterminatedComment, sp, "unterminated block comment")
		}
		lx.hold = append(lx.hold, token.Trivia{
			Kind: kind,
			Span: sp,
			Text: string(lx.file.Content[sp.Start:sp.End]),
		})
		return true

	default:
		lx.cursor.Reset(start)
		return false
	}
}
