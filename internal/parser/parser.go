// Package parser builds an internal/ast tree from a token stream. It never
// aborts on a malformed file: on an unexpected token it reports a diagnostic,
// skips forward to a synchronization point, and keeps going, so one bad
// declaration does not lose the rest of the file.
package parser

import (
	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/lexer"
	"surge/internal/source"
	"surge/internal/token"
)

// Parser consumes a lexer.Lexer token stream and allocates nodes through an
// ast.Builder. One Parser parses exactly one compilation unit.
type Parser struct {
	lx   *lexer.Lexer
	b    *ast.Builder
	syms *source.SymbolTable
	rep  diag.Reporter
	file source.FileID

	// buf/pos hold every token fetched from lx so far, so the parser can
	// speculatively try a grammar (e.g. "is this a type or an expression?")
	// and roll back to mark() without re-lexing. lx.Peek/Push only cover a
	// single token, which is not enough for multi-token type-name lookahead.
	buf      []token.Token
	pos      int
	prevEnd  uint32
	errCount int
}

// maxRecoveredErrors bounds how many error diagnostics (of any code) a single
// file can produce before the parser starts skipping silently; pathological
// input (e.g. a binary file fed as source) would otherwise flood the bag.
const maxRecoveredErrors = 200

// New returns a Parser reading file through lx, allocating into b, and
// interning identifier text through syms.
func New(lx *lexer.Lexer, b *ast.Builder, syms *source.SymbolTable, rep diag.Reporter, file source.FileID) *Parser {
	p := &Parser{lx: lx, b: b, syms: syms, rep: rep, file: file}
	p.buf = append(p.buf, lx.Next())
	return p
}

func (p *Parser) cur() token.Token { return p.buf[p.pos] }

func (p *Parser) advance() {
	p.prevEnd = p.buf[p.pos].Span.End
	p.pos++
	if p.pos == len(p.buf) {
		p.buf = append(p.buf, p.lx.Next())
	}
}

// mark returns a position rollback() can later restore; used to speculatively
// attempt one grammar and fall back to another.
func (p *Parser) mark() int { return p.pos }

// rollback restores the parser to a position previously returned by mark.
func (p *Parser) rollback(m int) {
	p.pos = m
	if p.pos > 0 {
		p.prevEnd = p.buf[p.pos-1].Span.End
	}
}

func (p *Parser) at(k token.Kind) bool { return p.cur().Kind == k }

func (p *Parser) atAny(ks ...token.Kind) bool {
	for _, k := range ks {
		if p.cur().Kind == k {
			return true
		}
	}
	return false
}

// eat consumes the current token if it matches k and reports whether it did.
func (p *Parser) eat(k token.Kind) bool {
	if p.cur().Kind != k {
		return false
	}
	p.advance()
	return true
}

// expect consumes the current token if it matches k, otherwise reports code
// at the current token's span and leaves the cursor untouched so the caller's
// recovery logic decides how to resynchronize.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.cur().Kind == k {
		tok := p.cur()
		p.advance()
		return tok, true
	}
	p.errorf(code, p.cur().Span, msg)
	return token.Token{}, false
}

func (p *Parser) errorf(code diag.Code, span source.Span, msg string) {
	if p.errCount >= maxRecoveredErrors {
		return
	}
	p.errCount++
	diag.ReportError(p.rep, code, span, msg).Emit()
}

func (p *Parser) warnf(code diag.Code, span source.Span, msg string) {
	diag.ReportWarning(p.rep, code, span, msg).Emit()
}

func (p *Parser) intern(text string) source.Symbol {
	if p.syms == nil {
		return source.NoSymbol
	}
	return p.syms.Intern(text)
}

// spanFrom builds a span covering [start.Start, p.prevEnd) in the current file,
// used once a construct's final consumed token has already advanced past.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return source.Span{File: p.file, Start: start.Start, End: p.prevEnd}
}

// syncTo advances until the current token is one of stop or EOF. The stop
// token itself is not consumed.
func (p *Parser) syncTo(stop ...token.Kind) {
	for {
		if p.at(token.EOF) {
			return
		}
		for _, s := range stop {
			if p.cur().Kind == s {
				return
			}
		}
		p.advance()
	}
}

// syncStmt recovers from a malformed statement by skipping to the next ';'
// (consumed) or a block boundary (not consumed).
func (p *Parser) syncStmt() {
	for {
		switch p.cur().Kind {
		case token.Semicolon:
			p.advance()
			return
		case token.RBrace, token.EOF:
			return
		default:
			p.advance()
		}
	}
}

// topLevelStarters are the tokens that can legally begin a new top-level
// item; syncTopLevel skips forward to the next one after a malformed item.
var topLevelStarters = []token.Kind{
	token.KwPragma, token.KwImport, token.KwUsing, token.KwContract,
	token.KwInterface, token.KwLibrary, token.KwAbstract, token.KwFunction,
	token.KwStruct, token.KwEnum, token.KwError, token.KwType,
}

func (p *Parser) syncTopLevel() {
	if p.at(token.EOF) {
		return
	}
	p.advance()
	for !p.at(token.EOF) {
		for _, s := range topLevelStarters {
			if p.cur().Kind == s {
				return
			}
		}
		p.advance()
	}
}

// ParseFile parses an entire compilation unit and returns the resulting
// ast.FileID, allocated into the Parser's Builder. The returned tree is
// always well-formed as a tree, though it may contain poisoned subtrees
// (NoExprID/NoStmtID/NoTypeID holes) wherever recovery discarded input.
func ParseFile(lx *lexer.Lexer, b *ast.Builder, syms *source.SymbolTable, rep diag.Reporter, file source.FileID) ast.FileID {
	p := New(lx, b, syms, rep, file)
	return p.parseFile()
}

func (p *Parser) parseFile() ast.FileID {
	startSpan := p.cur().Span
	var items []ast.ItemID
	for !p.at(token.EOF) {
		before := p.mark()
		id, ok := p.parseTopLevelItem()
		if ok && id.IsValid() {
			items = append(items, id)
		}
		if p.mark() == before {
			// No progress was made; force it so we never loop forever.
			p.syncTopLevel()
		}
	}
	span := source.Span{File: p.file, Start: startSpan.Start, End: p.prevEnd}
	return p.b.Files.New(span, items)
}
