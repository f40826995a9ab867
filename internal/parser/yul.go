package parser

import (
	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/source"
	"surge/internal/token"
)

// parseYulBlock parses a `{ ... }` block of the Yul sub-grammar used inside
// inline assembly. It shares the outer token buffer and diagnostics but has
// its own statement/expression arenas entirely (ast.Yul), since Yul is
// syntactically disjoint from Solidity proper.
func (p *Parser) parseYulBlock() ast.YulBlock {
	start := p.cur().Span
	p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to begin assembly block")
	var stmts []ast.YulStmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.mark()
		id := p.parseYulStmt()
		if id.IsValid() {
			stmts = append(stmts, id)
		}
		if p.mark() == before {
			p.errorf(diag.SynYulBadStatement, p.cur().Span, "expected a yul statement")
			p.advance()
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close assembly block")
	return ast.YulBlock{Stmts: stmts, Span: p.spanFrom(start)}
}

// switch/case/default/leave are contextual within assembly blocks rather
// than reserved words of the surrounding language, so they arrive as plain
// Ident tokens and are recognized here by text.
func (p *Parser) atYulIdent(text string) bool {
	return p.at(token.Ident) && p.cur().Text == text
}

func (p *Parser) parseYulStmt() ast.YulStmtID {
	switch {
	case p.at(token.LBrace):
		block := p.parseYulBlock()
		return p.b.Yul.NewBlock(block)
	case p.at(token.KwLet):
		return p.parseYulLet()
	case p.at(token.KwIf):
		return p.parseYulIf()
	case p.at(token.KwFor):
		return p.parseYulFor()
	case p.atYulIdent("switch"):
		return p.parseYulSwitch()
	case p.at(token.KwFunction):
		return p.parseYulFunctionDef()
	case p.at(token.KwBreak):
		span := p.cur().Span
		p.advance()
		return p.b.Yul.NewBreak(span)
	case p.at(token.KwContinue):
		span := p.cur().Span
		p.advance()
		return p.b.Yul.NewContinue(span)
	case p.atYulIdent("leave"):
		span := p.cur().Span
		p.advance()
		return p.b.Yul.NewLeave(span)
	case p.at(token.Ident):
		return p.parseYulAssignOrCallStmt()
	default:
		return ast.NoYulStmtID
	}
}

func (p *Parser) parseYulLet() ast.YulStmtID {
	start := p.cur().Span
	p.advance() // 'let'
	var names []source.Symbol
	for {
		name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a name in 'let' declaration")
		if !ok {
			break
		}
		names = append(names, p.intern(name.Text))
		if !p.eat(token.Comma) {
			break
		}
	}
	var value ast.YulExprID = ast.NoYulExprID
	if p.eat(token.ColonAssign) {
		value = p.parseYulExpr()
	}
	return p.b.Yul.NewVarDecl(ast.YulVarDecl{Names: names, Value: value, Span: p.spanFrom(start)})
}

func (p *Parser) parseYulIf() ast.YulStmtID {
	start := p.cur().Span
	p.advance() // 'if'
	cond := p.parseYulExpr()
	body := p.parseYulBlock()
	return p.b.Yul.NewIf(ast.YulIf{Cond: cond, Body: body, Span: p.spanFrom(start)})
}

func (p *Parser) parseYulFor() ast.YulStmtID {
	start := p.cur().Span
	p.advance() // 'for'
	init := p.parseYulBlock()
	cond := p.parseYulExpr()
	post := p.parseYulBlock()
	body := p.parseYulBlock()
	return p.b.Yul.NewFor(ast.YulFor{Init: init, Cond: cond, Post: post, Body: body, Span: p.spanFrom(start)})
}

func (p *Parser) parseYulSwitch() ast.YulStmtID {
	start := p.cur().Span
	p.advance() // 'switch'
	value := p.parseYulExpr()
	var cases []ast.YulCase
	for p.atYulIdent("case") || p.atYulIdent("default") {
		caseStart := p.cur().Span
		if p.atYulIdent("default") {
			p.advance()
			body := p.parseYulBlock()
			cases = append(cases, ast.YulCase{IsDefault: true, Body: body, Span: p.spanFrom(caseStart)})
			continue
		}
		p.advance() // 'case'
		lit := p.parseYulExpr()
		body := p.parseYulBlock()
		cases = append(cases, ast.YulCase{Literal: lit, Body: body, Span: p.spanFrom(caseStart)})
	}
	return p.b.Yul.NewSwitch(ast.YulSwitch{Value: value, Cases: cases, Span: p.spanFrom(start)})
}

func (p *Parser) parseYulFunctionDef() ast.YulStmtID {
	start := p.cur().Span
	p.advance() // 'function'
	name, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a function name")
	params := p.parseYulTypedNameList()
	var returns []ast.YulTypedName
	if p.eat(token.Arrow) {
		for {
			ret, ok := p.parseYulTypedName()
			if !ok {
				break
			}
			returns = append(returns, ret)
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	body := p.parseYulBlock()
	return p.b.Yul.NewFunctionDef(ast.YulFunctionDef{
		Name: p.intern(name.Text), Params: params, Returns: returns, Body: body,
		Span: p.spanFrom(start),
	})
}

func (p *Parser) parseYulTypedNameList() []ast.YulTypedName {
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' in yul function signature")
	var names []ast.YulTypedName
	for !p.at(token.RParen) && !p.at(token.EOF) {
		n, ok := p.parseYulTypedName()
		if !ok {
			break
		}
		names = append(names, n)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close yul parameter list")
	return names
}

func (p *Parser) parseYulTypedName() (ast.YulTypedName, bool) {
	start := p.cur().Span
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected an identifier")
	if !ok {
		return ast.YulTypedName{}, false
	}
	var ty source.Symbol
	if p.eat(token.Colon) {
		tyTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a yul type after ':'")
		if ok {
			ty = p.intern(tyTok.Text)
		}
	}
	return ast.YulTypedName{Name: p.intern(name.Text), Type: ty, Span: p.spanFrom(start)}, true
}

// parseYulAssignOrCallStmt disambiguates `path... := expr` from a bare call
// expression used as a statement, both of which start with an identifier.
func (p *Parser) parseYulAssignOrCallStmt() ast.YulStmtID {
	start := p.cur().Span
	mark := p.mark()
	var targets []source.Symbol
	for {
		name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected an identifier")
		if !ok {
			p.rollback(mark)
			break
		}
		targets = append(targets, p.intern(name.Text))
		if p.at(token.Dot) {
			// Member paths (e.g. `a.slot`) only ever appear as plain
			// expressions in this dialect's builtin surface, not as
			// multi-assignment targets, so treat any dot as ending the
			// assignment-target list and fall through to expression parsing.
			p.rollback(mark)
			targets = nil
			break
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	if len(targets) > 0 && p.eat(token.ColonAssign) {
		value := p.parseYulExpr()
		return p.b.Yul.NewAssign(ast.YulAssign{Targets: targets, Value: value, Span: p.spanFrom(start)})
	}
	p.rollback(mark)
	expr := p.parseYulExpr()
	return p.b.Yul.NewExprStmt(ast.YulExprStmt{Expr: expr, Span: p.spanFrom(start)})
}

func (p *Parser) parseYulExpr() ast.YulExprID {
	start := p.cur().Span
	switch p.cur().Kind {
	case token.IntLit, token.HexLit, token.StringLit:
		text := p.cur().Text
		p.advance()
		return p.b.Yul.Exprs.NewLiteral(text, start)
	case token.KwTrue, token.KwFalse:
		text := p.cur().Text
		p.advance()
		return p.b.Yul.Exprs.NewLiteral(text, start)
	case token.Ident:
		name := p.cur().Text
		p.advance()
		if p.at(token.LParen) {
			args := p.parseYulCallArgs()
			return p.b.Yul.Exprs.NewCall(ast.YulCall{Name: p.intern(name), Args: args, Span: p.spanFrom(start)})
		}
		expr := p.b.Yul.Exprs.NewIdent(p.intern(name), start)
		for p.at(token.Dot) {
			p.advance()
			member, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier after '.' in yul path")
			if !ok {
				break
			}
			name = name + "." + member.Text
			expr = p.b.Yul.Exprs.NewIdent(p.intern(name), p.spanFrom(start))
		}
		return expr
	default:
		p.errorf(diag.SynYulBadStatement, p.cur().Span, "expected a yul expression")
		return ast.NoYulExprID
	}
}

func (p *Parser) parseYulCallArgs() []ast.YulExprID {
	p.advance() // '('
	var args []ast.YulExprID
	for !p.at(token.RParen) && !p.at(token.EOF) {
		args = append(args, p.parseYulExpr())
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close yul call arguments")
	return args
}
