package parser

import (
	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/source"
	"surge/internal/token"
)

// parseStmt parses one statement. On a malformed statement it reports a
// diagnostic, skips to the next ';' or block boundary, and returns
// ast.NoStmtID; the caller (parseBlock) simply omits the hole from its list.
func (p *Parser) parseStmt() ast.StmtID {
	switch p.cur().Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.KwIf:
		return p.parseIf()
	case token.KwFor:
		return p.parseFor()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwDo:
		return p.parseDoWhile()
	case token.KwReturn:
		return p.parseReturn()
	case token.KwBreak:
		start := p.cur().Span
		p.advance()
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after 'break'")
		return p.b.Stmts.NewBreak(p.spanFrom(start))
	case token.KwContinue:
		start := p.cur().Span
		p.advance()
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after 'continue'")
		return p.b.Stmts.NewContinue(p.spanFrom(start))
	case token.KwThrow:
		start := p.cur().Span
		p.advance()
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after 'throw'")
		return p.b.Stmts.NewThrow(p.spanFrom(start))
	case token.KwPlaceholder:
		start := p.cur().Span
		p.advance()
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after '_'")
		return p.b.Stmts.NewPlaceholder(p.spanFrom(start))
	case token.KwEmit:
		return p.parseEmit()
	case token.KwRevert:
		return p.parseRevert()
	case token.KwUnchecked:
		return p.parseUnchecked()
	case token.KwTry:
		return p.parseTry()
	case token.KwAssembly:
		return p.parseAssembly()
	case token.Semicolon:
		// Empty statement: allowed as a loop body, e.g. `for (;;) ;`.
		start := p.cur().Span
		p.advance()
		return p.b.Stmts.NewBlock(ast.BlockStmt{Span: start})
	default:
		return p.parseVarDeclOrExprStmt()
	}
}

func (p *Parser) parseBlock() ast.StmtID {
	start := p.cur().Span
	p.advance() // '{'
	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.mark()
		id := p.parseStmt()
		if id.IsValid() {
			stmts = append(stmts, id)
		}
		if p.mark() == before {
			p.syncStmt()
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close block")
	return p.b.Stmts.NewBlock(ast.BlockStmt{Stmts: stmts, Span: p.spanFrom(start)})
}

func (p *Parser) parseIf() ast.StmtID {
	start := p.cur().Span
	p.advance() // 'if'
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'if'")
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' after if condition")
	then := p.parseLoopOrBranchBody()
	var els ast.StmtID
	if p.eat(token.KwElse) {
		els = p.parseLoopOrBranchBody()
	}
	return p.b.Stmts.NewIf(ast.IfStmt{Cond: cond, Then: then, Else: els, Span: p.spanFrom(start)})
}

// parseLoopOrBranchBody parses the body of if/for/while/do. A bare variable
// declaration as the sole body (it would go out of scope immediately and
// can never be observed) is rejected by the AST validator pass, not here.
func (p *Parser) parseLoopOrBranchBody() ast.StmtID {
	return p.parseStmt()
}

func (p *Parser) parseFor() ast.StmtID {
	start := p.cur().Span
	p.advance() // 'for'
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'for'")
	var init ast.StmtID
	if p.at(token.Semicolon) {
		p.advance()
	} else {
		init = p.parseVarDeclOrExprStmt()
	}
	var cond ast.ExprID
	if !p.at(token.Semicolon) {
		cond = p.parseExpr()
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after for-loop condition")
	var post ast.ExprID
	if !p.at(token.RParen) {
		post = p.parseExpr()
	}
	p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' after for-loop clauses")
	body := p.parseLoopOrBranchBody()
	return p.b.Stmts.NewFor(ast.ForStmt{Init: init, Cond: cond, Post: post, Body: body, Span: p.spanFrom(start)})
}

func (p *Parser) parseWhile() ast.StmtID {
	start := p.cur().Span
	p.advance() // 'while'
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'while'")
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' after while condition")
	body := p.parseLoopOrBranchBody()
	return p.b.Stmts.NewWhile(ast.WhileStmt{Cond: cond, Body: body, Span: p.spanFrom(start)})
}

func (p *Parser) parseDoWhile() ast.StmtID {
	start := p.cur().Span
	p.advance() // 'do'
	body := p.parseLoopOrBranchBody()
	p.expect(token.KwWhile, diag.SynExpectedKeyword, "expected 'while' after do-block")
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'while'")
	cond := p.parseExpr()
	p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' after do-while condition")
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after do-while statement")
	return p.b.Stmts.NewDoWhile(ast.DoWhileStmt{Body: body, Cond: cond, Span: p.spanFrom(start)})
}

func (p *Parser) parseReturn() ast.StmtID {
	start := p.cur().Span
	p.advance() // 'return'
	var value ast.ExprID
	if !p.at(token.Semicolon) {
		value = p.parseExpr()
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after return statement")
	return p.b.Stmts.NewReturn(ast.ReturnStmt{Value: value, Span: p.spanFrom(start)})
}

func (p *Parser) parseEmit() ast.StmtID {
	start := p.cur().Span
	p.advance() // 'emit'
	call := p.parseExpr()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after emit statement")
	return p.b.Stmts.NewEmit(ast.EmitStmt{Call: call, Span: p.spanFrom(start)})
}

func (p *Parser) parseRevert() ast.StmtID {
	start := p.cur().Span
	p.advance() // 'revert'
	var callee ast.ExprID
	if !p.at(token.LParen) {
		callee = p.parseRevertCallee()
	}
	args := p.parseCallArgs()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after revert statement")
	return p.b.Stmts.NewRevert(ast.RevertStmt{Callee: callee, Args: args, Span: p.spanFrom(start)})
}

// parseRevertCallee parses the (possibly dotted) custom-error reference in
// `revert Path.Error(args);`, stopping just before the call parentheses.
func (p *Parser) parseRevertCallee() ast.ExprID {
	start := p.cur().Span
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a custom error name")
	if !ok {
		return ast.NoExprID
	}
	expr := p.b.Exprs.NewIdent(p.intern(name.Text), start)
	for p.at(token.Dot) {
		dotStart := p.exprSpan(expr)
		p.advance()
		member, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier after '.'")
		if !ok {
			break
		}
		expr = p.b.Exprs.NewMember(ast.MemberExpr{
			Object: expr, Name: p.intern(member.Text),
			Span: p.spanFrom(dotStart),
		})
	}
	return expr
}

// parseUnchecked parses `unchecked { ... }`. Rejecting a directly- or
// transitively-nested unchecked block is the AST validator's job, since it
// needs to see through intervening blocks/ifs, not just this block's
// immediate children.
func (p *Parser) parseUnchecked() ast.StmtID {
	start := p.cur().Span
	p.advance() // 'unchecked'
	body := p.parseBlock()
	return p.b.Stmts.NewUnchecked(ast.UncheckedStmt{Body: body, Span: p.spanFrom(start)})
}

func (p *Parser) parseTry() ast.StmtID {
	start := p.cur().Span
	p.advance() // 'try'
	expr := p.parseExpr()
	var returns []ast.ParamID
	if p.eat(token.KwReturns) {
		returns = p.parseTypeOnlyParamList()
	}
	body := p.parseBlock()
	var catches []ast.CatchClause
	for p.at(token.KwCatch) {
		catches = append(catches, p.parseCatchClause())
	}
	return p.b.Stmts.NewTry(ast.TryStmt{Expr: expr, Returns: returns, Body: body, Catches: catches, Span: p.spanFrom(start)})
}

func (p *Parser) parseCatchClause() ast.CatchClause {
	start := p.cur().Span
	p.advance() // 'catch'
	var name source.Symbol
	var params []ast.ParamID
	if p.at(token.Ident) {
		name = p.intern(p.cur().Text)
		p.advance()
	}
	if p.at(token.LParen) {
		params = p.parseTypeOnlyParamList()
	}
	body := p.parseBlock()
	return ast.CatchClause{Name: name, Params: params, Body: body, Span: p.spanFrom(start)}
}

func (p *Parser) parseAssembly() ast.StmtID {
	start := p.cur().Span
	p.advance() // 'assembly'
	dialect := ""
	if p.at(token.StringLit) {
		dialect = p.cur().Text
		p.advance()
	}
	var flags []string
	if p.at(token.LParen) {
		p.advance()
		for !p.at(token.RParen) && !p.at(token.EOF) {
			if p.at(token.StringLit) {
				flags = append(flags, p.cur().Text)
				p.advance()
			}
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close assembly flag list")
	}
	body := p.parseYulBlock()
	return p.b.Stmts.NewAssembly(ast.AssemblyStmt{Dialect: dialect, Flags: flags, Body: body, Span: p.spanFrom(start)})
}

// parseVarDeclOrExprStmt disambiguates a local variable declaration from a
// bare expression statement by speculatively parsing a type and rolling
// back if what follows doesn't look like a declarator.
func (p *Parser) parseVarDeclOrExprStmt() ast.StmtID {
	if p.at(token.LParen) {
		if id, ok := p.tryParseTupleVarDecl(); ok {
			return id
		}
	}
	if id, ok := p.tryParseSingleVarDecl(); ok {
		return id
	}
	return p.parseExprStmt()
}

// tryParseSingleVarDecl speculatively parses `Type [location] Name [= init];`.
// It rolls back and reports false if the input doesn't fit that shape so the
// caller can fall back to parsing a plain expression statement.
func (p *Parser) tryParseSingleVarDecl() (ast.StmtID, bool) {
	if !p.looksLikeTypeStart() {
		return ast.NoStmtID, false
	}
	start := p.mark()
	startSpan := p.cur().Span
	ty := p.parseType()
	loc := p.parseOptionalDataLocation()
	if !p.at(token.Ident) {
		p.rollback(start)
		return ast.NoStmtID, false
	}
	nameTok := p.cur()
	p.advance()
	var init ast.ExprID
	if p.eat(token.Assign) {
		init = p.parseExpr()
	}
	if !p.at(token.Semicolon) {
		p.rollback(start)
		return ast.NoStmtID, false
	}
	p.advance() // ';'
	name := ast.VarDeclName{Type: ty, Name: p.intern(nameTok.Text), Location: loc, Span: p.spanFrom(startSpan)}
	return p.b.Stmts.NewVarDecl(ast.VarDeclStmt{Names: []ast.VarDeclName{name}, Init: init, Span: p.spanFrom(startSpan)}), true
}

// tryParseTupleVarDecl speculatively parses a destructuring declaration such
// as `(uint a, , bool c) = f();`.
func (p *Parser) tryParseTupleVarDecl() (ast.StmtID, bool) {
	start := p.mark()
	startSpan := p.cur().Span
	p.advance() // '('
	var names []ast.VarDeclName
	ok := true
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if p.at(token.Comma) {
			names = append(names, ast.VarDeclName{})
			p.advance()
			continue
		}
		slotSpan := p.cur().Span
		if !p.looksLikeTypeStart() {
			ok = false
			break
		}
		ty := p.parseType()
		loc := p.parseOptionalDataLocation()
		if !p.at(token.Ident) {
			ok = false
			break
		}
		nameTok := p.cur()
		p.advance()
		names = append(names, ast.VarDeclName{Type: ty, Name: p.intern(nameTok.Text), Location: loc, Span: p.spanFrom(slotSpan)})
		if !p.eat(token.Comma) {
			break
		}
	}
	if !ok || !p.at(token.RParen) {
		p.rollback(start)
		return ast.NoStmtID, false
	}
	p.advance() // ')'
	if !p.eat(token.Assign) {
		p.rollback(start)
		return ast.NoStmtID, false
	}
	init := p.parseExpr()
	if !p.at(token.Semicolon) {
		p.rollback(start)
		return ast.NoStmtID, false
	}
	p.advance() // ';'
	return p.b.Stmts.NewVarDecl(ast.VarDeclStmt{Names: names, Init: init, Span: p.spanFrom(startSpan)}), true
}

// looksLikeTypeStart reports whether the current token can begin a
// TypeName, as a cheap pre-filter before the more expensive speculative
// parse in tryParseSingleVarDecl/tryParseTupleVarDecl.
func (p *Parser) looksLikeTypeStart() bool {
	switch p.cur().Kind {
	case token.KwMapping, token.KwFunction:
		return true
	case token.Ident:
		return true
	default:
		return false
	}
}

func (p *Parser) parseExprStmt() ast.StmtID {
	start := p.cur().Span
	expr := p.parseExpr()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after expression statement")
	return p.b.Stmts.NewExprStmt(ast.ExprStmt{Expr: expr, Span: p.spanFrom(start)})
}
