package parser

import (
	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/source"
	"surge/internal/token"
)

// binInfo is the precedence and operator tag for a binary-operator token.
// Precedence follows Solidity's operator table; all entries are left
// associative except StarStar (exponentiation), handled specially below.
type binInfo struct {
	op   ast.BinaryOp
	prec int
}

var binTable = map[token.Kind]binInfo{
	token.OrOr:    {ast.BinOr, 1},
	token.AndAnd:  {ast.BinAnd, 2},
	token.EqEq:    {ast.BinEq, 3},
	token.BangEq:  {ast.BinNeq, 3},
	token.Lt:      {ast.BinLt, 4},
	token.LtEq:    {ast.BinLe, 4},
	token.Gt:      {ast.BinGt, 4},
	token.GtEq:    {ast.BinGe, 4},
	token.Pipe:    {ast.BinBitOr, 5},
	token.Caret:   {ast.BinBitXor, 6},
	token.Amp:     {ast.BinBitAnd, 7},
	token.Shl:     {ast.BinShl, 8},
	token.Shr:     {ast.BinShr, 8},
	token.Plus:    {ast.BinAdd, 9},
	token.Minus:   {ast.BinSub, 9},
	token.Star:    {ast.BinMul, 10},
	token.Slash:   {ast.BinDiv, 10},
	token.Percent: {ast.BinMod, 10},
	token.StarStar: {ast.BinPow, 11},
}

var assignTable = map[token.Kind]ast.AssignOp{
	token.Assign:        ast.AsgAssign,
	token.PlusAssign:    ast.AsgAdd,
	token.MinusAssign:   ast.AsgSub,
	token.StarAssign:    ast.AsgMul,
	token.SlashAssign:   ast.AsgDiv,
	token.PercentAssign: ast.AsgMod,
	token.AmpAssign:     ast.AsgBitAnd,
	token.PipeAssign:    ast.AsgBitOr,
	token.CaretAssign:   ast.AsgBitXor,
	token.ShlAssign:     ast.AsgShl,
	token.ShrAssign:     ast.AsgShr,
}

// parseExpr parses a full expression, including assignment and the ternary
// conditional, which both bind looser than any binary operator.
func (p *Parser) parseExpr() ast.ExprID {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() ast.ExprID {
	left := p.parseConditional()
	if op, ok := assignTable[p.cur().Kind]; ok {
		start := p.exprSpan(left)
		p.advance()
		value := p.parseAssignment()
		return p.b.Exprs.NewAssign(ast.AssignExpr{
			Op: op, Target: left, Value: value,
			Span: source.Span{File: p.file, Start: start.Start, End: p.prevEnd},
		})
	}
	return left
}

func (p *Parser) parseConditional() ast.ExprID {
	cond := p.parseBinary(1)
	if p.at(token.Question) {
		start := p.exprSpan(cond)
		p.advance()
		then := p.parseExpr()
		p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' in conditional expression")
		els := p.parseAssignment()
		return p.b.Exprs.NewConditional(ast.ConditionalExpr{
			Cond: cond, Then: then, Else: els,
			Span: source.Span{File: p.file, Start: start.Start, End: p.prevEnd},
		})
	}
	return cond
}

func (p *Parser) parseBinary(minPrec int) ast.ExprID {
	left := p.parseUnary()
	for {
		info, ok := binTable[p.cur().Kind]
		if !ok || info.prec < minPrec {
			return left
		}
		p.advance()
		nextMin := info.prec + 1
		if info.op == ast.BinPow {
			nextMin = info.prec // right associative
		}
		right := p.parseBinary(nextMin)
		start := p.exprSpan(left)
		left = p.b.Exprs.NewBinary(ast.BinaryExpr{
			Op: info.op, Left: left, Right: right,
			Span: source.Span{File: p.file, Start: start.Start, End: p.prevEnd},
		})
	}
}

func (p *Parser) parseUnary() ast.ExprID {
	start := p.cur().Span
	switch p.cur().Kind {
	case token.Minus:
		p.advance()
		return p.wrapUnary(ast.UnNeg, start, true)
	case token.Bang:
		p.advance()
		return p.wrapUnary(ast.UnNot, start, true)
	case token.Tilde:
		p.advance()
		return p.wrapUnary(ast.UnBitNot, start, true)
	case token.PlusPlus:
		p.advance()
		return p.wrapUnary(ast.UnInc, start, true)
	case token.MinusMinus:
		p.advance()
		return p.wrapUnary(ast.UnDec, start, true)
	case token.KwDelete:
		p.advance()
		return p.wrapUnary(ast.UnDelete, start, true)
	default:
		return p.parsePostfix()
	}
}

func (p *Parser) wrapUnary(op ast.UnaryOp, start source.Span, prefix bool) ast.ExprID {
	operand := p.parseUnary()
	return p.b.Exprs.NewUnary(ast.UnaryExpr{
		Op: op, Operand: operand, Prefix: prefix,
		Span: source.Span{File: p.file, Start: start.Start, End: p.prevEnd},
	})
}

func (p *Parser) parsePostfix() ast.ExprID {
	expr := p.parsePrimary()
	for {
		start := p.exprSpan(expr)
		switch p.cur().Kind {
		case token.Dot:
			p.advance()
			name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected member name after '.'")
			if !ok {
				return expr
			}
			expr = p.b.Exprs.NewMember(ast.MemberExpr{
				Object: expr, Name: p.intern(name.Text),
				Span: source.Span{File: p.file, Start: start.Start, End: p.prevEnd},
			})
		case token.LBracket:
			expr = p.parseIndexOrSlice(expr, start)
		case token.LParen:
			expr = p.parseCall(expr, start)
		case token.LBrace:
			if !p.looksLikeCallOptions() {
				return expr
			}
			expr = p.parseCallOptions(expr, start)
		case token.PlusPlus:
			p.advance()
			expr = p.b.Exprs.NewUnary(ast.UnaryExpr{
				Op: ast.UnInc, Operand: expr, Prefix: false,
				Span: source.Span{File: p.file, Start: start.Start, End: p.prevEnd},
			})
		case token.MinusMinus:
			p.advance()
			expr = p.b.Exprs.NewUnary(ast.UnaryExpr{
				Op: ast.UnDec, Operand: expr, Prefix: false,
				Span: source.Span{File: p.file, Start: start.Start, End: p.prevEnd},
			})
		default:
			return expr
		}
	}
}

// looksLikeCallOptions reports whether a '{' following a postfix expression
// opens a call-options block (`name: value` pairs) rather than, say, the
// start of an unrelated block statement a caller might feed this parser.
func (p *Parser) looksLikeCallOptions() bool {
	if !p.at(token.LBrace) {
		return false
	}
	m := p.mark()
	p.advance()
	ok := p.at(token.Ident)
	if ok {
		p.advance()
		ok = p.at(token.Colon)
	}
	p.rollback(m)
	return ok
}

func (p *Parser) parseIndexOrSlice(object ast.ExprID, start source.Span) ast.ExprID {
	p.advance() // '['
	if p.at(token.Colon) {
		p.advance()
		var to ast.ExprID
		if !p.at(token.RBracket) {
			to = p.parseExpr()
		}
		p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']' to close slice")
		return p.b.Exprs.NewIndexRange(ast.IndexRangeExpr{
			Object: object, From: ast.NoExprID, To: to,
			Span: p.spanFrom(start),
		})
	}
	if p.at(token.RBracket) {
		// `new T[](n)`-style bare `[]` handled by the caller via NewExpr;
		// reaching here means an empty index, which is never valid.
		p.errorf(diag.SynUnexpectedToken, p.cur().Span, "expected an index expression")
		p.advance()
		return object
	}
	first := p.parseExpr()
	if p.at(token.Colon) {
		p.advance()
		var to ast.ExprID
		if !p.at(token.RBracket) {
			to = p.parseExpr()
		}
		p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']' to close slice")
		return p.b.Exprs.NewIndexRange(ast.IndexRangeExpr{
			Object: object, From: first, To: to,
			Span: p.spanFrom(start),
		})
	}
	p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']' to close index expression")
	return p.b.Exprs.NewIndex(ast.IndexExpr{
		Object: object, Index: first,
		Span: p.spanFrom(start),
	})
}

func (p *Parser) parseCall(callee ast.ExprID, start source.Span) ast.ExprID {
	args := p.parseCallArgs()
	return p.b.Exprs.NewCall(ast.CallExpr{
		Callee: callee, Args: args,
		Span: p.spanFrom(start),
	})
}

// parseCallArgs parses either `(a, b, c)` (positional) or
// `({a: 1, b: 2})` (named), which Solidity never mixes within one call.
func (p *Parser) parseCallArgs() []ast.CallArg {
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' to begin argument list")
	if p.at(token.RParen) {
		p.advance()
		return nil
	}
	if p.at(token.LBrace) {
		args := p.parseNamedArgBlock()
		p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' after named argument block")
		return args
	}
	var args []ast.CallArg
	for !p.at(token.RParen) && !p.at(token.EOF) {
		args = append(args, ast.CallArg{Value: p.parseExpr()})
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close argument list")
	return args
}

func (p *Parser) parseNamedArgBlock() []ast.CallArg {
	p.advance() // '{'
	var args []ast.CallArg
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected argument name")
		if !ok {
			p.syncTo(token.RBrace, token.Comma)
		}
		p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after named argument name")
		value := p.parseExpr()
		args = append(args, ast.CallArg{Name: p.intern(name.Text), Value: value})
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close named argument block")
	return args
}

func (p *Parser) parseCallOptions(callee ast.ExprID, start source.Span) ast.ExprID {
	p.advance() // '{'
	var opts []ast.CallOption
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected option name")
		if !ok {
			p.syncTo(token.RBrace, token.Comma)
		}
		p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after call option name")
		value := p.parseExpr()
		opts = append(opts, ast.CallOption{Name: p.intern(name.Text), Value: value})
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close call-options block")
	return p.b.Exprs.NewCallOptions(ast.CallOptionsExpr{
		Callee: callee, Options: opts,
		Span: p.spanFrom(start),
	})
}

func (p *Parser) parsePrimary() ast.ExprID {
	start := p.cur().Span
	switch p.cur().Kind {
	case token.IntLit:
		text := p.cur().Text
		p.advance()
		return p.b.Exprs.NewIntLit(text, start)
	case token.RationalLit:
		text := p.cur().Text
		p.advance()
		return p.b.Exprs.NewRationalLit(text, start)
	case token.StringLit:
		text := p.cur().Text
		p.advance()
		return p.b.Exprs.NewStringLit(text, start)
	case token.HexLit:
		text := p.cur().Text
		p.advance()
		return p.b.Exprs.NewHexStringLit(text, start)
	case token.UnicodeLit:
		text := p.cur().Text
		p.advance()
		return p.b.Exprs.NewUnicodeStringLit(text, start)
	case token.KwTrue:
		p.advance()
		return p.b.Exprs.NewBoolLit(true, start)
	case token.KwFalse:
		p.advance()
		return p.b.Exprs.NewBoolLit(false, start)
	case token.KwThis:
		p.advance()
		return p.b.Exprs.NewThis(start)
	case token.KwSuper:
		p.advance()
		return p.b.Exprs.NewSuper(start)
	case token.KwNew:
		p.advance()
		ty := p.parseType()
		return p.b.Exprs.NewNew(ast.NewExpr{Type: ty, Span: p.spanFrom(start)})
	case token.KwType:
		p.advance()
		p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'type'")
		ty := p.parseType()
		p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close type(...)")
		return p.b.Exprs.NewTypeExpr(ast.TypeExpr{Type: ty, Span: p.spanFrom(start)})
	case token.KwPayable:
		// `payable(x)` is an explicit conversion to address payable.
		p.advance()
		ty := p.b.Types.NewAddress(true, start)
		return p.b.Exprs.NewElementaryTypeExpr(ast.ElementaryTypeExpr{Type: ty, Span: p.spanFrom(start)})
	case token.LParen:
		return p.parseParenOrTuple()
	case token.LBracket:
		return p.parseInlineArray()
	case token.Ident:
		text := p.cur().Text
		if text == "address" || isElementaryName(text) {
			ty := p.parseBaseType()
			return p.b.Exprs.NewElementaryTypeExpr(ast.ElementaryTypeExpr{Type: ty, Span: p.spanFrom(start)})
		}
		p.advance()
		return p.b.Exprs.NewIdent(p.intern(text), start)
	default:
		p.errorf(diag.SynUnexpectedToken, p.cur().Span, "expected an expression")
		// Do not consume: let the caller's recovery logic skip forward so
		// we don't silently eat a delimiter the enclosing grammar needs.
		return ast.NoExprID
	}
}

// parseParenOrTuple parses `(expr)` (plain grouping) or a tuple/destructuring
// target `(a, , c)`, where empty slots are legal only in the latter.
func (p *Parser) parseParenOrTuple() ast.ExprID {
	start := p.cur().Span
	p.advance() // '('
	var elems []ast.ExprID
	sawComma := false
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if p.at(token.Comma) {
			elems = append(elems, ast.NoExprID)
		} else {
			elems = append(elems, p.parseExpr())
		}
		if p.eat(token.Comma) {
			sawComma = true
			continue
		}
		break
	}
	p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close parenthesized expression")
	if !sawComma && len(elems) == 1 {
		return elems[0]
	}
	return p.b.Exprs.NewTuple(ast.TupleExpr{Elems: elems, Span: p.spanFrom(start)})
}

func (p *Parser) parseInlineArray() ast.ExprID {
	start := p.cur().Span
	p.advance() // '['
	var elems []ast.ExprID
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		elems = append(elems, p.parseExpr())
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']' to close array literal")
	return p.b.Exprs.NewInlineArray(ast.InlineArrayExpr{Elems: elems, Span: p.spanFrom(start)})
}

// exprSpan returns the already-recorded span of a previously allocated
// expression node, used to build covering spans for the node that wraps it.
func (p *Parser) exprSpan(id ast.ExprID) source.Span {
	if !id.IsValid() {
		return source.Span{File: p.file, Start: p.prevEnd, End: p.prevEnd}
	}
	return p.b.Exprs.Get(id).Span
}
