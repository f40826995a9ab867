package parser

import (
	"strings"

	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/source"
	"surge/internal/token"
)

// isElementaryName reports whether text spells one of Solidity's built-in
// value-type names other than address. The parser only needs the shape: the
// type interner is the authority on which bit-widths are actually legal.
func isElementaryName(text string) bool {
	switch text {
	case "bool", "string", "bytes", "byte":
		return true
	}
	if strings.HasPrefix(text, "uint") {
		return isAllDigitsOrEmpty(text[len("uint"):])
	}
	if strings.HasPrefix(text, "int") {
		return isAllDigitsOrEmpty(text[len("int"):])
	}
	if strings.HasPrefix(text, "bytes") {
		return isAllDigitsOrEmpty(text[len("bytes"):])
	}
	if strings.HasPrefix(text, "fixed") || strings.HasPrefix(text, "ufixed") {
		return true
	}
	return false
}

func isAllDigitsOrEmpty(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseType parses a TypeName and any trailing `[len]`/`[]` array suffixes.
func (p *Parser) parseType() ast.TypeID {
	base := p.parseBaseType()
	for p.at(token.LBracket) {
		start := p.b.Types.Get(base).Span
		p.advance()
		var length ast.ExprID
		if !p.at(token.RBracket) {
			length = p.parseExpr()
		}
		end, _ := p.expect(token.RBracket, diag.SynUnexpectedToken, "expected ']' to close array type")
		span := source.Span{File: p.file, Start: start.Start, End: maxEnd(end.Span.End, p.prevEnd)}
		base = p.b.Types.NewArray(ast.ArrayType{Elem: base, Len: length, Span: span})
	}
	return base
}

func maxEnd(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

func (p *Parser) parseBaseType() ast.TypeID {
	switch p.cur().Kind {
	case token.KwMapping:
		return p.parseMappingType()
	case token.KwFunction:
		return p.parseFunctionType()
	case token.Ident:
		text := p.cur().Text
		span := p.cur().Span
		if text == "address" {
			p.advance()
			payable := false
			if p.at(token.KwPayable) {
				payable = true
				p.advance()
			}
			return p.b.Types.NewAddress(payable, p.spanFrom(span))
		}
		if isElementaryName(text) {
			name := p.intern(text)
			p.advance()
			return p.b.Types.NewElementary(name, span)
		}
		return p.parseUserDefinedType()
	default:
		p.errorf(diag.SynUnexpectedToken, p.cur().Span, "expected a type name")
		return ast.NoTypeID
	}
}

// parseUserDefinedType parses a possibly dotted identifier path, e.g. `IERC20`
// or `Lib.Struct`.
func (p *Parser) parseUserDefinedType() ast.TypeID {
	start := p.cur().Span
	var path []source.Symbol
	ident, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a type name")
	if !ok {
		return ast.NoTypeID
	}
	path = append(path, p.intern(ident.Text))
	for p.at(token.Dot) {
		p.advance()
		member, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected identifier after '.' in type name")
		if !ok {
			break
		}
		path = append(path, p.intern(member.Text))
	}
	return p.b.Types.NewUserDefined(path, p.spanFrom(start))
}

func (p *Parser) parseMappingType() ast.TypeID {
	start := p.cur().Span
	p.advance() // 'mapping'
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after 'mapping'"); !ok {
		return ast.NoTypeID
	}
	keyType := p.parseType()
	var keyName source.Symbol
	if p.at(token.Ident) {
		keyName = p.intern(p.cur().Text)
		p.advance()
	}
	if _, ok := p.expect(token.FatArrow, diag.SynUnexpectedToken, "expected '=>' in mapping type"); !ok {
		p.syncTo(token.RParen)
	}
	valueType := p.parseType()
	var valueName source.Symbol
	if p.at(token.Ident) {
		valueName = p.intern(p.cur().Text)
		p.advance()
	}
	p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close mapping type")
	return p.b.Types.NewMapping(ast.MappingType{
		Key: keyType, KeyName: keyName, Value: valueType, ValueName: valueName,
		Span: p.spanFrom(start),
	})
}

func (p *Parser) parseFunctionType() ast.TypeID {
	start := p.cur().Span
	p.advance() // 'function'
	params := p.parseTypeOnlyParamList()
	vis := ast.VisDefault
	mut := ast.MutNonpayable
	for {
		switch p.cur().Kind {
		case token.KwExternal:
			vis = ast.VisExternal
			p.advance()
		case token.KwInternal:
			vis = ast.VisInternal
			p.advance()
		case token.KwPublic:
			vis = ast.VisPublic
			p.advance()
		case token.KwPrivate:
			vis = ast.VisPrivate
			p.advance()
		case token.KwPure:
			mut = ast.MutPure
			p.advance()
		case token.KwView:
			mut = ast.MutView
			p.advance()
		case token.KwPayable:
			mut = ast.MutPayable
			p.advance()
		default:
			goto done
		}
	}
done:
	var returns []ast.ParamID
	if p.at(token.KwReturns) {
		p.advance()
		returns = p.parseTypeOnlyParamList()
	}
	return p.b.Types.NewFunctionType(ast.FunctionType{
		Params: params, Returns: returns, Visibility: vis, Mutability: mut,
		Span: p.spanFrom(start),
	})
}

// parseTypeOnlyParamList parses `( T [loc] [name], ... )` where names are
// always optional, used for function-type parameter/return lists.
func (p *Parser) parseTypeOnlyParamList() []ast.ParamID {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('"); !ok {
		return nil
	}
	var params []ast.Param
	for !p.at(token.RParen) && !p.at(token.EOF) {
		start := p.cur().Span
		ty := p.parseType()
		loc := p.parseOptionalDataLocation()
		var name source.Symbol
		if p.at(token.Ident) {
			name = p.intern(p.cur().Text)
			p.advance()
		}
		params = append(params, ast.Param{Type: ty, Name: name, Location: loc, Span: p.spanFrom(start)})
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close parameter list")
	return p.b.Items.NewParams(params)
}

func (p *Parser) parseOptionalDataLocation() ast.DataLocation {
	switch p.cur().Kind {
	case token.KwMemory:
		p.advance()
		return ast.LocMemory
	case token.KwStorage:
		p.advance()
		return ast.LocStorage
	case token.KwCalldata:
		p.advance()
		return ast.LocCalldata
	default:
		return ast.LocNone
	}
}
