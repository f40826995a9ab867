package parser

import (
	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/source"
	"surge/internal/token"
)

// parseTopLevelItem parses one file-scope item: a pragma, an import, a
// using-for directive, a contract/interface/library, or one of the free
// (file-scope) declarations Solidity 0.8 allows outside a contract body.
func (p *Parser) parseTopLevelItem() (ast.ItemID, bool) {
	start := p.cur().Span
	switch p.cur().Kind {
	case token.KwPragma:
		return p.parsePragma(start)
	case token.KwImport:
		return p.parseImport(start)
	case token.KwUsing:
		item := p.parseUsingForCommon(start)
		return p.b.Items.NewFreeUsingFor(item), true
	case token.KwAbstract:
		p.advance()
		if !p.at(token.KwContract) {
			p.errorf(diag.SynExpectedKeyword, p.cur().Span, "expected 'contract' after 'abstract'")
			return ast.NoItemID, false
		}
		return p.parseContractLike(ast.ContractKindContract, true, start), true
	case token.KwContract:
		return p.parseContractLike(ast.ContractKindContract, false, start), true
	case token.KwInterface:
		return p.parseContractLike(ast.ContractKindInterface, false, start), true
	case token.KwLibrary:
		return p.parseContractLike(ast.ContractKindLibrary, false, start), true
	case token.KwFunction:
		decl := p.parseOrdinaryFunctionCommon(start)
		return p.b.Items.NewFreeFunction(decl), true
	case token.KwStruct:
		fields, name := p.parseStructCommon(start)
		return p.b.Items.NewFreeStruct(ast.StructDecl{Name: name, Fields: fields, Span: p.spanFrom(start)}), true
	case token.KwEnum:
		variants, name := p.parseEnumCommon(start)
		return p.b.Items.NewFreeEnum(ast.EnumDecl{Name: name, Variants: variants, Span: p.spanFrom(start)}), true
	case token.KwError:
		decl := p.parseErrorCommon(start)
		return p.b.Items.NewFreeError(decl), true
	case token.KwType:
		underlying, name := p.parseUdvtCommon(start)
		return p.b.Items.NewFreeUdvt(ast.UdvtDecl{Name: name, Underlying: underlying, Span: p.spanFrom(start)}), true
	case token.Ident:
		return p.parseFreeConstant(start)
	default:
		p.errorf(diag.SynUnexpectedToken, p.cur().Span, "expected a pragma, import, or top-level declaration")
		return ast.NoItemID, false
	}
}

// parseFreeConstant parses `T constant NAME = expr;`, the only file-scope
// declaration that starts with a bare type name.
func (p *Parser) parseFreeConstant(start source.Span) (ast.ItemID, bool) {
	if !p.looksLikeTypeStart() {
		p.errorf(diag.SynUnexpectedToken, p.cur().Span, "expected a pragma, import, or top-level declaration")
		return ast.NoItemID, false
	}
	ty := p.parseType()
	if !p.eat(token.KwConstant) {
		p.errorf(diag.SynExpectedKeyword, p.cur().Span, "expected 'constant' in file-scope variable declaration")
		return ast.NoItemID, false
	}
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a constant name")
	if !ok {
		return ast.NoItemID, false
	}
	p.expect(token.Assign, diag.SynUnexpectedToken, "file-scope constants require an initializer")
	init := p.parseExpr()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after constant declaration")
	decl := ast.ConstantItem{Type: ty, Name: p.intern(name.Text), Init: init, Span: p.spanFrom(start)}
	return p.b.Items.NewFreeConstant(decl), true
}

func (p *Parser) parsePragma(start source.Span) (ast.ItemID, bool) {
	p.advance() // 'pragma'
	if !p.at(token.Ident) {
		p.errorf(diag.SynBadPragma, p.cur().Span, "expected a pragma name")
		p.syncTo(token.Semicolon)
		p.eat(token.Semicolon)
		return ast.NoItemID, false
	}
	name := p.cur().Text
	p.advance()
	var item ast.PragmaItem
	switch name {
	case "solidity":
		item.Kind = ast.PragmaSolidityVersion
		item.VersionExpr = p.collectPragmaTail()
	case "abicoder":
		item.Kind = ast.PragmaAbicoder
		if p.at(token.Ident) {
			item.Value = p.cur().Text
			p.advance()
		}
	case "experimental":
		item.Kind = ast.PragmaExperimental
		if p.at(token.Ident) {
			item.Value = p.cur().Text
			p.advance()
		}
	default:
		item.Kind = ast.PragmaUnknown
		item.Value = p.collectPragmaTail()
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after pragma directive")
	item.Span = p.spanFrom(start)
	if item.Kind == ast.PragmaSolidityVersion && !looksLikeVersionExpr(item.VersionExpr) {
		p.errorf(diag.SynBadPragmaVersion, item.Span, "malformed Solidity version pragma")
	}
	return p.b.Items.NewPragma(item), true
}

// collectPragmaTail gathers every token up to (not including) the closing
// ';' into its literal text, since version constraints like `^0.8.0 <0.9.0`
// don't lex as a single token. Tokens that touch in the source are joined
// directly; whitespace between tokens becomes a single space.
func (p *Parser) collectPragmaTail() string {
	var out string
	var prevEnd uint32
	for !p.at(token.Semicolon) && !p.at(token.EOF) {
		tok := p.cur()
		if out != "" && tok.Span.Start > prevEnd {
			out += " "
		}
		out += tok.Text
		prevEnd = tok.Span.End
		p.advance()
	}
	return out
}

// looksLikeVersionExpr is a cheap sanity check, not a full semver parser:
// a version pragma's text must contain at least one digit.
func looksLikeVersionExpr(s string) bool {
	for _, r := range s {
		if r >= '0' && r <= '9' {
			return true
		}
	}
	return false
}

func (p *Parser) parseImport(start source.Span) (ast.ItemID, bool) {
	p.advance() // 'import'
	switch {
	case p.at(token.StringLit):
		return p.parsePlainOrAliasedImport(start)
	case p.at(token.Star):
		return p.parseGlobImport(start)
	case p.at(token.LBrace):
		return p.parseNamedImport(start)
	default:
		p.errorf(diag.SynMalformedImport, p.cur().Span, "expected an import path, '*', or '{'")
		p.syncTo(token.Semicolon)
		p.eat(token.Semicolon)
		return ast.NoItemID, false
	}
}

// importPathText strips the surrounding quote character from a string
// literal token's raw text, so ImportItem.Path holds the bare path the
// resolver can hand to a FileLoader directly.
func importPathText(tok token.Token) string {
	if len(tok.Text) >= 2 {
		return tok.Text[1 : len(tok.Text)-1]
	}
	return tok.Text
}

func (p *Parser) parsePlainOrAliasedImport(start source.Span) (ast.ItemID, bool) {
	pathTok := p.cur()
	p.advance()
	item := ast.ImportItem{Kind: ast.ImportPlain, Path: importPathText(pathTok), PathSpan: pathTok.Span}
	if p.eat(token.KwAs) {
		item.Kind = ast.ImportAliased
		alias, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected an alias identifier")
		if ok {
			item.Alias = p.intern(alias.Text)
		}
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after import directive")
	item.Span = p.spanFrom(start)
	return p.b.Items.NewImport(item), true
}

func (p *Parser) parseGlobImport(start source.Span) (ast.ItemID, bool) {
	p.advance() // '*'
	p.expect(token.KwAs, diag.SynExpectedKeyword, "expected 'as' after '*' in import directive")
	alias, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected an alias identifier")
	var aliasSym source.Symbol
	if ok {
		aliasSym = p.intern(alias.Text)
	} else {
		p.errorf(diag.ResGlobImportNeedsName, p.cur().Span, "a glob import requires an alias")
	}
	p.expect(token.KwFrom, diag.SynExpectedKeyword, "expected 'from' in import directive")
	pathTok, _ := p.expect(token.StringLit, diag.SynMalformedImport, "expected an import path string")
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after import directive")
	item := ast.ImportItem{
		Kind: ast.ImportGlob, Path: importPathText(pathTok), Alias: aliasSym,
		Span: p.spanFrom(start), PathSpan: pathTok.Span,
	}
	return p.b.Items.NewImport(item), true
}

func (p *Parser) parseNamedImport(start source.Span) (ast.ItemID, bool) {
	p.advance() // '{'
	var syms []ast.ImportSymbol
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		symStart := p.cur().Span
		name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected an imported symbol name")
		if !ok {
			p.syncTo(token.Comma, token.RBrace)
			if !p.eat(token.Comma) {
				break
			}
			continue
		}
		var alias source.Symbol
		if p.eat(token.KwAs) {
			aliasTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected an alias identifier")
			if ok {
				alias = p.intern(aliasTok.Text)
			}
		}
		syms = append(syms, ast.ImportSymbol{Name: p.intern(name.Text), Alias: alias, Span: p.spanFrom(symStart)})
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close named import list")
	p.expect(token.KwFrom, diag.SynExpectedKeyword, "expected 'from' in import directive")
	pathTok, _ := p.expect(token.StringLit, diag.SynMalformedImport, "expected an import path string")
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after import directive")
	item := ast.ImportItem{
		Kind: ast.ImportNamed, Path: importPathText(pathTok), Symbols: syms,
		Span: p.spanFrom(start), PathSpan: pathTok.Span,
	}
	return p.b.Items.NewImport(item), true
}
