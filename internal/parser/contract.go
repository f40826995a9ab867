package parser

import (
	"surge/internal/ast"
	"surge/internal/diag"
	"surge/internal/source"
	"surge/internal/token"
)

// parseContractLike parses a contract/interface/library declaration, with
// kind and the 'abstract' flag already decided by the caller.
func (p *Parser) parseContractLike(kind ast.ContractKind, abstract bool, start source.Span) ast.ItemID {
	p.advance() // 'contract'/'interface'/'library'
	nameTok, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a contract name")
	var bases []ast.InheritanceSpecifier
	if p.eat(token.KwIs) {
		bases = p.parseInheritanceList()
	}
	items := p.parseContractBody()
	decl := ast.ContractDecl{
		Kind: kind, Name: p.intern(nameTok.Text), Abstract: abstract,
		Bases: bases, Items: items, Span: p.spanFrom(start), NameSpan: nameTok.Span,
	}
	return p.b.Items.NewContract(decl)
}

func (p *Parser) parseInheritanceList() []ast.InheritanceSpecifier {
	var specs []ast.InheritanceSpecifier
	for {
		start := p.cur().Span
		name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a base contract name")
		if !ok {
			break
		}
		var args []ast.ExprID
		if p.at(token.LParen) {
			for _, a := range p.parseCallArgs() {
				args = append(args, a.Value)
			}
		}
		specs = append(specs, ast.InheritanceSpecifier{Name: p.intern(name.Text), Args: args, Span: p.spanFrom(start)})
		if !p.eat(token.Comma) {
			break
		}
	}
	return specs
}

func (p *Parser) parseContractBody() []ast.ContractItemID {
	p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to begin contract body")
	var items []ast.ContractItemID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.mark()
		id, ok := p.parseContractItem()
		if ok && id.IsValid() {
			items = append(items, id)
		}
		if p.mark() == before {
			p.syncTopLevel()
			if p.at(token.RBrace) || p.at(token.EOF) {
				break
			}
		}
	}
	p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close contract body")
	return items
}

func (p *Parser) parseContractItem() (ast.ContractItemID, bool) {
	start := p.cur().Span
	switch p.cur().Kind {
	case token.KwFunction:
		return p.parseOrdinaryFunction(start)
	case token.KwConstructor:
		return p.parseConstructor(start)
	case token.KwReceive:
		return p.parseReceiveOrFallback(start, ast.FuncKindReceive)
	case token.KwFallback:
		return p.parseReceiveOrFallback(start, ast.FuncKindFallback)
	case token.KwModifier:
		return p.parseModifierDecl(start)
	case token.KwEvent:
		return p.parseEventDecl(start)
	case token.KwError:
		return p.parseErrorDecl(start)
	case token.KwStruct:
		return p.parseStructDecl(start)
	case token.KwEnum:
		return p.parseEnumDecl(start)
	case token.KwType:
		return p.parseUdvtDecl(start)
	case token.KwUsing:
		return p.parseUsingForContractItem(start)
	default:
		return p.parseStateVarDecl(start)
	}
}

// parseFunctionModifiersAndHeader consumes the shared tail of a function
// header (in any order, as Solidity allows): visibility, mutability,
// virtual, override, and modifier invocations. It stops at 'returns', '{',
// or ';'.
func (p *Parser) parseFunctionModifiersAndHeader() (ast.Visibility, ast.Mutability, bool, *ast.OverrideSpecifier, []ast.ModifierInvocation) {
	vis := ast.VisDefault
	mut := ast.MutNonpayable
	virtual := false
	var override *ast.OverrideSpecifier
	var mods []ast.ModifierInvocation
	for {
		switch p.cur().Kind {
		case token.KwPublic:
			vis = ast.VisPublic
			p.advance()
		case token.KwPrivate:
			vis = ast.VisPrivate
			p.advance()
		case token.KwInternal:
			vis = ast.VisInternal
			p.advance()
		case token.KwExternal:
			vis = ast.VisExternal
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
		case token.KwVirtual:
			virtual = true
			p.advance()
		case token.KwOverride:
			ov := p.parseOverrideSpecifier()
			override = &ov
		case token.Ident:
			mods = append(mods, p.parseModifierInvocation())
		default:
			return vis, mut, virtual, override, mods
		}
	}
}

func (p *Parser) parseOverrideSpecifier() ast.OverrideSpecifier {
	start := p.cur().Span
	p.advance() // 'override'
	var bases []source.Symbol
	if p.eat(token.LParen) {
		for !p.at(token.RParen) && !p.at(token.EOF) {
			name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a base contract name")
			if !ok {
				break
			}
			bases = append(bases, p.intern(name.Text))
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close override specifier")
	}
	return ast.OverrideSpecifier{Bases: bases, Span: p.spanFrom(start)}
}

func (p *Parser) parseModifierInvocation() ast.ModifierInvocation {
	start := p.cur().Span
	name := p.cur().Text
	p.advance()
	var args []ast.ExprID
	if p.at(token.LParen) {
		for _, a := range p.parseCallArgs() {
			args = append(args, a.Value)
		}
	}
	return ast.ModifierInvocation{Name: p.intern(name), Args: args, Span: p.spanFrom(start)}
}

func (p *Parser) parseOrdinaryFunction(start source.Span) (ast.ContractItemID, bool) {
	decl := p.parseOrdinaryFunctionCommon(start)
	return p.b.Items.NewFunction(decl), true
}

// parseOrdinaryFunctionCommon parses a `function Name(...) ... { body }`
// declaration, shared by contract-scoped and file-scope (free) functions.
func (p *Parser) parseOrdinaryFunctionCommon(start source.Span) ast.FunctionDecl {
	p.advance() // 'function'
	var name source.Symbol
	var nameSpan source.Span
	if nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a function name"); ok {
		name = p.intern(nameTok.Text)
		nameSpan = nameTok.Span
	}
	params := p.parseTypeOnlyParamList()
	vis, mut, virtual, override, mods := p.parseFunctionModifiersAndHeader()
	var returns []ast.ParamID
	if p.eat(token.KwReturns) {
		returns = p.parseTypeOnlyParamList()
	}
	body := p.parseFunctionBody()
	return ast.FunctionDecl{
		Kind: ast.FuncKindOrdinary, Name: name, Params: params, Returns: returns,
		Visibility: vis, Mutability: mut, Virtual: virtual, Override: override,
		Modifiers: mods, Body: body, Span: p.spanFrom(start), NameSpan: nameSpan,
	}
}

func (p *Parser) parseConstructor(start source.Span) (ast.ContractItemID, bool) {
	p.advance() // 'constructor'
	params := p.parseTypeOnlyParamList()
	vis, mut, virtual, override, mods := p.parseFunctionModifiersAndHeader()
	body := p.parseFunctionBody()
	decl := ast.FunctionDecl{
		Kind: ast.FuncKindConstructor, Params: params, Visibility: vis, Mutability: mut,
		Virtual: virtual, Override: override, Modifiers: mods, Body: body, Span: p.spanFrom(start),
	}
	return p.b.Items.NewFunction(decl), true
}

func (p *Parser) parseReceiveOrFallback(start source.Span, kind ast.FunctionKind) (ast.ContractItemID, bool) {
	p.advance() // 'receive'/'fallback'
	params := p.parseTypeOnlyParamList()
	vis, mut, virtual, override, mods := p.parseFunctionModifiersAndHeader()
	var returns []ast.ParamID
	if p.eat(token.KwReturns) {
		returns = p.parseTypeOnlyParamList()
	}
	body := p.parseFunctionBody()
	decl := ast.FunctionDecl{
		Kind: kind, Params: params, Returns: returns, Visibility: vis, Mutability: mut,
		Virtual: virtual, Override: override, Modifiers: mods, Body: body, Span: p.spanFrom(start),
	}
	return p.b.Items.NewFunction(decl), true
}

// parseFunctionBody parses either `{ ... }` or the interface/abstract form
// terminated by a bare `;`, returning ast.NoStmtID for the latter.
func (p *Parser) parseFunctionBody() ast.StmtID {
	if p.at(token.Semicolon) {
		p.advance()
		return ast.NoStmtID
	}
	return p.parseBlock()
}

func (p *Parser) parseModifierDecl(start source.Span) (ast.ContractItemID, bool) {
	p.advance() // 'modifier'
	name, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a modifier name")
	var params []ast.ParamID
	if p.at(token.LParen) {
		params = p.parseTypeOnlyParamList()
	}
	virtual := false
	var override *ast.OverrideSpecifier
	for {
		switch p.cur().Kind {
		case token.KwVirtual:
			virtual = true
			p.advance()
		case token.KwOverride:
			ov := p.parseOverrideSpecifier()
			override = &ov
		default:
			goto done
		}
	}
done:
	body := p.parseFunctionBody()
	decl := ast.ModifierDecl{
		Name: p.intern(name.Text), Params: params, Virtual: virtual, Override: override,
		Body: body, Span: p.spanFrom(start),
	}
	return p.b.Items.NewModifier(decl), true
}

func (p *Parser) parseEventDecl(start source.Span) (ast.ContractItemID, bool) {
	p.advance() // 'event'
	name, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected an event name")
	params := p.parseEventParamList()
	anonymous := p.eat(token.KwAnonymous)
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after event declaration")
	decl := ast.EventDecl{Name: p.intern(name.Text), Params: params, Anonymous: anonymous, Span: p.spanFrom(start)}
	return p.b.Items.NewEvent(decl), true
}

func (p *Parser) parseEventParamList() []ast.EventParam {
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' in event parameter list")
	var params []ast.EventParam
	for !p.at(token.RParen) && !p.at(token.EOF) {
		pstart := p.cur().Span
		ty := p.parseType()
		indexed := p.eat(token.KwIndexed)
		var name source.Symbol
		if p.at(token.Ident) || p.at(token.KwFrom) {
			name = p.intern(p.cur().Text)
			p.advance()
		}
		params = append(params, ast.EventParam{Type: ty, Name: name, Indexed: indexed, Span: p.spanFrom(pstart)})
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close event parameter list")
	return params
}

func (p *Parser) parseErrorDecl(start source.Span) (ast.ContractItemID, bool) {
	decl := p.parseErrorCommon(start)
	return p.b.Items.NewError(decl), true
}

func (p *Parser) parseErrorCommon(start source.Span) ast.ErrorDecl {
	p.advance() // 'error'
	name, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected an error name")
	params := p.parseTypeOnlyParamList()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after error declaration")
	return ast.ErrorDecl{Name: p.intern(name.Text), Params: params, Span: p.spanFrom(start)}
}

func (p *Parser) parseStructDecl(start source.Span) (ast.ContractItemID, bool) {
	fields, name := p.parseStructCommon(start)
	decl := ast.StructDecl{Name: name, Fields: fields, Span: p.spanFrom(start)}
	return p.b.Items.NewStruct(decl), true
}

// parseStructCommon parses `struct Name { Type name; ... }`, shared by both
// the contract-scoped and free (file-scope) struct forms.
func (p *Parser) parseStructCommon(start source.Span) ([]ast.StructFieldID, source.Symbol) {
	p.advance() // 'struct'
	name, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a struct name")
	p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to begin struct body")
	var fields []ast.StructField
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		fstart := p.cur().Span
		ty := p.parseType()
		fname, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a field name")
		if !ok {
			p.syncTo(token.Semicolon, token.RBrace)
		}
		p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after struct field")
		fields = append(fields, ast.StructField{Type: ty, Name: p.intern(fname.Text), Span: p.spanFrom(fstart)})
	}
	if len(fields) == 0 {
		p.errorf(diag.SynEmptyStruct, p.spanFrom(start), "struct must declare at least one field")
	}
	p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close struct body")
	return p.b.Items.NewStructFields(fields), p.intern(name.Text)
}

func (p *Parser) parseEnumDecl(start source.Span) (ast.ContractItemID, bool) {
	variants, name := p.parseEnumCommon(start)
	decl := ast.EnumDecl{Name: name, Variants: variants, Span: p.spanFrom(start)}
	return p.b.Items.NewEnum(decl), true
}

func (p *Parser) parseEnumCommon(start source.Span) ([]ast.EnumVariantID, source.Symbol) {
	p.advance() // 'enum'
	name, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected an enum name")
	p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' to begin enum body")
	var variants []ast.EnumVariant
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		vstart := p.cur().Span
		vname, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a variant name")
		if !ok {
			p.syncTo(token.Comma, token.RBrace)
		} else {
			variants = append(variants, ast.EnumVariant{Name: p.intern(vname.Text), Span: p.spanFrom(vstart)})
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	if len(variants) == 0 || len(variants) > 256 {
		p.errorf(diag.SynEnumVariantCount, p.spanFrom(start), "enum must declare between 1 and 256 variants")
	}
	p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close enum body")
	return p.b.Items.NewEnumVariants(variants), p.intern(name.Text)
}

func (p *Parser) parseUdvtDecl(start source.Span) (ast.ContractItemID, bool) {
	underlying, name := p.parseUdvtCommon(start)
	decl := ast.UdvtDecl{Name: name, Underlying: underlying, Span: p.spanFrom(start)}
	return p.b.Items.NewUdvt(decl), true
}

// parseUdvtCommon parses `type Name is Underlying;`.
func (p *Parser) parseUdvtCommon(start source.Span) (ast.TypeID, source.Symbol) {
	p.advance() // 'type'
	name, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a type name")
	p.expect(token.KwIs, diag.SynExpectedKeyword, "expected 'is' in user-defined value type declaration")
	underlying := p.parseType()
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after type declaration")
	return underlying, p.intern(name.Text)
}

func (p *Parser) parseUsingForContractItem(start source.Span) (ast.ContractItemID, bool) {
	item := p.parseUsingForCommon(start)
	return p.b.Items.NewUsingFor(item), true
}

// parseUsingForCommon parses `using X for T [global];` or
// `using {f, g as +} for T [global];`, shared by file scope and contract
// scope (the 'global' modifier is only meaningful at file scope, but is
// parsed uniformly and left for semantic analysis to reject otherwise).
func (p *Parser) parseUsingForCommon(start source.Span) ast.UsingForItem {
	p.advance() // 'using'
	var library source.Symbol
	var fns []ast.UsingForFunction
	if p.eat(token.LBrace) {
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			fstart := p.cur().Span
			fname, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a function name")
			if !ok {
				break
			}
			op := ""
			if p.eat(token.KwAs) {
				op = p.cur().Text
				p.advance()
			}
			fns = append(fns, ast.UsingForFunction{Name: p.intern(fname.Text), Operator: op, Span: p.spanFrom(fstart)})
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close using-for function list")
	} else {
		name, _ := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a library name")
		library = p.intern(name.Text)
	}
	p.expect(token.KwFor, diag.SynExpectedKeyword, "expected 'for' in using directive")
	var target ast.TypeID = ast.NoTypeID
	if p.eat(token.Star) {
		// `using Lib for *;`
	} else {
		target = p.parseType()
	}
	global := p.eat(token.KwGlobal)
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after using directive")
	return ast.UsingForItem{Library: library, Functions: fns, Target: target, Global: global, Span: p.spanFrom(start)}
}

func (p *Parser) parseStateVarDecl(start source.Span) (ast.ContractItemID, bool) {
	if !p.looksLikeTypeStart() {
		p.errorf(diag.SynUnexpectedToken, p.cur().Span, "expected a contract member declaration")
		return ast.NoContractItemID, false
	}
	ty := p.parseType()
	vis := ast.VisDefault
	mut := ast.MutNonpayable
	for {
		switch p.cur().Kind {
		case token.KwPublic:
			vis = ast.VisPublic
			p.advance()
		case token.KwPrivate:
			vis = ast.VisPrivate
			p.advance()
		case token.KwInternal:
			vis = ast.VisInternal
			p.advance()
		case token.KwConstant:
			mut = ast.MutConstant
			p.advance()
		case token.KwImmutable:
			mut = ast.MutImmutable
			p.advance()
		case token.KwTransient:
			mut = ast.MutTransient
			p.advance()
		default:
			goto done
		}
	}
done:
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "expected a state variable name")
	if !ok {
		return ast.NoContractItemID, false
	}
	var init ast.ExprID
	if p.eat(token.Assign) {
		init = p.parseExpr()
	}
	p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after state variable declaration")
	decl := ast.StateVarDecl{
		Type: ty, Name: p.intern(name.Text), Visibility: vis, Mutability: mut,
		Init: init, Span: p.spanFrom(start),
	}
	return p.b.Items.NewStateVar(decl), true
}
