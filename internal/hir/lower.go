package hir

import (
	"surge/internal/ast"
	"surge/internal/source"
)

// ImportResolveFunc maps an import directive's (already unquoted) path
// literal to the source.FileID it was resolved to by the project-level
// loader. Lower calls it once per import item; the caller is expected to
// have already resolved every import when it built the compilation unit
// graph, so a miss here means the literal was never in that unit's import
// list (a caller bug, not a user-facing failure) and yields NoFileID.
type ImportResolveFunc func(literal string) (source.FileID, bool)

// Lower lowers the ast file fid (read from ab) into the hir file owned by
// hb, keyed by its source file id src. If src was already lowered, Lower
// returns the cached *File without doing any work again: importing the
// same file from two different places must be a no-op, and within a single
// build every source file is only ever handed to Lower once.
func Lower(hb *Builder, ab *ast.Builder, src source.FileID, fid ast.FileID, resolve ImportResolveFunc) *File {
	if existing, ok := hb.Files[src]; ok {
		return existing
	}

	astFile := ab.Files.Get(fid)
	hf := &File{Source: src, AST: fid}
	hb.Files[src] = hf

	for _, itemID := range astFile.Items {
		item := ab.Items.Get(itemID)
		switch item.Kind {
		case ast.ItemPragma:
			// carries no scope entry
		case ast.ItemImport:
			hf.Imports = append(hf.Imports, lowerImport(ab, src, itemID, resolve))
		case ast.ItemContract:
			id := lowerContract(hb, ab, src, itemID)
			hf.Items = append(hf.Items, hb.newItem(Item{
				Kind: ItemKindContract, Name: ab.Items.Contract(itemID).Name,
				File: src, Payload: uint32(id), Span: item.Span,
			}))
		case ast.ItemFreeFunction:
			d := ab.Items.FreeFunction(itemID)
			id := lowerFunction(hb, ab, src, NoContractID, itemID, ast.NoContractItemID, *d)
			hf.Items = append(hf.Items, hb.newItem(Item{
				Kind: ItemKindFunction, Name: d.Name, File: src, Payload: uint32(id), Span: item.Span,
			}))
		case ast.ItemFreeStruct:
			d := ab.Items.FreeStruct(itemID)
			id := lowerStruct(hb, ab, src, NoContractID, *d)
			hf.Items = append(hf.Items, hb.newItem(Item{
				Kind: ItemKindStruct, Name: d.Name, File: src, Payload: uint32(id), Span: item.Span,
			}))
		case ast.ItemFreeEnum:
			d := ab.Items.FreeEnum(itemID)
			id := lowerEnum(hb, ab, src, NoContractID, *d)
			hf.Items = append(hf.Items, hb.newItem(Item{
				Kind: ItemKindEnum, Name: d.Name, File: src, Payload: uint32(id), Span: item.Span,
			}))
		case ast.ItemFreeError:
			d := ab.Items.FreeError(itemID)
			id := lowerError(hb, ab, src, NoContractID, *d)
			hf.Items = append(hf.Items, hb.newItem(Item{
				Kind: ItemKindError, Name: d.Name, File: src, Payload: uint32(id), Span: item.Span,
			}))
		case ast.ItemFreeUdvt:
			d := ab.Items.FreeUdvt(itemID)
			id := lowerUdvt(src, NoContractID, *d)
			vid := hb.newUdvt(id)
			hf.Items = append(hf.Items, hb.newItem(Item{
				Kind: ItemKindUdvt, Name: d.Name, File: src, Payload: uint32(vid), Span: item.Span,
			}))
		case ast.ItemFreeConstant:
			d := ab.Items.FreeConstant(itemID)
			id := hb.newVar(Var{
				Name: d.Name, Type: d.Type, Location: ast.LocNone,
				Mutability: ast.MutConstant, Init: d.Init, Contract: NoContractID, Span: d.Span,
			})
			hf.Items = append(hf.Items, hb.newItem(Item{
				Kind: ItemKindVar, Name: d.Name, File: src, Payload: uint32(id), Span: item.Span,
			}))
		case ast.ItemFreeUsingFor:
			// using-for is a resolution-time capability registered by the
			// name resolver, not a scope entry a file can be imported for.
		}
	}

	return hf
}

func lowerImport(ab *ast.Builder, src source.FileID, itemID ast.ItemID, resolve ImportResolveFunc) ImportAlias {
	imp := ab.Items.Import(itemID)
	alias := ImportAlias{Kind: imp.Kind, Name: imp.Alias, Span: imp.Span}
	if imp.Kind == ast.ImportNamed {
		alias.Members = imp.Symbols
	}
	if resolve != nil {
		if target, ok := resolve(imp.Path); ok {
			alias.Target = target
		}
	}
	return alias
}

func lowerContract(hb *Builder, ab *ast.Builder, src source.FileID, itemID ast.ItemID) ContractID {
	d := ab.Items.Contract(itemID)

	bases := make([]BaseRef, len(d.Bases))
	for i, b := range d.Bases {
		bases[i] = BaseRef{Name: b.Name, Args: b.Args, Span: b.Span, Resolved: NoContractID}
	}

	id := hb.newContract(Contract{
		Name: d.Name, Kind: d.Kind, Abstract: d.Abstract,
		File: src, AST: itemID, Bases: bases, Span: d.Span, NameSpan: d.NameSpan,
	})

	c := hb.Contract(id)
	for _, ciID := range d.Items {
		ci := ab.Items.GetContractItem(ciID)
		switch ci.Kind {
		case ast.CIStateVar:
			v := ab.Items.StateVar(ciID)
			vid := hb.newVar(Var{
				Name: v.Name, Type: v.Type, Location: ast.LocStorage,
				Visibility: v.Visibility, Mutability: v.Mutability, Init: v.Init,
				Contract: id, Span: v.Span,
			})
			c.Vars = append(c.Vars, vid)
		case ast.CIFunction:
			fd := ab.Items.Function(ciID)
			fid := lowerFunction(hb, ab, src, id, ast.NoItemID, ciID, *fd)
			c.Functions = append(c.Functions, fid)
		case ast.CIModifier:
			md := ab.Items.Modifier(ciID)
			mid := hb.newModifier(Modifier{
				Name: md.Name, Contract: id, AST: ciID,
				Params: lowerParams(hb, ab, id, md.Params),
				Virtual: md.Virtual, Override: md.Override, Body: md.Body, Span: md.Span,
			})
			c.Modifiers = append(c.Modifiers, mid)
		case ast.CIEvent:
			ed := ab.Items.Event(ciID)
			eid := lowerEvent(hb, id, *ed)
			c.Events = append(c.Events, eid)
		case ast.CIError:
			ed := ab.Items.Error(ciID)
			eid := lowerError(hb, ab, src, id, *ed)
			c.Errors = append(c.Errors, eid)
		case ast.CIStruct:
			sd := ab.Items.Struct(ciID)
			sid := lowerStruct(hb, ab, src, id, *sd)
			c.Structs = append(c.Structs, sid)
		case ast.CIEnum:
			en := ab.Items.Enum(ciID)
			enid := lowerEnum(hb, ab, src, id, *en)
			c.Enums = append(c.Enums, enid)
		case ast.CIUdvt:
			ud := ab.Items.Udvt(ciID)
			uid := hb.newUdvt(lowerUdvt(src, id, *ud))
			c.Udvts = append(c.Udvts, uid)
		case ast.CIConstant:
			cd := ab.Items.Constant(ciID)
			vid := hb.newVar(Var{
				Name: cd.Name, Type: cd.Type, Location: ast.LocNone,
				Mutability: ast.MutConstant, Init: cd.Init, Contract: id, Span: cd.Span,
			})
			c.Vars = append(c.Vars, vid)
		case ast.CIUsingFor:
			// registered by the name resolver, not a member id.
		}
	}

	return id
}

func lowerFunction(hb *Builder, ab *ast.Builder, src source.FileID, contract ContractID, astItem ast.ItemID, ciID ast.ContractItemID, d ast.FunctionDecl) FunctionID {
	return hb.newFunction(Function{
		Name: d.Name, Kind: d.Kind, Contract: contract, File: src,
		AST: astItem, ContractAST: ciID,
		Params:     lowerParams(hb, ab, contract, d.Params),
		Returns:    lowerParams(hb, ab, contract, d.Returns),
		Visibility: d.Visibility, Mutability: d.Mutability, Virtual: d.Virtual,
		Override: d.Override, Modifiers: d.Modifiers, Body: d.Body,
		Span: d.Span, NameSpan: d.NameSpan,
	})
}

func lowerParams(hb *Builder, ab *ast.Builder, contract ContractID, ids []ast.ParamID) []VarID {
	if len(ids) == 0 {
		return nil
	}
	out := make([]VarID, len(ids))
	for i, pid := range ids {
		p := ab.Items.GetParam(pid)
		out[i] = hb.newVar(Var{
			Name: p.Name, Type: p.Type, Location: p.Location,
			Contract: contract, Span: p.Span,
		})
	}
	return out
}

func lowerStruct(hb *Builder, ab *ast.Builder, src source.FileID, contract ContractID, d ast.StructDecl) StructID {
	fields := make([]VarID, len(d.Fields))
	for i, fID := range d.Fields {
		f := ab.Items.GetStructField(fID)
		fields[i] = hb.newVar(Var{Name: f.Name, Type: f.Type, Contract: contract, Span: f.Span})
	}
	return hb.newStruct(Struct{Name: d.Name, Contract: contract, File: src, Fields: fields, Span: d.Span})
}

func lowerEnum(hb *Builder, ab *ast.Builder, src source.FileID, contract ContractID, d ast.EnumDecl) EnumID {
	variants := make([]source.Symbol, len(d.Variants))
	for i, vID := range d.Variants {
		variants[i] = ab.Items.GetEnumVariant(vID).Name
	}
	return hb.newEnum(Enum{Name: d.Name, Contract: contract, File: src, Variants: variants, Span: d.Span})
}

func lowerEvent(hb *Builder, contract ContractID, d ast.EventDecl) EventID {
	params := make([]VarID, len(d.Params))
	indexed := make([]bool, len(d.Params))
	for i, p := range d.Params {
		params[i] = hb.newVar(Var{Name: p.Name, Type: p.Type, Contract: contract, Span: p.Span})
		indexed[i] = p.Indexed
	}
	return hb.newEvent(Event{
		Name: d.Name, Contract: contract, Params: params, Indexed: indexed,
		Anonymous: d.Anonymous, Span: d.Span,
	})
}

func lowerError(hb *Builder, ab *ast.Builder, src source.FileID, contract ContractID, d ast.ErrorDecl) ErrorID {
	return hb.newError(ErrorDecl{
		Name: d.Name, Contract: contract, File: src,
		Params: lowerParams(hb, ab, contract, d.Params), Span: d.Span,
	})
}

func lowerUdvt(src source.FileID, contract ContractID, d ast.UdvtDecl) Udvt {
	return Udvt{Name: d.Name, Contract: contract, File: src, Underlying: d.Underlying, Span: d.Span}
}
