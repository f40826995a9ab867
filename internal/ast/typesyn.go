package ast

import "surge/internal/source"

// TypeKind tags the payload of a TypeNode.
type TypeKind uint8

const (
	// TypeElementary is any built-in value type other than address:
	// bool, the sized int*/uint*, bytesN, bytes, string. The name is kept
	// as an interned identifier; the type interner resolves it to a Ty
	// later, keeping the type syntax layer and the type system cleanly
	// separated.
	TypeElementary TypeKind = iota
	// TypeAddress is `address` or `address payable`.
	TypeAddress
	// TypeUserDefined is a (possibly dotted) reference to a contract,
	// interface, library, struct, enum, or user-defined value type.
	TypeUserDefined
	TypeMapping
	TypeArray
	TypeFunction
)

// TypeNode is a parsed type-name expression. Kind selects which
// kind-specific arena Payload indexes into.
type TypeNode struct {
	Kind    TypeKind
	Span    source.Span
	Payload uint32
}

// ElementaryType names a built-in value type by its lexeme.
type ElementaryType struct {
	Name source.Symbol
	Span source.Span
}

// AddressType is `address` with an optional `payable` qualifier.
type AddressType struct {
	Payable bool
	Span    source.Span
}

// UserDefinedType is a dotted path such as `Lib.Struct` or `IERC20`.
type UserDefinedType struct {
	Path []source.Symbol
	Span source.Span
}

// MappingType is `mapping(Key [KeyName] => Value [ValueName])`. Key/value
// names were added in Solidity 0.8.18 and are optional.
type MappingType struct {
	Key       TypeID
	KeyName   source.Symbol
	Value     TypeID
	ValueName source.Symbol
	Span      source.Span
}

// ArrayType is `Elem[Len]` (fixed-size) or `Elem[]` (dynamic, Len is
// NoExprID).
type ArrayType struct {
	Elem TypeID
	Len  ExprID
	Span source.Span
}

// FunctionType is a function-pointer type: `function(params) visibility
// mutability returns (returns)`.
type FunctionType struct {
	Params     []ParamID
	Returns    []ParamID
	Visibility Visibility
	Mutability Mutability
	Span       source.Span
}

// Types manages allocation of TypeNode and its per-kind payloads.
type Types struct {
	Arena        *Arena[TypeNode]
	Elementary   *Arena[ElementaryType]
	Address      *Arena[AddressType]
	UserDefined  *Arena[UserDefinedType]
	Mapping      *Arena[MappingType]
	Array        *Arena[ArrayType]
	FunctionType *Arena[FunctionType]
}

func NewTypes(capHint uint) *Types {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Types{
		Arena:        NewArena[TypeNode](capHint),
		Elementary:   NewArena[ElementaryType](capHint),
		Address:      NewArena[AddressType](capHint),
		UserDefined:  NewArena[UserDefinedType](capHint),
		Mapping:      NewArena[MappingType](capHint),
		Array:        NewArena[ArrayType](capHint),
		FunctionType: NewArena[FunctionType](capHint),
	}
}

func (t *Types) newType(kind TypeKind, span source.Span, payload uint32) TypeID {
	return TypeID(t.Arena.Allocate(TypeNode{Kind: kind, Span: span, Payload: payload}))
}

func (t *Types) Get(id TypeID) *TypeNode {
	return t.Arena.Get(uint32(id))
}

func (t *Types) NewElementary(name source.Symbol, span source.Span) TypeID {
	payload := t.Elementary.Allocate(ElementaryType{Name: name, Span: span})
	return t.newType(TypeElementary, span, payload)
}

func (t *Types) NewAddress(payable bool, span source.Span) TypeID {
	payload := t.Address.Allocate(AddressType{Payable: payable, Span: span})
	return t.newType(TypeAddress, span, payload)
}

func (t *Types) NewUserDefined(path []source.Symbol, span source.Span) TypeID {
	payload := t.UserDefined.Allocate(UserDefinedType{Path: path, Span: span})
	return t.newType(TypeUserDefined, span, payload)
}

func (t *Types) NewMapping(m MappingType) TypeID {
	payload := t.Mapping.Allocate(m)
	return t.newType(TypeMapping, m.Span, payload)
}

func (t *Types) NewArray(a ArrayType) TypeID {
	payload := t.Array.Allocate(a)
	return t.newType(TypeArray, a.Span, payload)
}

func (t *Types) NewFunctionType(f FunctionType) TypeID {
	payload := t.FunctionType.Allocate(f)
	return t.newType(TypeFunction, f.Span, payload)
}

func (t *Types) Elem(tn *TypeNode) *ElementaryType {
	if tn == nil || tn.Kind != TypeElementary {
		return nil
	}
	return t.Elementary.Get(tn.Payload)
}

func (t *Types) AddrOf(tn *TypeNode) *AddressType {
	if tn == nil || tn.Kind != TypeAddress {
		return nil
	}
	return t.Address.Get(tn.Payload)
}

func (t *Types) UserDefinedOf(tn *TypeNode) *UserDefinedType {
	if tn == nil || tn.Kind != TypeUserDefined {
		return nil
	}
	return t.UserDefined.Get(tn.Payload)
}

func (t *Types) MappingOf(tn *TypeNode) *MappingType {
	if tn == nil || tn.Kind != TypeMapping {
		return nil
	}
	return t.Mapping.Get(tn.Payload)
}

func (t *Types) ArrayOf(tn *TypeNode) *ArrayType {
	if tn == nil || tn.Kind != TypeArray {
		return nil
	}
	return t.Array.Get(tn.Payload)
}

func (t *Types) FunctionOf(tn *TypeNode) *FunctionType {
	if tn == nil || tn.Kind != TypeFunction {
		return nil
	}
	return t.FunctionType.Get(tn.Payload)
}
