package ast

import "surge/internal/source"

// InheritanceSpecifier is one entry of a contract's `is A, B(args)` clause.
type InheritanceSpecifier struct {
	Name source.Symbol
	Args []ExprID // empty unless the base is invoked with constructor args
	Span source.Span
}

// ContractDecl is a `contract`/`interface`/`library` declaration.
type ContractDecl struct {
	Kind       ContractKind
	Name       source.Symbol
	Abstract   bool
	Bases      []InheritanceSpecifier
	Items      []ContractItemID
	Span       source.Span
	NameSpan   source.Span
}

// ContractItemKind tags the payload of a ContractItem.
type ContractItemKind uint8

const (
	CIStateVar ContractItemKind = iota
	CIFunction
	CIModifier
	CIEvent
	CIError
	CIStruct
	CIEnum
	CIUdvt
	CIUsingFor
	CIConstant
)

// ContractItem is a member declared directly in a contract/interface/library
// body. Kind selects which arena Payload indexes into.
type ContractItem struct {
	Kind    ContractItemKind
	Span    source.Span
	Payload uint32
}

// StateVarDecl is a contract-level state variable declaration.
type StateVarDecl struct {
	Type       TypeID
	Name       source.Symbol
	Visibility Visibility
	Mutability Mutability // MutConstant/MutImmutable/MutTransient/MutNonpayable
	Init       ExprID     // NoExprID if absent
	Span       source.Span
}

// StructDecl is a `struct Name { ... }` declaration (free or per-contract).
type StructDecl struct {
	Name   source.Symbol
	Fields []StructFieldID
	Span   source.Span
}

// StructField is one member of a struct.
type StructField struct {
	Type TypeID
	Name source.Symbol
	Span source.Span
}

// EnumDecl is an `enum Name { A, B, ... }` declaration.
type EnumDecl struct {
	Name     source.Symbol
	Variants []EnumVariantID
	Span     source.Span
}

// EnumVariant is one member of an enum.
type EnumVariant struct {
	Name source.Symbol
	Span source.Span
}

// UdvtDecl is a `type Name is Underlying;` user-defined value type.
type UdvtDecl struct {
	Name       source.Symbol
	Underlying TypeID
	Span       source.Span
}

// EventParam is one parameter of an event declaration.
type EventParam struct {
	Type    TypeID
	Name    source.Symbol // may be NoSymbol for anonymous parameters
	Indexed bool
	Span    source.Span
}

// EventDecl is an `event Name(...) [anonymous];` declaration.
type EventDecl struct {
	Name      source.Symbol
	Params    []EventParam
	Anonymous bool
	Span      source.Span
}

// ErrorDecl is an `error Name(...);` declaration.
type ErrorDecl struct {
	Name   source.Symbol
	Params []ParamID
	Span   source.Span
}

// Items manages allocation of every top-level and contract-level
// declaration. A single generic wrapper (Item for file scope, ContractItem
// for contract scope) carries a Kind tag and an index (Payload) into the
// kind-specific arena below, rather than one Go type per AST node.
type Items struct {
	Arena         *Arena[Item]
	ContractItems *Arena[ContractItem]
	Pragmas       *Arena[PragmaItem]
	Imports       *Arena[ImportItem]
	Contracts     *Arena[ContractDecl]
	StateVars     *Arena[StateVarDecl]
	Functions     *Arena[FunctionDecl]
	Modifiers     *Arena[ModifierDecl]
	Events        *Arena[EventDecl]
	Errors        *Arena[ErrorDecl]
	Structs       *Arena[StructDecl]
	StructFields  *Arena[StructField]
	Enums         *Arena[EnumDecl]
	EnumVariants  *Arena[EnumVariant]
	Udvts         *Arena[UdvtDecl]
	UsingFors     *Arena[UsingForItem]
	Constants     *Arena[ConstantItem]
	Params        *Arena[Param]
}

func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Items{
		Arena:         NewArena[Item](capHint),
		ContractItems: NewArena[ContractItem](capHint),
		Pragmas:       NewArena[PragmaItem](capHint),
		Imports:       NewArena[ImportItem](capHint),
		Contracts:     NewArena[ContractDecl](capHint),
		StateVars:     NewArena[StateVarDecl](capHint),
		Functions:     NewArena[FunctionDecl](capHint),
		Modifiers:     NewArena[ModifierDecl](capHint),
		Events:        NewArena[EventDecl](capHint),
		Errors:        NewArena[ErrorDecl](capHint),
		Structs:       NewArena[StructDecl](capHint),
		StructFields:  NewArena[StructField](capHint),
		Enums:         NewArena[EnumDecl](capHint),
		EnumVariants:  NewArena[EnumVariant](capHint),
		Udvts:         NewArena[UdvtDecl](capHint),
		UsingFors:     NewArena[UsingForItem](capHint),
		Constants:     NewArena[ConstantItem](capHint),
		Params:        NewArena[Param](capHint),
	}
}

func (it *Items) newContractItem(kind ContractItemKind, span source.Span, payload uint32) ContractItemID {
	return ContractItemID(it.ContractItems.Allocate(ContractItem{Kind: kind, Span: span, Payload: payload}))
}

func (it *Items) GetContractItem(id ContractItemID) *ContractItem {
	return it.ContractItems.Get(uint32(id))
}

func (it *Items) NewStateVar(d StateVarDecl) ContractItemID {
	payload := it.StateVars.Allocate(d)
	return it.newContractItem(CIStateVar, d.Span, payload)
}

func (it *Items) NewFunction(d FunctionDecl) ContractItemID {
	payload := it.Functions.Allocate(d)
	return it.newContractItem(CIFunction, d.Span, payload)
}

func (it *Items) NewModifier(d ModifierDecl) ContractItemID {
	payload := it.Modifiers.Allocate(d)
	return it.newContractItem(CIModifier, d.Span, payload)
}

func (it *Items) NewEvent(d EventDecl) ContractItemID {
	payload := it.Events.Allocate(d)
	return it.newContractItem(CIEvent, d.Span, payload)
}

func (it *Items) NewError(d ErrorDecl) ContractItemID {
	payload := it.Errors.Allocate(d)
	return it.newContractItem(CIError, d.Span, payload)
}

func (it *Items) NewStruct(d StructDecl) ContractItemID {
	payload := it.Structs.Allocate(d)
	return it.newContractItem(CIStruct, d.Span, payload)
}

func (it *Items) NewEnum(d EnumDecl) ContractItemID {
	payload := it.Enums.Allocate(d)
	return it.newContractItem(CIEnum, d.Span, payload)
}

func (it *Items) NewUdvt(d UdvtDecl) ContractItemID {
	payload := it.Udvts.Allocate(d)
	return it.newContractItem(CIUdvt, d.Span, payload)
}

func (it *Items) NewUsingFor(d UsingForItem) ContractItemID {
	payload := it.UsingFors.Allocate(d)
	return it.newContractItem(CIUsingFor, d.Span, payload)
}

func (it *Items) NewConstant(d ConstantItem) ContractItemID {
	payload := it.Constants.Allocate(d)
	return it.newContractItem(CIConstant, d.Span, payload)
}

func (it *Items) StateVar(id ContractItemID) *StateVarDecl {
	ci := it.GetContractItem(id)
	if ci == nil || ci.Kind != CIStateVar {
		return nil
	}
	return it.StateVars.Get(ci.Payload)
}

func (it *Items) Function(id ContractItemID) *FunctionDecl {
	ci := it.GetContractItem(id)
	if ci == nil || ci.Kind != CIFunction {
		return nil
	}
	return it.Functions.Get(ci.Payload)
}

func (it *Items) Modifier(id ContractItemID) *ModifierDecl {
	ci := it.GetContractItem(id)
	if ci == nil || ci.Kind != CIModifier {
		return nil
	}
	return it.Modifiers.Get(ci.Payload)
}

func (it *Items) Event(id ContractItemID) *EventDecl {
	ci := it.GetContractItem(id)
	if ci == nil || ci.Kind != CIEvent {
		return nil
	}
	return it.Events.Get(ci.Payload)
}

func (it *Items) Error(id ContractItemID) *ErrorDecl {
	ci := it.GetContractItem(id)
	if ci == nil || ci.Kind != CIError {
		return nil
	}
	return it.Errors.Get(ci.Payload)
}

func (it *Items) Struct(id ContractItemID) *StructDecl {
	ci := it.GetContractItem(id)
	if ci == nil || ci.Kind != CIStruct {
		return nil
	}
	return it.Structs.Get(ci.Payload)
}

func (it *Items) Enum(id ContractItemID) *EnumDecl {
	ci := it.GetContractItem(id)
	if ci == nil || ci.Kind != CIEnum {
		return nil
	}
	return it.Enums.Get(ci.Payload)
}

func (it *Items) Udvt(id ContractItemID) *UdvtDecl {
	ci := it.GetContractItem(id)
	if ci == nil || ci.Kind != CIUdvt {
		return nil
	}
	return it.Udvts.Get(ci.Payload)
}

func (it *Items) UsingFor(id ContractItemID) *UsingForItem {
	ci := it.GetContractItem(id)
	if ci == nil || ci.Kind != CIUsingFor {
		return nil
	}
	return it.UsingFors.Get(ci.Payload)
}

func (it *Items) Constant(id ContractItemID) *ConstantItem {
	ci := it.GetContractItem(id)
	if ci == nil || ci.Kind != CIConstant {
		return nil
	}
	return it.Constants.Get(ci.Payload)
}

func (it *Items) NewStructField(f StructField) StructFieldID {
	return StructFieldID(it.StructFields.Allocate(f))
}

func (it *Items) GetStructField(id StructFieldID) *StructField {
	return it.StructFields.Get(uint32(id))
}

func (it *Items) NewStructFields(fs []StructField) []StructFieldID {
	if len(fs) == 0 {
		return nil
	}
	ids := make([]StructFieldID, len(fs))
	for i, f := range fs {
		ids[i] = it.NewStructField(f)
	}
	return ids
}

func (it *Items) NewEnumVariant(v EnumVariant) EnumVariantID {
	return EnumVariantID(it.EnumVariants.Allocate(v))
}

func (it *Items) GetEnumVariant(id EnumVariantID) *EnumVariant {
	return it.EnumVariants.Get(uint32(id))
}

func (it *Items) NewEnumVariants(vs []EnumVariant) []EnumVariantID {
	if len(vs) == 0 {
		return nil
	}
	ids := make([]EnumVariantID, len(vs))
	for i, v := range vs {
		ids[i] = it.NewEnumVariant(v)
	}
	return ids
}
