package ast

import "surge/internal/source"

// ItemKind tags the payload of a top-level Item.
type ItemKind uint8

const (
	ItemPragma ItemKind = iota
	ItemImport
	ItemContract
	ItemFreeFunction
	ItemFreeStruct
	ItemFreeEnum
	ItemFreeError
	ItemFreeUdvt
	ItemFreeConstant
	ItemFreeUsingFor
)

// Item is a top-level declaration: pragma, import, contract/interface/
// library, or one of the file-scoped declarations Solidity 0.8 allows
// outside a contract body (free functions, structs, enums, errors, udvts,
// constants, file-level using-for).
type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload uint32
}

func (it *Items) newItem(kind ItemKind, span source.Span, payload uint32) ItemID {
	return ItemID(it.Arena.Allocate(Item{Kind: kind, Span: span, Payload: payload}))
}

func (it *Items) Get(id ItemID) *Item {
	return it.Arena.Get(uint32(id))
}

func (it *Items) NewPragma(p PragmaItem) ItemID {
	payload := it.Pragmas.Allocate(p)
	return it.newItem(ItemPragma, p.Span, payload)
}

func (it *Items) NewImport(imp ImportItem) ItemID {
	payload := it.Imports.Allocate(imp)
	return it.newItem(ItemImport, imp.Span, payload)
}

func (it *Items) NewContract(c ContractDecl) ItemID {
	payload := it.Contracts.Allocate(c)
	return it.newItem(ItemContract, c.Span, payload)
}

func (it *Items) NewFreeFunction(d FunctionDecl) ItemID {
	payload := it.Functions.Allocate(d)
	return it.newItem(ItemFreeFunction, d.Span, payload)
}

func (it *Items) NewFreeStruct(d StructDecl) ItemID {
	payload := it.Structs.Allocate(d)
	return it.newItem(ItemFreeStruct, d.Span, payload)
}

func (it *Items) NewFreeEnum(d EnumDecl) ItemID {
	payload := it.Enums.Allocate(d)
	return it.newItem(ItemFreeEnum, d.Span, payload)
}

func (it *Items) NewFreeError(d ErrorDecl) ItemID {
	payload := it.Errors.Allocate(d)
	return it.newItem(ItemFreeError, d.Span, payload)
}

func (it *Items) NewFreeUdvt(d UdvtDecl) ItemID {
	payload := it.Udvts.Allocate(d)
	return it.newItem(ItemFreeUdvt, d.Span, payload)
}

func (it *Items) NewFreeConstant(d ConstantItem) ItemID {
	payload := it.Constants.Allocate(d)
	return it.newItem(ItemFreeConstant, d.Span, payload)
}

func (it *Items) NewFreeUsingFor(d UsingForItem) ItemID {
	payload := it.UsingFors.Allocate(d)
	return it.newItem(ItemFreeUsingFor, d.Span, payload)
}

func (it *Items) Pragma(id ItemID) *PragmaItem {
	i := it.Get(id)
	if i == nil || i.Kind != ItemPragma {
		return nil
	}
	return it.Pragmas.Get(i.Payload)
}

func (it *Items) Import(id ItemID) *ImportItem {
	i := it.Get(id)
	if i == nil || i.Kind != ItemImport {
		return nil
	}
	return it.Imports.Get(i.Payload)
}

func (it *Items) Contract(id ItemID) *ContractDecl {
	i := it.Get(id)
	if i == nil || i.Kind != ItemContract {
		return nil
	}
	return it.Contracts.Get(i.Payload)
}

func (it *Items) FreeFunction(id ItemID) *FunctionDecl {
	i := it.Get(id)
	if i == nil || i.Kind != ItemFreeFunction {
		return nil
	}
	return it.Functions.Get(i.Payload)
}

func (it *Items) FreeStruct(id ItemID) *StructDecl {
	i := it.Get(id)
	if i == nil || i.Kind != ItemFreeStruct {
		return nil
	}
	return it.Structs.Get(i.Payload)
}

func (it *Items) FreeEnum(id ItemID) *EnumDecl {
	i := it.Get(id)
	if i == nil || i.Kind != ItemFreeEnum {
		return nil
	}
	return it.Enums.Get(i.Payload)
}

func (it *Items) FreeError(id ItemID) *ErrorDecl {
	i := it.Get(id)
	if i == nil || i.Kind != ItemFreeError {
		return nil
	}
	return it.Errors.Get(i.Payload)
}

func (it *Items) FreeUdvt(id ItemID) *UdvtDecl {
	i := it.Get(id)
	if i == nil || i.Kind != ItemFreeUdvt {
		return nil
	}
	return it.Udvts.Get(i.Payload)
}

func (it *Items) FreeConstant(id ItemID) *ConstantItem {
	i := it.Get(id)
	if i == nil || i.Kind != ItemFreeConstant {
		return nil
	}
	return it.Constants.Get(i.Payload)
}

func (it *Items) FreeUsingFor(id ItemID) *UsingForItem {
	i := it.Get(id)
	if i == nil || i.Kind != ItemFreeUsingFor {
		return nil
	}
	return it.UsingFors.Get(i.Payload)
}
