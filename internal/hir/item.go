package hir

import "surge/internal/source"

// ItemKind tags the payload of an Item: which dense id space Payload
// indexes into.
type ItemKind uint8

const (
	ItemKindContract ItemKind = iota
	ItemKindFunction
	ItemKindStruct
	ItemKindEnum
	ItemKindError
	ItemKindUdvt
	ItemKindVar // a free (file-scope) constant
)

// Item is one entry of a file's top-level scope: a contract, free function,
// free struct/enum/error/udvt, or free constant. It is the unit that import
// view-aliasing operates on, per the four import forms: a plain import
// brings every exported Item, a named import brings the listed ones, an
// aliased import binds the whole file under one name, and a glob import
// requires an alias.
type Item struct {
	Kind    ItemKind
	Name    source.Symbol
	File    source.FileID
	Payload uint32 // ContractID, FunctionID, StructID, EnumID, ErrorID, UdvtID, or VarID
	Span    source.Span
}

// ContractID returns the ContractID held by i, or NoContractID if i is not a
// contract item.
func (i Item) ContractID() ContractID {
	if i.Kind != ItemKindContract {
		return NoContractID
	}
	return ContractID(i.Payload)
}

// FunctionID returns the FunctionID held by i, or NoFunctionID otherwise.
func (i Item) FunctionID() FunctionID {
	if i.Kind != ItemKindFunction {
		return NoFunctionID
	}
	return FunctionID(i.Payload)
}

// StructID returns the StructID held by i, or NoStructID otherwise.
func (i Item) StructID() StructID {
	if i.Kind != ItemKindStruct {
		return NoStructID
	}
	return StructID(i.Payload)
}

// EnumID returns the EnumID held by i, or NoEnumID otherwise.
func (i Item) EnumID() EnumID {
	if i.Kind != ItemKindEnum {
		return NoEnumID
	}
	return EnumID(i.Payload)
}

// ErrorID returns the ErrorID held by i, or NoErrorID otherwise.
func (i Item) ErrorID() ErrorID {
	if i.Kind != ItemKindError {
		return NoErrorID
	}
	return ErrorID(i.Payload)
}

// UdvtID returns the UdvtID held by i, or NoUdvtID otherwise.
func (i Item) UdvtID() UdvtID {
	if i.Kind != ItemKindUdvt {
		return NoUdvtID
	}
	return UdvtID(i.Payload)
}

// VarID returns the VarID held by i, or NoVarID otherwise.
func (i Item) VarID() VarID {
	if i.Kind != ItemKindVar {
		return NoVarID
	}
	return VarID(i.Payload)
}
