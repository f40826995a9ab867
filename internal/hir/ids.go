// Package hir is the high-level intermediate representation produced by
// lowering a parsed file. It renumbers every declaration with a dense,
// kind-specific id and attaches the resolution fields (base linearization,
// modifier targets, view-alias bindings) that later passes fill in. Bodies
// are not re-expressed here: statements and expressions are still read
// directly from the ast arenas the HIR node points back to.
package hir

// Dense 1-based handles into the arenas owned by a *Builder. Zero is the
// reserved "no value" sentinel for every ID type below, matching the
// convention used by the ast package's own id types.
type (
	// ContractID identifies a lowered contract/interface/library.
	ContractID uint32
	// FunctionID identifies a lowered function, constructor, receive, or
	// fallback declaration, whether free or a contract member.
	FunctionID uint32
	// VarID identifies a lowered state variable, parameter, return, or
	// struct field.
	VarID uint32
	// StructID identifies a lowered struct declaration.
	StructID uint32
	// EnumID identifies a lowered enum declaration.
	EnumID uint32
	// EventID identifies a lowered event declaration.
	EventID uint32
	// ErrorID identifies a lowered error declaration.
	ErrorID uint32
	// UdvtID identifies a lowered user-defined value type declaration.
	UdvtID uint32
	// ModifierID identifies a lowered modifier declaration.
	ModifierID uint32
	// ItemID identifies an entry in a file's top-level scope: anything a
	// plain or named import can bring into another file's scope.
	ItemID uint32
)

const (
	NoContractID ContractID = 0
	NoFunctionID FunctionID = 0
	NoVarID      VarID      = 0
	NoStructID   StructID   = 0
	NoEnumID     EnumID     = 0
	NoEventID    EventID    = 0
	NoErrorID    ErrorID    = 0
	NoUdvtID     UdvtID     = 0
	NoModifierID ModifierID = 0
	NoItemID     ItemID     = 0
)

func (id ContractID) IsValid() bool { return id != NoContractID }
func (id FunctionID) IsValid() bool { return id != NoFunctionID }
func (id VarID) IsValid() bool      { return id != NoVarID }
func (id StructID) IsValid() bool   { return id != NoStructID }
func (id EnumID) IsValid() bool     { return id != NoEnumID }
func (id EventID) IsValid() bool    { return id != NoEventID }
func (id ErrorID) IsValid() bool    { return id != NoErrorID }
func (id UdvtID) IsValid() bool     { return id != NoUdvtID }
func (id ModifierID) IsValid() bool { return id != NoModifierID }
func (id ItemID) IsValid() bool     { return id != NoItemID }
