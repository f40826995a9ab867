package hir

import (
	"surge/internal/ast"
	"surge/internal/source"
)

// ImportAlias is one resolved import directive, expressed as a view-alias
// binding in the importing file's top-level scope rather than a copy of the
// imported declarations.
type ImportAlias struct {
	Kind    ast.ImportKind
	Name    source.Symbol   // bound local name; NoSymbol for a plain import
	Target  source.FileID   // the resolved file whose scope is being aliased
	Members []ast.ImportSymbol // ImportNamed only; nil otherwise
	Span    source.Span
}

// File is the lowered form of one compilation unit: its dense top-level
// items plus the view aliases its imports introduce.
type File struct {
	Source  source.FileID
	AST     ast.FileID
	Items   []ItemID
	Imports []ImportAlias
}

// Builder owns every arena a Lowerer allocates into. One Builder is shared
// across all files of a build so that cross-file ids (a contract's base
// referring to a type declared in another file) are dense program-wide
// rather than re-based per file.
type Builder struct {
	Contracts *ast.Arena[Contract]
	Functions *ast.Arena[Function]
	Vars      *ast.Arena[Var]
	Structs   *ast.Arena[Struct]
	Enums     *ast.Arena[Enum]
	Events    *ast.Arena[Event]
	Errors    *ast.Arena[ErrorDecl]
	Udvts     *ast.Arena[Udvt]
	Modifiers *ast.Arena[Modifier]
	Items     *ast.Arena[Item]

	Files map[source.FileID]*File
}

// NewBuilder allocates a Builder with arena capacities sized for roughly
// capHint top-level declarations. Passing 0 uses the arenas' own defaults.
func NewBuilder(capHint uint) *Builder {
	return &Builder{
		Contracts: ast.NewArena[Contract](capHint),
		Functions: ast.NewArena[Function](capHint),
		Vars:      ast.NewArena[Var](capHint),
		Structs:   ast.NewArena[Struct](capHint),
		Enums:     ast.NewArena[Enum](capHint),
		Events:    ast.NewArena[Event](capHint),
		Errors:    ast.NewArena[ErrorDecl](capHint),
		Udvts:     ast.NewArena[Udvt](capHint),
		Modifiers: ast.NewArena[Modifier](capHint),
		Items:     ast.NewArena[Item](capHint),
		Files:     make(map[source.FileID]*File),
	}
}

func (b *Builder) newContract(c Contract) ContractID { return ContractID(b.Contracts.Allocate(c)) }
func (b *Builder) newFunction(f Function) FunctionID { return FunctionID(b.Functions.Allocate(f)) }
func (b *Builder) newVar(v Var) VarID                { return VarID(b.Vars.Allocate(v)) }
func (b *Builder) newStruct(s Struct) StructID       { return StructID(b.Structs.Allocate(s)) }
func (b *Builder) newEnum(e Enum) EnumID             { return EnumID(b.Enums.Allocate(e)) }
func (b *Builder) newEvent(e Event) EventID          { return EventID(b.Events.Allocate(e)) }
func (b *Builder) newError(e ErrorDecl) ErrorID      { return ErrorID(b.Errors.Allocate(e)) }
func (b *Builder) newUdvt(u Udvt) UdvtID             { return UdvtID(b.Udvts.Allocate(u)) }
func (b *Builder) newModifier(m Modifier) ModifierID { return ModifierID(b.Modifiers.Allocate(m)) }

func (b *Builder) newItem(it Item) ItemID { return ItemID(b.Items.Allocate(it)) }

func (b *Builder) Contract(id ContractID) *Contract { return b.Contracts.Get(uint32(id)) }
func (b *Builder) FunctionOf(id FunctionID) *Function { return b.Functions.Get(uint32(id)) }
func (b *Builder) Var(id VarID) *Var                  { return b.Vars.Get(uint32(id)) }
func (b *Builder) StructOf(id StructID) *Struct       { return b.Structs.Get(uint32(id)) }
func (b *Builder) EnumOf(id EnumID) *Enum             { return b.Enums.Get(uint32(id)) }
func (b *Builder) EventOf(id EventID) *Event          { return b.Events.Get(uint32(id)) }
func (b *Builder) ErrorOf(id ErrorID) *ErrorDecl      { return b.Errors.Get(uint32(id)) }
func (b *Builder) UdvtOf(id UdvtID) *Udvt             { return b.Udvts.Get(uint32(id)) }
func (b *Builder) ModifierOf(id ModifierID) *Modifier { return b.Modifiers.Get(uint32(id)) }
func (b *Builder) Item(id ItemID) *Item               { return b.Items.Get(uint32(id)) }
