package hir

import (
	"surge/internal/ast"
	"surge/internal/source"
)

// BaseRef is one entry of a contract's `is A, B(args)` clause. Resolved is
// filled in by the name resolver once linearization runs; it is NoContractID
// until then.
type BaseRef struct {
	Name     source.Symbol
	Args     []ast.ExprID
	Span     source.Span
	Resolved ContractID
}

// Contract is a lowered contract, interface, or library. Bases records the
// direct, source-order inheritance list; Linearization is empty until the
// name resolver computes the C3 order.
type Contract struct {
	Name          source.Symbol
	Kind          ast.ContractKind
	Abstract      bool
	File          source.FileID
	AST           ast.ItemID
	Bases         []BaseRef
	Linearization []ContractID
	Vars          []VarID
	Functions     []FunctionID
	Modifiers     []ModifierID
	Events        []EventID
	Errors        []ErrorID
	Structs       []StructID
	Enums         []EnumID
	Udvts         []UdvtID
	Span          source.Span
	NameSpan      source.Span
}

// Var is a lowered state variable, parameter, return, or struct field. Type
// still refers to the parsed ast type expression; the interned Ty is
// attached by the type checker.
type Var struct {
	Name       source.Symbol
	Type       ast.TypeID
	Location   ast.DataLocation
	Visibility ast.Visibility
	Mutability ast.Mutability
	Init       ast.ExprID // NoExprID if absent
	Contract   ContractID // NoContractID for a free function's parameter
	Span       source.Span
}

// Function is a lowered function, constructor, receive, or fallback
// declaration. Contract is NoContractID for a free (file-scope) function.
type Function struct {
	Name       source.Symbol
	Kind       ast.FunctionKind
	Contract   ContractID
	File       source.FileID
	AST        ast.ItemID         // valid for free functions, else NoItemID
	ContractAST ast.ContractItemID // valid for members, else NoContractItemID
	Params     []VarID
	Returns    []VarID
	Visibility ast.Visibility
	Mutability ast.Mutability
	Virtual    bool
	Override   *ast.OverrideSpecifier
	Modifiers  []ast.ModifierInvocation
	Body       ast.StmtID
	Span       source.Span
	NameSpan   source.Span
}

// Modifier is a lowered `modifier` declaration.
type Modifier struct {
	Name     source.Symbol
	Contract ContractID
	AST      ast.ContractItemID
	Params   []VarID
	Virtual  bool
	Override *ast.OverrideSpecifier
	Body     ast.StmtID
	Span     source.Span
}

// Struct is a lowered struct declaration, free or contract-scoped.
type Struct struct {
	Name     source.Symbol
	Contract ContractID
	File     source.FileID
	Fields   []VarID
	Span     source.Span
}

// Enum is a lowered enum declaration, free or contract-scoped.
type Enum struct {
	Name     source.Symbol
	Contract ContractID
	File     source.FileID
	Variants []source.Symbol
	Span     source.Span
}

// Event is a lowered event declaration, always contract-scoped.
type Event struct {
	Name      source.Symbol
	Contract  ContractID
	Params    []VarID
	Indexed   []bool
	Anonymous bool
	Span      source.Span
}

// ErrorDecl is a lowered custom error declaration, free or contract-scoped.
type ErrorDecl struct {
	Name     source.Symbol
	Contract ContractID
	File     source.FileID
	Params   []VarID
	Span     source.Span
}

// Udvt is a lowered user-defined value type declaration.
type Udvt struct {
	Name       source.Symbol
	Contract   ContractID
	File       source.FileID
	Underlying ast.TypeID
	Span       source.Span
}
