package ast

// Dense 1-based handles into the arenas owned by a *Builder. Zero is the
// reserved "no value" sentinel for every ID type below.
type (
	// FileID identifies a parsed source file (one compilation unit).
	FileID uint32
	// ItemID identifies a top-level item: pragma, import, contract,
	// interface, library, free function, free struct/enum/error/udvt/constant.
	ItemID uint32
	// ContractItemID identifies a member declared inside a contract body.
	ContractItemID uint32
	// StmtID identifies a statement.
	StmtID uint32
	// ExprID identifies an expression.
	ExprID uint32
	// TypeID identifies a parsed type-name expression.
	TypeID uint32
	// ParamID identifies a function/event/error parameter.
	ParamID uint32
	// StructFieldID identifies a struct field declaration.
	StructFieldID uint32
	// EnumVariantID identifies an enum variant.
	EnumVariantID uint32
	// InheritanceID identifies one entry of a contract's "is" clause.
	InheritanceID uint32
	// ModifierInvocationID identifies one modifier invocation on a function.
	ModifierInvocationID uint32
	// YulStmtID identifies a statement in an inline-assembly block.
	YulStmtID uint32
	// YulExprID identifies an expression in an inline-assembly block.
	YulExprID uint32
)

const (
	NoFileID               FileID               = 0
	NoItemID               ItemID               = 0
	NoContractItemID       ContractItemID       = 0
	NoStmtID               StmtID               = 0
	NoExprID               ExprID               = 0
	NoTypeID               TypeID               = 0
	NoParamID              ParamID              = 0
	NoStructFieldID        StructFieldID        = 0
	NoEnumVariantID        EnumVariantID        = 0
	NoInheritanceID        InheritanceID        = 0
	NoModifierInvocationID ModifierInvocationID = 0
	NoYulStmtID            YulStmtID            = 0
	NoYulExprID            YulExprID            = 0
)

func (id FileID) IsValid() bool               { return id != NoFileID }
func (id ItemID) IsValid() bool               { return id != NoItemID }
func (id ContractItemID) IsValid() bool       { return id != NoContractItemID }
func (id StmtID) IsValid() bool               { return id != NoStmtID }
func (id ExprID) IsValid() bool               { return id != NoExprID }
func (id TypeID) IsValid() bool               { return id != NoTypeID }
func (id ParamID) IsValid() bool              { return id != NoParamID }
func (id StructFieldID) IsValid() bool        { return id != NoStructFieldID }
func (id EnumVariantID) IsValid() bool        { return id != NoEnumVariantID }
func (id InheritanceID) IsValid() bool        { return id != NoInheritanceID }
func (id ModifierInvocationID) IsValid() bool { return id != NoModifierInvocationID }
func (id YulStmtID) IsValid() bool            { return id != NoYulStmtID }
func (id YulExprID) IsValid() bool            { return id != NoYulExprID }
