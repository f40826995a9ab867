package token

import (
	"surge/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, RationalLit, StringLit, HexLit, UnicodeLit:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, PlusPlus, Minus, MinusMinus, Star, StarStar, Slash, Percent, Assign, PlusAssign, MinusAssign, StarAssign,
		SlashAssign, PercentAssign, AmpAssign, PipeAssign, CaretAssign, ShlAssign, ShrAssign,
		EqEq, Bang, BangEq, Lt, LtEq, Gt, GtEq, Shl, Shr, Amp, Pipe, Caret, Tilde, AndAnd, OrOr,
		Question, Colon, ColonAssign, Semicolon, Comma, Dot, Arrow, FatArrow,
		LParen, RParen, LBrace, RBrace, LBracket, RBracket, At:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwPragma, KwImport, KwAs, KwFrom, KwIs, KwUsing, KwFor, KwGlobal, KwContract, KwInterface,
		KwLibrary, KwAbstract, KwFunction, KwModifier, KwEvent, KwError, KwStruct, KwEnum, KwMapping,
		KwType, KwConstructor, KwReceive, KwFallback, KwEmit, KwRevert, KwReturns, KwReturn, KwIf,
		KwElse, KwWhile, KwDo, KwBreak, KwContinue, KwTry, KwCatch, KwThrow, KwNew, KwDelete,
		KwAssembly, KwLet, KwMemory, KwStorage, KwCalldata, KwTransient, KwIndexed, KwAnonymous,
		KwVirtual, KwOverride, KwConstant, KwImmutable, KwPublic, KwPrivate, KwInternal, KwExternal,
		KwPure, KwView, KwPayable, KwUnchecked, KwPlaceholder, KwTrue, KwFalse, KwThis, KwSuper:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier (excluding the placeholder '_').
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsVisibility reports whether the token spells a visibility specifier.
func (t Token) IsVisibility() bool {
	switch t.Kind {
	case KwPublic, KwPrivate, KwInternal, KwExternal:
		return true
	default:
		return false
	}
}

// IsStateMutability reports whether the token spells a state-mutability specifier.
func (t Token) IsStateMutability() bool {
	switch t.Kind {
	case KwPure, KwView, KwPayable:
		return true
	default:
		return false
	}
}

// IsDataLocation reports whether the token spells a data-location specifier.
func (t Token) IsDataLocation() bool {
	switch t.Kind {
	case KwMemory, KwStorage, KwCalldata, KwTransient:
		return true
	default:
		return false
	}
}
