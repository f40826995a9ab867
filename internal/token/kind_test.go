package token_test

import (
	"testing"

	"surge/internal/source"
	"surge/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.IntLit, token.RationalLit, token.StringLit, token.HexLit, token.UnicodeLit,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwLet, token.Plus, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsPunctOrOp(t *testing.T) {
	ops := []token.Kind{
		token.Plus, token.Minus, token.Star, token.StarStar, token.Slash, token.Percent,
		token.Assign, token.PlusAssign, token.MinusAssign, token.StarAssign,
		token.SlashAssign, token.PercentAssign, token.AmpAssign, token.PipeAssign,
		token.CaretAssign, token.ShlAssign, token.ShrAssign,
		token.EqEq, token.Bang, token.BangEq,
		token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.Shl, token.Shr, token.Amp, token.Pipe, token.Caret, token.Tilde,
		token.AndAnd, token.OrOr,
		token.Question, token.Colon,
		token.Semicolon, token.Comma,
		token.Dot, token.Arrow, token.FatArrow,
		token.LParen, token.RParen, token.LBrace, token.RBrace, token.LBracket, token.RBracket,
		token.At, token.ColonAssign,
	}
	for _, k := range ops {
		if !tok(k).IsPunctOrOp() {
			t.Fatalf("%v should be punct/op", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwIf, token.IntLit}
	for _, k := range non {
		if tok(k).IsPunctOrOp() {
			t.Fatalf("%v must NOT be punct/op", k)
		}
	}
}

func TestIsIdent(t *testing.T) {
	if !tok(token.Ident).IsIdent() {
		t.Fatalf("Ident should be ident")
	}
	if tok(token.KwFunction).IsIdent() {
		t.Fatalf("KwFunction must not be ident")
	}
}

func TestIsKeyword(t *testing.T) {
	keywords := []token.Kind{
		token.KwContract, token.KwInterface, token.KwLibrary, token.KwFunction, token.KwModifier,
		token.KwEvent, token.KwError, token.KwStruct, token.KwEnum, token.KwMapping, token.KwType,
		token.KwConstructor, token.KwReceive, token.KwFallback, token.KwEmit, token.KwRevert,
		token.KwReturns, token.KwReturn, token.KwIf, token.KwElse, token.KwWhile, token.KwDo,
		token.KwBreak, token.KwContinue, token.KwTry, token.KwCatch, token.KwAssembly, token.KwLet,
		token.KwMemory, token.KwStorage, token.KwCalldata, token.KwPublic, token.KwPrivate,
		token.KwInternal, token.KwExternal, token.KwPure, token.KwView, token.KwPayable,
		token.KwUnchecked, token.KwPlaceholder, token.KwTrue, token.KwFalse, token.KwIs,
	}
	for _, k := range keywords {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
	}
}

func TestIsVisibilityAndMutabilityAndLocation(t *testing.T) {
	for _, k := range []token.Kind{token.KwPublic, token.KwPrivate, token.KwInternal, token.KwExternal} {
		if !tok(k).IsVisibility() {
			t.Fatalf("%v should be a visibility specifier", k)
		}
	}
	for _, k := range []token.Kind{token.KwPure, token.KwView, token.KwPayable} {
		if !tok(k).IsStateMutability() {
			t.Fatalf("%v should be a state-mutability specifier", k)
		}
	}
	for _, k := range []token.Kind{token.KwMemory, token.KwStorage, token.KwCalldata, token.KwTransient} {
		if !tok(k).IsDataLocation() {
			t.Fatalf("%v should be a data-location specifier", k)
		}
	}
}
