package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"contract": KwContract,
		"function": KwFunction,
		"returns":  KwReturns,
		"memory":   KwMemory,
		"storage":  KwStorage,
		"calldata": KwCalldata,
		"payable":  KwPayable,
		"is":       KwIs,
		"using":    KwUsing,
		"true":     KwTrue,
		"false":    KwFalse,
		"_":        KwPlaceholder,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"Contract", "FUNCTION", // case matters, lowering happens nowhere
		"uint", "uint8", "uint256", "bytes32", "address", // elementary type names lex as Ident
		"identifier", "toString", "hex", "unicode",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}
