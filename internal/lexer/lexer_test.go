package lexer_test

import (
	"surge/internal/diag"
	"surge/internal/lexer"
	"surge/internal/source"
	"surge/internal/token"
	"testing"
)

// testReporter collects every diagnostic reported by the lexer under test.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note, fixes []diag.Fix) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
		Fixes:    fixes,
	})
}

func (r *testReporter) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			return true
		}
	}
	return false
}

func makeTestLexer(input string) (*lexer.Lexer, *testReporter) {
	fs := source.NewMap()
	fileID := fs.AddVirtual("test.sol", []byte(input))
	file := fs.Get(fileID)

	reporter := &testReporter{}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return lx, reporter
}

func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens
}

func expectKinds(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	lx, reporter := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	if reporter.HasErrors() {
		t.Fatalf("unexpected lexer errors for %q: %+v", input, reporter.diagnostics)
	}
	if len(tokens) != len(expected)+1 { // +1 for EOF
		t.Fatalf("token count mismatch for %q: got %d, want %d (+EOF)", input, len(tokens), len(expected)+1)
	}
	for i, k := range expected {
		if tokens[i].Kind != k {
			t.Fatalf("token %d of %q: got %v, want %v", i, input, tokens[i].Kind, k)
		}
	}
	if tokens[len(tokens)-1].Kind != token.EOF {
		t.Fatalf("expected trailing EOF for %q", input)
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	expectKinds(t, "contract Foo is Bar", []token.Kind{
		token.KwContract, token.Ident, token.KwIs, token.Ident,
	})
}

func TestElementaryTypeNamesLexAsIdent(t *testing.T) {
	expectKinds(t, "uint256 x", []token.Kind{token.Ident, token.Ident})
}

func TestKeywordsAreCaseSensitive(t *testing.T) {
	// "Contract" is not the keyword "contract"; it lexes as a plain identifier.
	expectKinds(t, "Contract", []token.Kind{token.Ident})
}

func TestPlaceholderUnderscore(t *testing.T) {
	expectKinds(t, "_;", []token.Kind{token.KwPlaceholder, token.Semicolon})
}

func TestOperatorsGreedyMatch(t *testing.T) {
	expectKinds(t, "a += b ** c <<= d", []token.Kind{
		token.Ident, token.PlusAssign, token.Ident, token.StarStar, token.Ident,
		token.ShlAssign, token.Ident,
	})
}

func TestYulAssignArrow(t *testing.T) {
	expectKinds(t, "let x := 1", []token.Kind{
		token.KwLet, token.Ident, token.ColonAssign, token.IntLit,
	})
}

func TestDecimalIntegerLiteral(t *testing.T) {
	lx, reporter := makeTestLexer("123_456")
	tok := lx.Next()
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %+v", reporter.diagnostics)
	}
	if tok.Kind != token.IntLit || tok.Text != "123_456" {
		t.Fatalf("got %v %q, want IntLit 123_456", tok.Kind, tok.Text)
	}
}

func TestHexLiteral(t *testing.T) {
	lx, reporter := makeTestLexer("0x1A_2b")
	tok := lx.Next()
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %+v", reporter.diagnostics)
	}
	if tok.Kind != token.IntLit || tok.Text != "0x1A_2b" {
		t.Fatalf("got %v %q, want IntLit 0x1A_2b", tok.Kind, tok.Text)
	}
}

func TestScientificLiteral(t *testing.T) {
	lx, reporter := makeTestLexer("1.5e10")
	tok := lx.Next()
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %+v", reporter.diagnostics)
	}
	if tok.Kind != token.RationalLit || tok.Text != "1.5e10" {
		t.Fatalf("got %v %q, want RationalLit 1.5e10", tok.Kind, tok.Text)
	}
}

func TestMisplacedUnderscoreIsRejected(t *testing.T) {
	for _, src := range []string{"1__2", "1_", "0x_1"} {
		lx, reporter := makeTestLexer(src)
		tok := lx.Next()
		if tok.Kind != token.Invalid && !reporter.HasErrors() {
			t.Fatalf("%q: expected a digit-separator diagnostic, got %v with no errors", src, tok.Kind)
		}
	}
}

func TestStringLiteralDoubleAndSingleQuoted(t *testing.T) {
	expectKinds(t, `"abc" 'def'`, []token.Kind{token.StringLit, token.StringLit})
}

func TestHexAndUnicodeStringPrefixes(t *testing.T) {
	lx, reporter := makeTestLexer(`hex"deadbeef" unicode"café"`)
	toks := collectAllTokens(lx)
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %+v", reporter.diagnostics)
	}
	if toks[0].Kind != token.HexLit || toks[0].Text != `hex"deadbeef"` {
		t.Fatalf("got %v %q, want HexLit hex\"deadbeef\"", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Kind != token.UnicodeLit {
		t.Fatalf("got %v, want UnicodeLit", toks[1].Kind)
	}
}

func TestUnterminatedStringReportsDiagnostic(t *testing.T) {
	lx, reporter := makeTestLexer(`"abc`)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid for unterminated string, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatalf("expected an unterminated-string diagnostic")
	}
}

func TestUnknownCharacterReportsDiagnostic(t *testing.T) {
	lx, reporter := makeTestLexer("$")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid for unknown char, got %v", tok.Kind)
	}
	if !reporter.HasErrors() {
		t.Fatalf("expected an unknown-char diagnostic")
	}
	found := false
	for _, d := range reporter.diagnostics {
		if d.Code == diag.LexUnknownChar {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected LexUnknownChar among diagnostics, got %+v", reporter.diagnostics)
	}
}

func TestLineCommentIsTrivia(t *testing.T) {
	lx, reporter := makeTestLexer("// a comment\ncontract C {}")
	tok := lx.Next()
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %+v", reporter.diagnostics)
	}
	if tok.Kind != token.KwContract {
		t.Fatalf("expected KwContract after comment, got %v", tok.Kind)
	}
	if len(tok.Leading) == 0 {
		t.Fatalf("expected leading trivia to carry the comment")
	}
}

func TestDocLineCommentIsPreservedAsDocTrivia(t *testing.T) {
	lx, reporter := makeTestLexer("/// @notice increments n\nfunction inc() external {}")
	tok := lx.Next()
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %+v", reporter.diagnostics)
	}
	var sawDoc bool
	for _, tv := range tok.Leading {
		if tv.IsDoc() {
			sawDoc = true
		}
	}
	if !sawDoc {
		t.Fatalf("expected a doc-comment trivia entry leading %v", tok.Kind)
	}
}

func TestBlockCommentVsDocBlock(t *testing.T) {
	lx, _ := makeTestLexer("/* plain */ /** doc */ x")
	tok := lx.Next()
	var kinds []token.TriviaKind
	for _, tv := range tok.Leading {
		kinds = append(kinds, tv.Kind)
	}
	foundPlain, foundDoc := false, false
	for _, tv := range tok.Leading {
		if tv.Kind == token.TriviaBlockComment {
			foundPlain = true
		}
		if tv.Kind == token.TriviaDocBlock {
			foundDoc = true
		}
	}
	if !foundPlain || !foundDoc {
		t.Fatalf("expected both a plain and a doc block comment, got kinds %v", kinds)
	}
}

func TestUnterminatedBlockCommentReportsDiagnostic(t *testing.T) {
	lx, reporter := makeTestLexer("/* never closed")
	lx.Next() // forces trivia collection, which scans the comment
	if !reporter.HasErrors() {
		t.Fatalf("expected an unterminated-comment diagnostic")
	}
}

func TestMinimalCounterSourceLexesCleanly(t *testing.T) {
	src := "contract Counter { uint256 public n; function inc() external { n += 1; } }"
	lx, reporter := makeTestLexer(src)
	toks := collectAllTokens(lx)
	if reporter.HasErrors() {
		t.Fatalf("unexpected errors: %+v", reporter.diagnostics)
	}
	if toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("expected trailing EOF")
	}
	if toks[0].Kind != token.KwContract {
		t.Fatalf("expected first token KwContract, got %v", toks[0].Kind)
	}
}
