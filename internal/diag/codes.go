package diag

import "fmt"

// Code is a stable, numeric diagnostic identifier, e.g. "SE2396".
// Codes are grouped into blocks of 1000 by pipeline stage.
type Code uint16

const (
	UnknownCode Code = 0

	// Lex1xxx: lexical errors.
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexBadNumberLiteral         Code = 1002
	LexBadStringEscape          Code = 1003
	LexUnterminatedComment      Code = 1004
	LexUnterminatedString       Code = 1005
	LexTokenTooLong             Code = 1006

	// Syn2xxx: parse errors.
	SynInfo                Code = 2000
	SynUnexpectedToken     Code = 2001
	SynExpectedKeyword     Code = 2002
	SynBadPragma           Code = 2003
	SynMalformedImport     Code = 2004
	SynUnclosedDelimiter   Code = 2005
	SynExpectSemicolon     Code = 2006
	SynExpectIdentifier    Code = 2007
	SynDuplicateUsingFor   Code = 2008
	SynYulBadStatement     Code = 2009
	SynDocCommentDropped   Code = 2010 // -Z pedantic warning

	// AST validator (still Syn2xxx).
	SynPlaceholderOutsideModifier Code = 2100
	SynLoopControlOutsideLoop    Code = 2101
	SynVarDeclSoleLoopBody       Code = 2102
	SynNestedUnchecked           Code = 2103
	SynFnNameShadowsContract     Code = 2104
	SynEnumVariantCount          Code = 2105
	SynEmptyStruct               Code = 2106
	SynModifierWithoutPlaceholder Code = 2107
	SynBadReceiveFallbackShape   Code = 2108
	SynBadPragmaVersion          Code = 2109

	// Import/source resolver (still Syn2xxx): failure modes of turning an
	// import literal into a loaded file, per the FileLoader contract.
	SynImportFileNotFound    Code = 2200
	SynImportReadError       Code = 2201
	SynImportAmbiguousRemap  Code = 2202
	SynImportPathNotAllowed Code = 2203

	// Res3xxx: name resolution errors.
	ResUndefined           Code = 3000
	ResAmbiguous           Code = 3001
	ResCycleInConstants    Code = 3002
	ResNoMatchingOverload  Code = 3003
	ResBadInheritance      Code = 3004
	ResDuplicateName       Code = 3005
	ResGlobImportNeedsName Code = 3006
	ResUnknownImportMember Code = 3007

	// Type4xxx: type-checking errors.
	TypeMismatchedTypes          Code = 4000
	TypeInvalidExplicitConv      Code = 4001
	TypeNotAnLvalue              Code = 4002
	TypeBadDataLocation          Code = 4003
	TypeRecursiveType            Code = 4004
	TypeTooMuchStorage           Code = 4005
	TypeExternalTypeClash        Code = 4006
	TypeMutabilityViolation      Code = 4007
	TypeVisibilityViolation      Code = 4008
	TypeBadOverride              Code = 4009
	TypeBadReceiveFallback       Code = 4010
	TypeMappingAsKeyInvalid      Code = 4011
	TypeBadConstructorArity      Code = 4012
	TypeNamedArgMismatch         Code = 4013
	TypeBadCustomOperator        Code = 4014

	// Eval5xxx: constant-evaluation errors.
	EvalDivisionByZero       Code = 5000
	EvalArithmeticOverflow   Code = 5001
	EvalUnsupportedExpr      Code = 5002

	// Warn9xxx: warnings; never raise the exit code.
	WarnUnusedParameter            Code = 9000
	WarnUnusedLocal                Code = 9001
	WarnShadowing                  Code = 9002
	WarnAssertWithoutMessage       Code = 9003
	WarnRequireWithoutMessage      Code = 9004
	WarnPayableFallbackNoReceive   Code = 9005
	WarnStatementHasNoEffect       Code = 9006
)

var codeNames = map[Code]string{
	UnknownCode:                   "unknown",
	LexInfo:                       "lex-info",
	LexUnknownChar:                "unknown-char",
	LexBadNumberLiteral:           "bad-number-literal",
	LexBadStringEscape:            "bad-string-escape",
	LexUnterminatedComment:        "unterminated-comment",
	LexUnterminatedString:         "unterminated-string",
	LexTokenTooLong:               "token-too-long",
	SynInfo:                       "syn-info",
	SynUnexpectedToken:            "unexpected-token",
	SynExpectedKeyword:            "expected-keyword",
	SynBadPragma:                  "bad-pragma",
	SynMalformedImport:            "malformed-import",
	SynUnclosedDelimiter:          "unclosed-delimiter",
	SynExpectSemicolon:            "expected-semicolon",
	SynExpectIdentifier:           "expected-identifier",
	SynDuplicateUsingFor:          "duplicate-using-for",
	SynYulBadStatement:            "bad-yul-statement",
	SynDocCommentDropped:          "doc-comment-dropped",
	SynPlaceholderOutsideModifier: "placeholder-outside-modifier",
	SynLoopControlOutsideLoop:     "loop-control-outside-loop",
	SynVarDeclSoleLoopBody:        "var-decl-sole-loop-body",
	SynNestedUnchecked:            "nested-unchecked",
	SynFnNameShadowsContract:      "fn-name-shadows-contract",
	SynEnumVariantCount:           "enum-variant-count",
	SynEmptyStruct:                "empty-struct",
	SynModifierWithoutPlaceholder: "modifier-without-placeholder",
	SynBadReceiveFallbackShape:    "bad-receive-fallback-shape",
	SynBadPragmaVersion:           "bad-pragma-version",
	SynImportFileNotFound:         "import-file-not-found",
	SynImportReadError:            "import-read-error",
	SynImportAmbiguousRemap:       "import-ambiguous-remap",
	SynImportPathNotAllowed:       "import-path-not-allowed",
	ResUndefined:                  "undefined",
	ResAmbiguous:                  "ambiguous",
	ResCycleInConstants:           "cycle-in-constants",
	ResNoMatchingOverload:         "no-matching-overload",
	ResBadInheritance:             "bad-inheritance",
	ResDuplicateName:              "duplicate-name",
	ResGlobImportNeedsName:        "glob-import-needs-alias",
	ResUnknownImportMember:        "unknown-import-member",
	TypeMismatchedTypes:           "mismatched-types",
	TypeInvalidExplicitConv:       "invalid-explicit-conversion",
	TypeNotAnLvalue:               "not-an-lvalue",
	TypeBadDataLocation:           "bad-data-location",
	TypeRecursiveType:             "recursive-type",
	TypeTooMuchStorage:            "too-much-storage",
	TypeExternalTypeClash:         "external-type-clash",
	TypeMutabilityViolation:       "mutability-violation",
	TypeVisibilityViolation:       "visibility-violation",
	TypeBadOverride:               "bad-override",
	TypeBadReceiveFallback:        "bad-receive-fallback",
	TypeMappingAsKeyInvalid:       "mapping-as-key-invalid",
	TypeBadConstructorArity:       "bad-constructor-arity",
	TypeNamedArgMismatch:          "named-arg-mismatch",
	TypeBadCustomOperator:         "bad-custom-operator",
	EvalDivisionByZero:            "division-by-zero",
	EvalArithmeticOverflow:        "arithmetic-overflow",
	EvalUnsupportedExpr:           "unsupported-expression",
	WarnUnusedParameter:           "unused-parameter",
	WarnUnusedLocal:               "unused-local",
	WarnShadowing:                 "shadowing",
	WarnAssertWithoutMessage:      "assert-without-message",
	WarnRequireWithoutMessage:     "require-without-message",
	WarnPayableFallbackNoReceive:  "payable-fallback-without-receive",
	WarnStatementHasNoEffect:      "statement-has-no-effect",
}

// String renders a stable "SE####" code.
func (c Code) String() string {
	return fmt.Sprintf("SE%04d", uint16(c))
}

// Name returns the kebab-case mnemonic for c, or "unknown" if c is not registered.
func (c Code) Name() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return "unknown"
}

// IsWarningCode reports whether c belongs to the Warn9xxx block. Used by
// DefaultSeverity and by --no-warnings filtering.
func (c Code) IsWarningCode() bool {
	return c >= 9000 && c < 10000
}

// DefaultSeverity returns the severity a diagnostic of this code carries
// unless a pass overrides it explicitly.
func (c Code) DefaultSeverity() Severity {
	if c.IsWarningCode() {
		return SevWarning
	}
	if c == SynDocCommentDropped {
		return SevWarning
	}
	return SevError
}
