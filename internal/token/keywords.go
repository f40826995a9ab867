package token

var keywords = map[string]Kind{
	"pragma":      KwPragma,
	"import":      KwImport,
	"as":          KwAs,
	"from":        KwFrom,
	"is":          KwIs,
	"using":       KwUsing,
	"for":         KwFor,
	"global":      KwGlobal,
	"contract":    KwContract,
	"interface":   KwInterface,
	"library":     KwLibrary,
	"abstract":    KwAbstract,
	"function":    KwFunction,
	"modifier":    KwModifier,
	"event":       KwEvent,
	"error":       KwError,
	"struct":      KwStruct,
	"enum":        KwEnum,
	"mapping":     KwMapping,
	"type":        KwType,
	"constructor": KwConstructor,
	"receive":     KwReceive,
	"fallback":    KwFallback,
	"emit":        KwEmit,
	"revert":      KwRevert,
	"returns":     KwReturns,
	"return":      KwReturn,
	"if":          KwIf,
	"else":        KwElse,
	"while":       KwWhile,
	"do":          KwDo,
	"break":       KwBreak,
	"continue":    KwContinue,
	"try":         KwTry,
	"catch":       KwCatch,
	"throw":       KwThrow,
	"new":         KwNew,
	"delete":      KwDelete,
	"assembly":    KwAssembly,
	"let":         KwLet,
	"memory":      KwMemory,
	"storage":     KwStorage,
	"calldata":    KwCalldata,
	"transient":   KwTransient,
	"indexed":     KwIndexed,
	"anonymous":   KwAnonymous,
	"virtual":     KwVirtual,
	"override":    KwOverride,
	"constant":    KwConstant,
	"immutable":   KwImmutable,
	"public":      KwPublic,
	"private":     KwPrivate,
	"internal":    KwInternal,
	"external":    KwExternal,
	"pure":        KwPure,
	"view":        KwView,
	"payable":     KwPayable,
	"unchecked":   KwUnchecked,
	"true":        KwTrue,
	"false":       KwFalse,
	"this":        KwThis,
	"super":       KwSuper,
	"_":           KwPlaceholder,
}

// LookupKeyword returns the token kind for a keyword identifier.
// Keywords are case-sensitive; only the exact lowercase spelling matches.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
