package token

// atKeywords is the closed table for '@'-prefixed vocabulary.
// An @word missing here lexes as Ident so future vocabulary does not
// break old parsers.
var atKeywords = map[string]Kind{
	"mod":          AtMod,
	"type":         AtType,
	"fn":           AtFn,
	"spec":         AtSpec,
	"op":           AtOp,
	"refine":       AtRefine,
	"impl":         AtImpl,
	"req":          AtReq,
	"ens":          AtEns,
	"inv":          AtInv,
	"prop":         AtProp,
	"decision":     AtDecision,
	"preserves":    AtPreserves,
	"state":        AtState,
	"maps":         AtMaps,
	"compare_with": AtCompareWith,
	"inferred_req": AtInferredReq,
	"inferred_ens": AtInferredEns,
	"inferred_eff": AtInferredEff,
}

var keywords = map[string]Kind{
	"let":  KwLet,
	"if":   KwIf,
	"else": KwElse,
	"ret":  KwRet,
	"as":   KwAs,
}

// LookupAtKeyword returns the kind for the word following '@'.
// Only lowercase spellings are recognized.
func LookupAtKeyword(word string) (Kind, bool) {
	k, ok := atKeywords[word]
	return k, ok
}

// LookupKeyword returns the kind for a plain keyword.
// Keywords are case-sensitive; only lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
