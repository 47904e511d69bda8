package token

import "testing"

func TestLookupAtKeyword(t *testing.T) {
	cases := map[string]Kind{
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
	for word, want := range cases {
		got, ok := LookupAtKeyword(word)
		if !ok {
			t.Fatalf("LookupAtKeyword(%q) = !ok, want %v", word, want)
		}
		if got != want {
			t.Fatalf("LookupAtKeyword(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestLookupAtKeywordUnknown(t *testing.T) {
	unknown := []string{
		"Mod", "REQ", // case matters
		"module", "function", // no aliases
		"whatever", "",
	}
	for _, word := range unknown {
		if _, ok := LookupAtKeyword(word); ok {
			t.Fatalf("LookupAtKeyword(%q) returned ok=true, want false", word)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	cases := map[string]Kind{
		"let":  KwLet,
		"if":   KwIf,
		"else": KwElse,
		"ret":  KwRet,
		"as":   KwAs,
	}
	for word, want := range cases {
		got, ok := LookupKeyword(word)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", word, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestLookupKeywordNegative(t *testing.T) {
	notKw := []string{
		"Let", "IF", // lowering is the lexer's job
		"return", "letx", "fn", // 'fn' is only reserved behind '@'
		"",
	}
	for _, word := range notKw {
		if _, ok := LookupKeyword(word); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", word)
		}
	}
}
