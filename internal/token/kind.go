package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is the zero Kind; the lexer never emits it.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Newline is a significant line break.
	Newline
	// Comment is a '#' line comment with its text trimmed.
	Comment

	// Ident represents an identifier token, including unknown @words.
	Ident
	// NumberLit represents a number literal (digits and interior dots).
	NumberLit
	// StringLit represents a double-quoted string literal.
	StringLit

	// AtMod represents the '@mod' keyword.
	AtMod
	// AtType represents the '@type' keyword.
	AtType
	// AtFn represents the '@fn' keyword.
	AtFn
	// AtSpec represents the '@spec' keyword.
	AtSpec
	// AtOp represents the '@op' keyword.
	AtOp
	// AtRefine represents the '@refine' keyword.
	AtRefine
	// AtImpl represents the '@impl' keyword.
	AtImpl
	// AtReq represents the '@req' keyword.
	AtReq
	// AtEns represents the '@ens' keyword.
	AtEns
	// AtInv represents the '@inv' keyword.
	AtInv
	// AtProp represents the '@prop' keyword.
	AtProp
	// AtDecision represents the '@decision' keyword.
	AtDecision
	// AtPreserves represents the '@preserves' keyword.
	AtPreserves
	// AtState represents the '@state' keyword.
	AtState
	// AtMaps represents the '@maps' keyword.
	AtMaps
	// AtCompareWith represents the '@compare_with' keyword.
	AtCompareWith
	// AtInferredReq represents the '@inferred_req' keyword.
	AtInferredReq
	// AtInferredEns represents the '@inferred_ens' keyword.
	AtInferredEns
	// AtInferredEff represents the '@inferred_eff' keyword.
	AtInferredEff

	// KwLet represents the 'let' keyword.
	KwLet
	// KwIf represents the 'if' keyword.
	KwIf
	// KwElse represents the 'else' keyword.
	KwElse
	// KwRet represents the 'ret' keyword.
	KwRet
	// KwAs represents the 'as' keyword.
	KwAs

	// BangBang represents the '!!' decision marker.
	BangBang
	// BangEq represents the '!=' operator.
	BangEq
	// Arrow represents the '->' operator.
	Arrow
	// FatArrow represents the '=>' operator.
	FatArrow
	// EqEq represents the '==' operator.
	EqEq
	// GtEq represents the '>=' operator.
	GtEq
	// LtEq represents the '<=' operator.
	LtEq
	// AndAnd represents the '&&' operator.
	AndAnd
	// Ellipsis represents the '...' elision marker.
	Ellipsis
	// SectionSep represents a run of three or more dashes.
	SectionSep

	// Assign represents the '=' operator.
	Assign
	// Lt represents the '<' operator.
	Lt
	// Gt represents the '>' operator.
	Gt
	// Bang represents a lone '!' operator.
	Bang
	// LParen represents '('.
	LParen
	// RParen represents ')'.
	RParen
	// LBrace represents '{'.
	LBrace
	// RBrace represents '}'.
	RBrace
	// LBracket represents '['.
	LBracket
	// RBracket represents ']'.
	RBracket
	// Comma represents ','.
	Comma
	// Colon represents ':'.
	Colon
	// Semicolon represents ';'.
	Semicolon
	// Dot represents '.'.
	Dot
	// Plus represents '+'.
	Plus
	// Minus represents a single '-'.
	Minus
	// Star represents '*'.
	Star
	// Slash represents '/'.
	Slash
	// Percent represents '%'.
	Percent
	// Pipe represents '|'.
	Pipe
	// Prime represents the apostrophe post-state marker.
	Prime

	// ForAll represents '∀'.
	ForAll
	// Exists represents '∃'.
	Exists
	// ElemOf represents '∈'.
	ElemOf
	// Implies represents '⟹'.
	Implies
	// Sum represents '∑'.
	Sum
	// CheckMark represents '✓'.
	CheckMark
	// ReasonArrow represents '←', separating a condition from its reason.
	ReasonArrow
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Newline:       "Newline",
	Comment:       "Comment",
	Ident:         "Ident",
	NumberLit:     "NumberLit",
	StringLit:     "StringLit",
	AtMod:         "AtMod",
	AtType:        "AtType",
	AtFn:          "AtFn",
	AtSpec:        "AtSpec",
	AtOp:          "AtOp",
	AtRefine:      "AtRefine",
	AtImpl:        "AtImpl",
	AtReq:         "AtReq",
	AtEns:         "AtEns",
	AtInv:         "AtInv",
	AtProp:        "AtProp",
	AtDecision:    "AtDecision",
	AtPreserves:   "AtPreserves",
	AtState:       "AtState",
	AtMaps:        "AtMaps",
	AtCompareWith: "AtCompareWith",
	AtInferredReq: "AtInferredReq",
	AtInferredEns: "AtInferredEns",
	AtInferredEff: "AtInferredEff",
	KwLet:         "KwLet",
	KwIf:          "KwIf",
	KwElse:        "KwElse",
	KwRet:         "KwRet",
	KwAs:          "KwAs",
	BangBang:      "BangBang",
	BangEq:        "BangEq",
	Arrow:         "Arrow",
	FatArrow:      "FatArrow",
	EqEq:          "EqEq",
	GtEq:          "GtEq",
	LtEq:          "LtEq",
	AndAnd:        "AndAnd",
	Ellipsis:      "Ellipsis",
	SectionSep:    "SectionSep",
	Assign:        "Assign",
	Lt:            "Lt",
	Gt:            "Gt",
	Bang:          "Bang",
	LParen:        "LParen",
	RParen:        "RParen",
	LBrace:        "LBrace",
	RBrace:        "RBrace",
	LBracket:      "LBracket",
	RBracket:      "RBracket",
	Comma:         "Comma",
	Colon:         "Colon",
	Semicolon:     "Semicolon",
	Dot:           "Dot",
	Plus:          "Plus",
	Minus:         "Minus",
	Star:          "Star",
	Slash:         "Slash",
	Percent:       "Percent",
	Pipe:          "Pipe",
	Prime:         "Prime",
	ForAll:        "ForAll",
	Exists:        "Exists",
	ElemOf:        "ElemOf",
	Implies:       "Implies",
	Sum:           "Sum",
	CheckMark:     "CheckMark",
	ReasonArrow:   "ReasonArrow",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}
