package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (1000-1999). Informational only: the tokenizer never fails.
	LexInfo        Code = 1000
	LexSkippedChar Code = 1001

	// Syntactic (2000-2999). Informational only: the parser recovers
	// every mismatch into a raw fallback node.
	SynInfo         Code = 2000
	SynRawFallback  Code = 2001
	SynUnknownAtted Code = 2002

	// Validation (3000-3999). These are the errors users see.
	ValInfo              Code = 3000
	ValEmptyName         Code = 3001
	ValEmptyCondition    Code = 3002
	ValRefineNoParent    Code = 3003
	ValDuplicateDecl     Code = 3004
	ValEmptyFieldName    Code = 3005
	ValEmptyCompareBlock Code = 3006

	// IO / project (4000-4999)
	IOError         Code = 4000
	PrjManifestBad  Code = 4001
	PrjManifestName Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:          "unknown",
	LexInfo:              "lexical note",
	LexSkippedChar:       "skipped unrecognized character",
	SynInfo:              "syntax note",
	SynRawFallback:       "line captured as raw fallback",
	SynUnknownAtted:      "unknown @keyword treated as identifier",
	ValInfo:              "validation note",
	ValEmptyName:         "declaration has empty name",
	ValEmptyCondition:    "contract has empty condition",
	ValRefineNoParent:    "refinement has no parent name",
	ValDuplicateDecl:     "duplicate top-level declaration name",
	ValEmptyFieldName:    "record field has empty name",
	ValEmptyCompareBlock: "comparison block has no target",
	IOError:              "io error",
	PrjManifestBad:       "malformed project manifest",
	PrjManifestName:      "project manifest missing package name",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("VAL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
