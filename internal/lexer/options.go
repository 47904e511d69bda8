package lexer

import (
	"github.com/lememta/sage-lang/internal/diag"
	"github.com/lememta/sage-lang/internal/source"
)

// Options configures a Lexer. A nil Reporter is fine: the tokenizer
// never fails, it only drops informational notes about skipped bytes.
type Options struct {
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevInfo, sp, msg, nil)
	}
}
