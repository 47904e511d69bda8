// Package driver wires the pipeline stages together: tokenize, parse,
// validate, for one file or a whole directory. Stages themselves never
// fail; the only error paths here are I/O.
package driver

import (
	"github.com/lememta/sage-lang/internal/ast"
	"github.com/lememta/sage-lang/internal/diag"
	"github.com/lememta/sage-lang/internal/lexer"
	"github.com/lememta/sage-lang/internal/parser"
	"github.com/lememta/sage-lang/internal/source"
	"github.com/lememta/sage-lang/internal/token"
	"github.com/lememta/sage-lang/internal/validate"
)

// TokenizeResult is the outcome of the tokenize stage for one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads a file from disk and tokenizes it.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(fs, fs.Get(fileID), maxDiagnostics), nil
}

// TokenizeSource tokenizes in-memory content under a virtual name.
func TokenizeSource(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeFile(fs, fs.Get(fileID), maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, file *source.File, maxDiagnostics int) *TokenizeResult {
	bag := diag.NewBag(maxDiagnostics)
	tokens := lexer.Tokenize(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})
	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}

// ParseResult is the outcome of the parse stage for one file.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Builder *ast.Builder
	Doc     ast.DocID
	Bag     *diag.Bag
}

// Parse loads a file from disk, tokenizes and parses it.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseFile(fs, fs.Get(fileID), maxDiagnostics), nil
}

// ParseSource parses in-memory content under a virtual name.
func ParseSource(name string, content []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseFile(fs, fs.Get(fileID), maxDiagnostics)
}

func parseFile(fs *source.FileSet, file *source.File, maxDiagnostics int) *ParseResult {
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	tokens := lexer.Tokenize(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{}, nil)
	result := parser.ParseTokens(file, tokens, builder, parser.Options{
		Reporter: reporter,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Builder: builder,
		Doc:     result.Doc,
		Bag:     bag,
	}
}

// CheckResult is the outcome of the full pipeline for one file. OK is
// false iff the bag holds errors.
type CheckResult struct {
	*ParseResult
	OK bool
}

// Check runs tokenize, parse and validate over one file from disk.
func Check(path string, maxDiagnostics int) (*CheckResult, error) {
	parsed, err := Parse(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return checkParsed(parsed), nil
}

// CheckSource runs the full pipeline over in-memory content.
func CheckSource(name string, content []byte, maxDiagnostics int) *CheckResult {
	return checkParsed(ParseSource(name, content, maxDiagnostics))
}

func checkParsed(parsed *ParseResult) *CheckResult {
	validate.Check(parsed.Builder, parsed.Doc, validate.Options{
		Reporter: diag.BagReporter{Bag: parsed.Bag},
	})
	parsed.Bag.Sort()
	return &CheckResult{
		ParseResult: parsed,
		OK:          !parsed.Bag.HasErrors(),
	}
}
