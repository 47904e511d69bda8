package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/lememta/sage-lang/internal/diag"
	"github.com/lememta/sage-lang/internal/source"
)

var (
	sevErrorColor   = color.New(color.FgRed, color.Bold)
	sevWarningColor = color.New(color.FgYellow, color.Bold)
	sevInfoColor    = color.New(color.FgCyan)
	gutterColor     = color.New(color.FgBlue)
)

// Pretty formats diagnostics for humans. It walks bag.Items() in order
// (call bag.Sort() first for stable output). Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//
// followed by the source line with a ^~~~ underline over the span,
// then notes in the same shape when opts.ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}
	for i := range maxItems {
		d := items[i]
		printHeader(w, fs, d.Severity, d.Code.ID(), d.Primary, d.Message, opts)
		printUnderline(w, fs, d.Primary, opts)
		if opts.ShowNotes {
			for _, note := range d.Notes {
				printHeader(w, fs, diag.SevInfo, "note", note.Span, note.Msg, opts)
				printUnderline(w, fs, note.Span, opts)
			}
		}
	}
	if truncated := len(items) - maxItems; truncated > 0 {
		fmt.Fprintf(w, "... and %d more\n", truncated)
	}
}

func printHeader(w io.Writer, fs *source.FileSet, sev diag.Severity, label string, sp source.Span, msg string, opts PrettyOpts) {
	var path string
	line, col := uint32(0), uint32(0)
	if fs != nil {
		if f := fs.Get(sp.File); f != nil {
			path = formatPath(f, fs, opts.PathMode)
			start, _ := fs.Resolve(sp)
			line, col = start.Line, start.Col
		}
	}
	if path == "" {
		path = "<input>"
	}

	sevText := sev.String()
	if opts.Color {
		sevText = sevColor(sev).Sprint(sevText)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, line, col, sevText, label, msg)
}

// printUnderline shows the first source line the span covers with a
// caret run below it. Spans past the file or empty files print
// nothing.
func printUnderline(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	if fs == nil {
		return
	}
	f := fs.Get(sp.File)
	if f == nil {
		return
	}
	start, end := fs.Resolve(sp)
	lineText := f.GetLine(start.Line)
	if lineText == "" && sp.Empty() {
		return
	}

	gutter := fmt.Sprintf("%5d | ", start.Line)
	if opts.Color {
		fmt.Fprintf(w, "%s%s\n", gutterColor.Sprint(gutter), strings.TrimRight(lineText, "\n"))
	} else {
		fmt.Fprintf(w, "%s%s\n", gutter, strings.TrimRight(lineText, "\n"))
	}

	// Underline only within the first line; multi-line spans stop at
	// the line end.
	startCol := int(start.Col)
	if startCol < 1 {
		startCol = 1
	}
	endCol := int(end.Col)
	if end.Line != start.Line || endCol <= startCol {
		endCol = startCol + 1
	}
	prefixWidth := displayWidth(lineText, startCol-1)
	spanWidth := displayWidth(lineText[min(startCol-1, len(lineText)):], endCol-startCol)
	if spanWidth < 1 {
		spanWidth = 1
	}

	marker := "^" + strings.Repeat("~", spanWidth-1)
	if opts.Color {
		marker = sevErrorColor.Sprint(marker)
	}
	pad := strings.Repeat(" ", len(gutter)+prefixWidth)
	fmt.Fprintf(w, "%s%s\n", pad, marker)
}

// displayWidth measures the terminal width of the first n bytes of s,
// so underlines line up under wide runes.
func displayWidth(s string, n int) int {
	if n <= 0 {
		return 0
	}
	if n > len(s) {
		n = len(s)
	}
	return runewidth.StringWidth(s[:n])
}

func sevColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return sevErrorColor
	case diag.SevWarning:
		return sevWarningColor
	default:
		return sevInfoColor
	}
}
