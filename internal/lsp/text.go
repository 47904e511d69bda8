package lsp

import (
	"strings"
	"unicode/utf8"
)

// applyChanges folds incremental edits into the overlay text in the
// order the client sent them. A change without a range replaces the
// whole document.
func applyChanges(text string, changes []textDocumentContentChangeEvent) string {
	for _, change := range changes {
		if change.Range == nil {
			text = change.Text
			continue
		}
		start := clampOffset(offsetForPosition(text, change.Range.Start), len(text))
		end := clampOffset(offsetForPosition(text, change.Range.End), len(text))
		if end < start {
			end = start
		}
		text = text[:start] + change.Text + text[end:]
	}
	return text
}

func clampOffset(off, limit int) int {
	if off < 0 {
		return 0
	}
	if off > limit {
		return limit
	}
	return off
}

// offsetForPosition maps an LSP position (0-based line, UTF-16 column)
// to a byte offset in text. A line past the end maps to len(text); a
// column past the end of its line stops at the line break.
func offsetForPosition(text string, pos position) int {
	if pos.Line < 0 || pos.Character < 0 {
		return 0
	}
	off := 0
	for l := 0; l < pos.Line; l++ {
		nl := strings.IndexByte(text[off:], '\n')
		if nl < 0 {
			return len(text)
		}
		off += nl + 1
	}
	units := 0
	for off < len(text) && text[off] != '\n' {
		r, size := utf8.DecodeRuneInString(text[off:])
		need := 1
		if r > 0xFFFF {
			need = 2
		}
		if units+need > pos.Character {
			break
		}
		off += size
		units += need
		if units == pos.Character {
			break
		}
	}
	return off
}
