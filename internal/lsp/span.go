package lsp

import (
	"sort"
	"unicode/utf8"

	"fortio.org/safecast"

	"github.com/lememta/sage-lang/internal/source"
)

const maxUint32 = ^uint32(0)

func safeUint32(n int) uint32 {
	if n < 0 {
		return 0
	}
	v, err := safecast.Conv[uint32](n)
	if err != nil {
		return maxUint32
	}
	return v
}

// positionForOffsetInFile maps a byte offset to an LSP position. The
// line comes from a binary search over the file's newline index; the
// column is counted in UTF-16 code units as the protocol requires.
func positionForOffsetInFile(file *source.File, offset uint32) position {
	if file == nil {
		return position{}
	}
	if limit := safeUint32(len(file.Content)); offset > limit {
		offset = limit
	}
	idx := file.LineIdx
	line := sort.Search(len(idx), func(i int) bool { return idx[i] >= offset })
	var lineStart uint32
	if line > 0 {
		lineStart = idx[line-1] + 1
	}
	if lineStart > offset {
		lineStart = offset
	}
	return position{Line: line, Character: utf16Len(file.Content[lineStart:offset])}
}

// utf16Len counts UTF-16 code units; runes beyond the basic plane
// take a surrogate pair.
func utf16Len(b []byte) int {
	units := 0
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
		b = b[size:]
	}
	return units
}

func rangeForSpan(file *source.File, span source.Span) lspRange {
	if file == nil {
		return lspRange{}
	}
	return lspRange{
		Start: positionForOffsetInFile(file, span.Start),
		End:   positionForOffsetInFile(file, span.End),
	}
}
