package syntax

import "sort"

// LineInfo records the byte range of one line of a source file.
type LineInfo struct {
	StartOffset  int // first byte of the line
	NewlineStart int // byte index where the line's own content ends (before CR/LF)
	EndOffset    int // byte index just past the line's terminating newline
}

// LineIndex converts byte offsets to 1-based line/column positions. It is
// built once per parse (the parser does not know about lines itself, it
// only tracks byte offsets) and handles both LF and CRLF endings.
type LineIndex struct {
	lines []LineInfo
}

// NewLineIndex builds a LineIndex over the given source content.
func NewLineIndex(content []byte) *LineIndex {
	var lines []LineInfo
	lineStart := 0

	for idx, b := range content {
		if b == '\n' {
			newlineStart := idx
			if idx > 0 && content[idx-1] == '\r' {
				newlineStart = idx - 1
			}
			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	if lineStart <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	return &LineIndex{lines: lines}
}

// LineCount returns the number of lines in the indexed content.
func (idx *LineIndex) LineCount() int {
	return len(idx.lines)
}

// At converts a byte offset into a 1-based (line, column) pair. Column
// counts bytes, not runes, matching the spec's byte-offset position model.
func (idx *LineIndex) At(offset int) Position {
	if offset < 0 || len(idx.lines) == 0 {
		return Position{}
	}

	if offset >= idx.lines[len(idx.lines)-1].EndOffset {
		last := idx.lines[len(idx.lines)-1]
		if offset > last.EndOffset {
			offset = last.EndOffset
		}
		return Position{Line: len(idx.lines), Column: offset - last.StartOffset + 1}
	}

	lineIdx := sort.Search(len(idx.lines), func(i int) bool {
		return idx.lines[i].EndOffset > offset
	})
	if lineIdx >= len(idx.lines) {
		lineIdx = len(idx.lines) - 1
	}
	line := idx.lines[lineIdx]
	if offset < line.StartOffset {
		return Position{}
	}
	return Position{Line: lineIdx + 1, Column: offset - line.StartOffset + 1}
}

// Span builds a Span from a pair of byte offsets using this index.
func (idx *LineIndex) Span(start, end int) Span {
	return Span{
		StartOffset: start,
		EndOffset:   end,
		Start:       idx.At(start),
		End:         idx.At(end),
	}
}

// LineContent returns the content of a 1-based line number, excluding its
// terminating newline. Returns nil if the line number is out of range.
func (idx *LineIndex) LineContent(content []byte, line int) []byte {
	if line < 1 || line > len(idx.lines) {
		return nil
	}
	li := idx.lines[line-1]
	return content[li.StartOffset:li.NewlineStart]
}
