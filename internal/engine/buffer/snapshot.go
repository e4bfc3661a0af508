package buffer

import "unicode/utf8"

// Snapshot is a read-only view of a buffer at a point in time. It is safe
// for concurrent use and never changes, even if the source buffer does.
type Snapshot struct {
	text       string
	lineStarts []ByteOffset
	revisionID RevisionID
}

// Text returns the full snapshot content.
func (s *Snapshot) Text() string {
	return s.text
}

// Len returns the snapshot length in bytes.
func (s *Snapshot) Len() ByteOffset {
	return ByteOffset(len(s.text))
}

// Revision returns the revision the snapshot was taken at.
func (s *Snapshot) Revision() RevisionID {
	return s.revisionID
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() int {
	return len(s.lineStarts)
}

// LineStartOffset returns the offset of the first byte of the given line.
func (s *Snapshot) LineStartOffset(line int) ByteOffset {
	return lineStart(s.lineStarts, line)
}

// LineEndOffset returns the offset just past the line's content, excluding
// its newline.
func (s *Snapshot) LineEndOffset(line int) ByteOffset {
	return lineEnd(s.text, s.lineStarts, line)
}

// LineText returns a line's text without its newline.
func (s *Snapshot) LineText(line int) string {
	return s.text[lineStart(s.lineStarts, line):lineEnd(s.text, s.lineStarts, line)]
}

// OffsetToPoint converts a byte offset to a line/column position.
func (s *Snapshot) OffsetToPoint(off ByteOffset) Point {
	off = clampOffset(off, ByteOffset(len(s.text)))
	line := lineOf(s.lineStarts, off)
	return Point{Line: line, Column: int(off - s.lineStarts[line])}
}

// RuneAt returns the rune starting at the byte offset and its size.
func (s *Snapshot) RuneAt(off ByteOffset) (rune, int) {
	if off < 0 || int(off) >= len(s.text) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.text[off:])
}

// TextRange returns the text within the range, clamped to the snapshot.
func (s *Snapshot) TextRange(r Range) string {
	r = r.Clamp(ByteOffset(len(s.text)))
	return s.text[r.Start:r.End]
}
