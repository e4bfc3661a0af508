package buffer

import (
	"errors"
	"strings"
	"sync"
	"unicode/utf8"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// Buffer holds document text with LF-normalized line endings.
// All methods are safe for concurrent use.
type Buffer struct {
	mu         sync.RWMutex
	text       string
	lineStarts []ByteOffset
	revisionID RevisionID
}

// New creates an empty buffer.
func New() *Buffer {
	b := &Buffer{revisionID: NewRevisionID()}
	b.reindex()
	return b
}

// FromString creates a buffer with initial content. CRLF and lone CR line
// endings are normalized to LF.
func FromString(s string) *Buffer {
	b := &Buffer{
		text:       normalizeLineEndings(s),
		revisionID: NewRevisionID(),
	}
	b.reindex()
	return b
}

func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// reindex rebuilds the line start table. Callers must hold the write lock
// (or own the buffer exclusively, as during construction).
func (b *Buffer) reindex() {
	starts := b.lineStarts[:0]
	starts = append(starts, 0)
	for i := 0; i < len(b.text); i++ {
		if b.text[i] == '\n' {
			starts = append(starts, ByteOffset(i+1))
		}
	}
	b.lineStarts = starts
}

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return ByteOffset(len(b.text))
}

// Revision returns the current revision ID.
func (b *Buffer) Revision() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// LineCount returns the number of lines. An empty buffer has one line.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lineStarts)
}

// LineStartOffset returns the offset of the first byte of the given line.
// Out-of-range lines clamp to the nearest valid line.
func (b *Buffer) LineStartOffset(line int) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return lineStart(b.lineStarts, line)
}

// LineEndOffset returns the offset just past the last content byte of the
// line, excluding its newline.
func (b *Buffer) LineEndOffset(line int) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return lineEnd(b.text, b.lineStarts, line)
}

// LineText returns a line's text without its newline.
func (b *Buffer) LineText(line int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text[lineStart(b.lineStarts, line):lineEnd(b.text, b.lineStarts, line)]
}

// OffsetToPoint converts a byte offset to a line/column position.
func (b *Buffer) OffsetToPoint(off ByteOffset) Point {
	b.mu.RLock()
	defer b.mu.RUnlock()
	off = clampOffset(off, ByteOffset(len(b.text)))
	line := lineOf(b.lineStarts, off)
	return Point{Line: line, Column: int(off - b.lineStarts[line])}
}

// PointToOffset converts a line/column position to a byte offset.
// Columns past the end of the line clamp to the line end.
func (b *Buffer) PointToOffset(p Point) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start := lineStart(b.lineStarts, p.Line)
	end := lineEnd(b.text, b.lineStarts, p.Line)
	off := start + ByteOffset(p.Column)
	if off > end {
		off = end
	}
	if off < start {
		off = start
	}
	return off
}

// RuneAt returns the rune starting at the given byte offset and its size.
// Returns utf8.RuneError with size 0 when out of range.
func (b *Buffer) RuneAt(off ByteOffset) (rune, int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if off < 0 || int(off) >= len(b.text) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(b.text[off:])
}

// TextRange returns the text within the given range, clamped to the buffer.
func (b *Buffer) TextRange(r Range) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	r = r.Clamp(ByteOffset(len(b.text)))
	return b.text[r.Start:r.End]
}

// Insert places text at the given offset.
func (b *Buffer) Insert(off ByteOffset, s string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if off < 0 || int(off) > len(b.text) {
		return ErrOffsetOutOfRange
	}
	if s == "" {
		return nil
	}
	s = normalizeLineEndings(s)
	b.text = b.text[:off] + s + b.text[off:]
	b.reindex()
	b.revisionID = NewRevisionID()
	return nil
}

// Delete removes the text within the range and returns it.
func (b *Buffer) Delete(r Range) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if r.End < r.Start {
		return "", ErrRangeInvalid
	}
	r = r.Clamp(ByteOffset(len(b.text)))
	if r.IsEmpty() {
		return "", nil
	}
	removed := b.text[r.Start:r.End]
	b.text = b.text[:r.Start] + b.text[r.End:]
	b.reindex()
	b.revisionID = NewRevisionID()
	return removed, nil
}

// Replace substitutes the range with new text and returns the old text.
func (b *Buffer) Replace(r Range, s string) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if r.End < r.Start {
		return "", ErrRangeInvalid
	}
	r = r.Clamp(ByteOffset(len(b.text)))
	old := b.text[r.Start:r.End]
	b.text = b.text[:r.Start] + normalizeLineEndings(s) + b.text[r.End:]
	b.reindex()
	b.revisionID = NewRevisionID()
	return old, nil
}

// Snapshot returns an immutable view of the current buffer state.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	starts := make([]ByteOffset, len(b.lineStarts))
	copy(starts, b.lineStarts)
	return &Snapshot{
		text:       b.text,
		lineStarts: starts,
		revisionID: b.revisionID,
	}
}

// Shared line table helpers. The text/lineStarts pair is the same shape in
// Buffer and Snapshot.

func clampOffset(off, max ByteOffset) ByteOffset {
	if off < 0 {
		return 0
	}
	if off > max {
		return max
	}
	return off
}

func lineStart(starts []ByteOffset, line int) ByteOffset {
	if line < 0 {
		line = 0
	}
	if line >= len(starts) {
		line = len(starts) - 1
	}
	return starts[line]
}

func lineEnd(text string, starts []ByteOffset, line int) ByteOffset {
	if line < 0 {
		line = 0
	}
	if line >= len(starts) {
		line = len(starts) - 1
	}
	if line == len(starts)-1 {
		return ByteOffset(len(text))
	}
	// Last byte before the next line start is the newline.
	return starts[line+1] - 1
}

// lineOf returns the line containing the offset via binary search.
func lineOf(starts []ByteOffset, off ByteOffset) int {
	lo, hi := 0, len(starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if starts[mid] <= off {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}
