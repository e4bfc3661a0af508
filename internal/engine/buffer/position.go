package buffer

import "sync/atomic"

// ByteOffset is a byte position within the buffer text.
type ByteOffset int

// Point is a line/column position. Lines and columns are 0-indexed;
// columns count bytes from the line start.
type Point struct {
	Line   int
	Column int
}

// Before returns true if p is before other in document order.
func (p Point) Before(other Point) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// RevisionID uniquely identifies a buffer revision. Every successful edit
// produces a new revision.
type RevisionID uint64

var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}
