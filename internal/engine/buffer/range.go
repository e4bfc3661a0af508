package buffer

// Range is a half-open byte range [Start, End) within the buffer.
type Range struct {
	Start ByteOffset
	End   ByteOffset
}

// NewRange creates a range, swapping the endpoints if given in reverse.
func NewRange(a, b ByteOffset) Range {
	if b < a {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// EmptyRange returns a zero-length range at the given offset.
func EmptyRange(at ByteOffset) Range {
	return Range{Start: at, End: at}
}

// IsEmpty returns true for a zero-length range.
func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

// Len returns the number of bytes covered.
func (r Range) Len() ByteOffset {
	if r.IsEmpty() {
		return 0
	}
	return r.End - r.Start
}

// Contains returns true if the offset lies inside the range.
func (r Range) Contains(off ByteOffset) bool {
	return off >= r.Start && off < r.End
}

// Clamp limits the range to [0, max]. An inverted result collapses to an
// empty range at its start.
func (r Range) Clamp(max ByteOffset) Range {
	if r.Start < 0 {
		r.Start = 0
	}
	if r.End < 0 {
		r.End = 0
	}
	if r.Start > max {
		r.Start = max
	}
	if r.End > max {
		r.End = max
	}
	if r.End < r.Start {
		r.End = r.Start
	}
	return r
}
