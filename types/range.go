package types

// Range is an inclusive interval [Start, End] of positions on the 64-bit
// hash ring.
//
// A Range never crosses the numeric maximum: a circular span is always
// represented as two disjoint ranges, [left+1, math.MaxUint64] and
// [0, right]. Start <= End holds for every range the library emits.
type Range struct {
	// Start is the first position covered by the range.
	Start uint64 `json:"start"`

	// End is the last position covered by the range.
	End uint64 `json:"end"`
}

// Contains reports whether position falls inside the range.
func (r Range) Contains(position uint64) bool {
	return position >= r.Start && position <= r.End
}

// Intersect returns the overlap of two ranges.
//
// Returns:
//   - Range: The overlapping interval (zero value if none)
//   - bool: false when the ranges are disjoint
func (r Range) Intersect(other Range) (Range, bool) {
	start := max(r.Start, other.Start)
	end := min(r.End, other.End)

	if start > end {
		return Range{}, false
	}

	return Range{Start: start, End: end}, true
}
