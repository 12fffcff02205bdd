package paging

// WindowFor returns the records on the zero-based page pageIndex.
// Out-of-range indexes are clamped to the first or last page, so a stale page
// pointer left over from a larger record set still yields the last valid page.
// The result shares its backing array with records.
// Pure function: No I/O, returns a sub-slice without modifying input
func WindowFor[T any](records []T, pageSize, pageIndex int) ([]T, error) {
	r, err := rangeFor(len(records), pageSize, pageIndex)
	if err != nil {
		return nil, err
	}
	return records[r.Start:r.End], nil
}

// rangeFor resolves the clamped range for a zero-based page index
func rangeFor(totalRecords, pageSize, pageIndex int) (Range, error) {
	ranges, err := ComputeRanges(totalRecords, pageSize)
	if err != nil {
		return Range{}, err
	}
	return ranges[clamp(pageIndex, 0, len(ranges)-1)], nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
