package paging

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned when a caller passes a non-positive page size
// or a negative record count.
var ErrInvalidArgument = errors.New("invalid argument")

// Range is a half-open index range [Start, End) into a record set.
type Range struct {
	Start int
	End   int
}

// Len returns the number of records covered by the range
func (r Range) Len() int {
	return r.End - r.Start
}

// ComputeRanges splits totalRecords into consecutive page ranges of pageSize.
// An empty record set yields a single {0, 0} range so page 1 always exists.
// Pure function: No I/O, deterministic output from input
func ComputeRanges(totalRecords, pageSize int) ([]Range, error) {
	if err := validate(totalRecords, pageSize); err != nil {
		return nil, err
	}

	if totalRecords == 0 {
		return []Range{{Start: 0, End: 0}}, nil
	}

	ranges := make([]Range, 0, pageCount(totalRecords, pageSize))
	for start := 0; start < totalRecords; start += pageSize {
		end := start + pageSize
		if end > totalRecords {
			end = totalRecords
		}
		ranges = append(ranges, Range{Start: start, End: end})
	}

	return ranges, nil
}

// PageCount returns the number of pages needed for totalRecords, never less than 1.
func PageCount(totalRecords, pageSize int) (int, error) {
	if err := validate(totalRecords, pageSize); err != nil {
		return 0, err
	}
	return pageCount(totalRecords, pageSize), nil
}

func pageCount(totalRecords, pageSize int) int {
	if totalRecords == 0 {
		return 1
	}
	return (totalRecords + pageSize - 1) / pageSize
}

func validate(totalRecords, pageSize int) error {
	if pageSize <= 0 {
		return fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidArgument, pageSize)
	}
	if totalRecords < 0 {
		return fmt.Errorf("%w: total records must not be negative, got %d", ErrInvalidArgument, totalRecords)
	}
	return nil
}
