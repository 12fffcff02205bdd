// Package aggregate reduces record sets into bounded summaries for charts.
package aggregate

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidArgument is returned for a non-positive top-K
var ErrInvalidArgument = errors.New("invalid argument")

const (
	// DefaultTopK is the number of named slices in a summary chart
	DefaultTopK = 5
	// DefaultOtherLabel keys the bucket holding everything past the top K
	DefaultOtherLabel = "Other"
)

// Number is any numeric value that can be summed
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Entry is one named slice of an aggregate
type Entry[V Number] struct {
	Key   string
	Value V
}

// TopN groups records by keyOf, sums valueOf per group and returns the topK
// largest groups in descending order. Remaining groups are collapsed into a
// single otherLabel entry appended last, so the entries sum to the same total
// as the input. Ties keep first-seen group order. Values are not validated.
//
// Pure function: No I/O, deterministic output from input
func TopN[T any, V Number](
	records []T,
	keyOf func(T) string,
	valueOf func(T) V,
	topK int,
	otherLabel string,
) ([]Entry[V], error) {
	if topK <= 0 {
		return nil, fmt.Errorf("%w: top-K must be positive, got %d", ErrInvalidArgument, topK)
	}

	groups := GroupSum(records, keyOf, valueOf)
	if len(groups) == 0 {
		return []Entry[V]{}, nil
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Value > groups[j].Value
	})

	if len(groups) <= topK {
		return groups, nil
	}

	result := make([]Entry[V], topK, topK+1)
	copy(result, groups[:topK])

	other := Entry[V]{Key: otherLabel}
	for _, g := range groups[topK:] {
		other.Value += g.Value
	}

	return append(result, other), nil
}

// GroupSum sums valueOf per key, returning groups in first-seen order.
// Pure function: No I/O, returns a new slice
func GroupSum[T any, V Number](records []T, keyOf func(T) string, valueOf func(T) V) []Entry[V] {
	index := make(map[string]int)
	var groups []Entry[V]

	for _, record := range records {
		key := keyOf(record)
		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, Entry[V]{Key: key})
		}
		groups[i].Value += valueOf(record)
	}

	return groups
}

// Sum totals the values of a set of entries
func Sum[V Number](entries []Entry[V]) V {
	var total V
	for _, e := range entries {
		total += e.Value
	}
	return total
}
