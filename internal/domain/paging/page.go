package paging

import "fmt"

// Page is one rendered page window plus the metadata for page controls
type Page[T any] struct {
	Records      []T
	Number       int // 1-based
	TotalPages   int
	TotalRecords int
	Start        int // index of the first record on the page
	End          int // exclusive
	HasNext      bool
	HasPrev      bool
}

// Summary renders the record counter shown under a table,
// e.g. "Showing 11 to 20 of 23 records".
func (p Page[T]) Summary() string {
	if p.TotalRecords == 0 {
		return "Showing 0 to 0 of 0 records"
	}
	return fmt.Sprintf("Showing %d to %d of %d records", p.Start+1, p.End, p.TotalRecords)
}
