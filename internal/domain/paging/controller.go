package paging

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// State is a snapshot of the controller's pagination state
type State struct {
	CurrentPage  int // 1-based
	PageSize     int
	TotalRecords int
}

// Controller owns the current page of a record table and keeps it within
// [1, PageCount()] as the underlying record count changes.
//
// A Controller is driven by a single event loop and is not safe for
// concurrent mutation.
type Controller[T any] struct {
	currentPage  int
	pageSize     int
	totalRecords int
}

// NewController creates a controller positioned on page 1 of an empty record set
func NewController[T any](pageSize int) (*Controller[T], error) {
	if pageSize <= 0 {
		return nil, fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidArgument, pageSize)
	}
	return &Controller[T]{
		currentPage: 1,
		pageSize:    pageSize,
	}, nil
}

// SetTotalRecords updates the record count and clamps the current page down
// if the record set shrank. Negative counts are treated as zero.
func (c *Controller[T]) SetTotalRecords(n int) {
	if n < 0 {
		n = 0
	}
	c.totalRecords = n

	maxPage := c.PageCount()
	if c.currentPage > maxPage {
		log.Debug().
			Int("previous_page", c.currentPage).
			Int("max_page", maxPage).
			Int("total_records", n).
			Msg("Clamping current page after record count change")
		c.currentPage = maxPage
	}
}

// Next advances one page; it is a no-op on the last page.
func (c *Controller[T]) Next() {
	if c.currentPage < c.PageCount() {
		c.currentPage++
	}
}

// Prev goes back one page; it is a no-op on the first page.
func (c *Controller[T]) Prev() {
	if c.currentPage > 1 {
		c.currentPage--
	}
}

// SetPage jumps to a 1-based page, clamped into the valid page range.
func (c *Controller[T]) SetPage(page int) {
	c.currentPage = clamp(page, 1, c.PageCount())
}

// CurrentPage returns the 1-based current page
func (c *Controller[T]) CurrentPage() int {
	return c.currentPage
}

// PageCount returns the number of pages, at least 1
func (c *Controller[T]) PageCount() int {
	return pageCount(c.totalRecords, c.pageSize)
}

// PageSize returns the configured page size
func (c *Controller[T]) PageSize() int {
	return c.pageSize
}

// HasNext reports whether Next would move
func (c *Controller[T]) HasNext() bool {
	return c.currentPage < c.PageCount()
}

// HasPrev reports whether Prev would move
func (c *Controller[T]) HasPrev() bool {
	return c.currentPage > 1
}

// State returns a copy of the pagination state
func (c *Controller[T]) State() State {
	return State{
		CurrentPage:  c.currentPage,
		PageSize:     c.pageSize,
		TotalRecords: c.totalRecords,
	}
}

// CurrentWindow returns the records visible on the current page.
func (c *Controller[T]) CurrentWindow(records []T) []T {
	// pageSize is validated at construction, so WindowFor cannot fail here
	window, _ := WindowFor(records, c.pageSize, c.currentPage-1)
	return window
}

// Page returns the current window together with the metadata a table
// renderer needs for its page controls. The metadata is derived from records,
// so it stays consistent even before SetTotalRecords catches up.
func (c *Controller[T]) Page(records []T) Page[T] {
	ranges, _ := ComputeRanges(len(records), c.pageSize)
	index := clamp(c.currentPage-1, 0, len(ranges)-1)
	r := ranges[index]

	return Page[T]{
		Records:      records[r.Start:r.End],
		Number:       index + 1,
		TotalPages:   len(ranges),
		TotalRecords: len(records),
		Start:        r.Start,
		End:          r.End,
		HasNext:      index < len(ranges)-1,
		HasPrev:      index > 0,
	}
}
