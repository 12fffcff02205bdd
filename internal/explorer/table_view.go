package explorer

import (
	"mina_explorer/internal/domain/paging"

	"github.com/rs/zerolog/log"
)

// TableView holds the latest record set of one explorer table together with
// the page the user is looking at.
type TableView[T any] struct {
	name       string
	records    []T
	controller *paging.Controller[T]
}

// NewTableView creates an empty table view
func NewTableView[T any](name string, pageSize int) (*TableView[T], error) {
	controller, err := paging.NewController[T](pageSize)
	if err != nil {
		return nil, err
	}
	return &TableView[T]{
		name:       name,
		controller: controller,
	}, nil
}

// SetRecords replaces the record set after a fetch cycle completes.
// The current page is kept unless the new set no longer reaches it.
func (v *TableView[T]) SetRecords(records []T) {
	v.records = records
	v.controller.SetTotalRecords(len(records))

	log.Debug().
		Str("table", v.name).
		Int("records", len(records)).
		Int("page", v.controller.CurrentPage()).
		Int("pages", v.controller.PageCount()).
		Msg("Table records updated")
}

// Next moves to the next page if there is one
func (v *TableView[T]) Next() {
	v.controller.Next()
}

// Prev moves to the previous page if there is one
func (v *TableView[T]) Prev() {
	v.controller.Prev()
}

// SetPage jumps to a 1-based page, clamped into range
func (v *TableView[T]) SetPage(page int) {
	v.controller.SetPage(page)
}

// Page returns the visible window and its metadata
func (v *TableView[T]) Page() paging.Page[T] {
	return v.controller.Page(v.records)
}

// Name returns the table name
func (v *TableView[T]) Name() string {
	return v.name
}

// Len returns the size of the full record set
func (v *TableView[T]) Len() int {
	return len(v.records)
}
