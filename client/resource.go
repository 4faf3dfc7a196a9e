package client

import (
	"sync"

	"github.com/stocktrak/stocktrak-backend/pkg/pagination"
)

// ListState holds a fetched list plus local paging. Refreshes are
// guarded by a generation counter: a slow response from a superseded
// refresh cannot overwrite fresher state.
type ListState[T any] struct {
	mu         sync.Mutex
	generation uint64
	items      []T
	page       pagination.Page
}

// NewListState builds an empty list with the default page size.
func NewListState[T any]() *ListState[T] {
	return &ListState[T]{page: pagination.Normalize(1, pagination.DefaultPageSize)}
}

// Begin marks the start of a refresh and returns its generation token.
// Any refresh started earlier is superseded from this point on.
func (s *ListState[T]) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.generation
}

// Complete installs the refresh result if the token is still current.
// It reports whether the state was updated.
func (s *ListState[T]) Complete(token uint64, items []T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.generation {
		return false
	}
	s.items = items
	s.page = pagination.Normalize(1, s.page.Size)
	return true
}

// Items returns all fetched items.
func (s *ListState[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// PageItems returns the current page's slice of items.
func (s *ListState[T]) PageItems() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	window := pagination.Slice(s.items, s.page)
	out := make([]T, len(window))
	copy(out, window)
	return out
}

// SetPage moves to the given 1-indexed page, clamped to valid values.
func (s *ListState[T]) SetPage(number int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = pagination.Normalize(number, s.page.Size)
}

// SetPageSize changes the local page size and resets to page one.
func (s *ListState[T]) SetPageSize(size int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = pagination.Normalize(1, size)
}

// Page returns the current page number.
func (s *ListState[T]) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page.Number
}

// HasPrev reports whether an earlier page exists.
func (s *ListState[T]) HasPrev() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page.HasPrev()
}

// HasNext reports whether a later page exists.
func (s *ListState[T]) HasNext() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.page.HasNext(len(s.items))
}
