package pagination

const (
	// DefaultPageSize is the standard page size when one is not provided.
	DefaultPageSize = 10
	// MaxPageSize caps how many rows a single page can hold.
	MaxPageSize = 100
)

// Page identifies a 1-indexed page of a fully-fetched result set.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps the page number and size to valid values.
func Normalize(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

// Bounds returns the half-open [lo, hi) slice range for a set of total items,
// clipped so it never exceeds the set.
func (p Page) Bounds(total int) (int, int) {
	lo := (p.Number - 1) * p.Size
	if lo > total {
		lo = total
	}
	hi := lo + p.Size
	if hi > total {
		hi = total
	}
	return lo, hi
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool {
	return p.Number > 1
}

// HasNext reports whether a next page exists for the given total.
func (p Page) HasNext(total int) bool {
	return p.Number < TotalPages(total, p.Size)
}

// TotalPages returns ceil(total/size), at least 1.
func TotalPages(total, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := (total + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// Slice returns the page's window of items.
func Slice[T any](items []T, p Page) []T {
	lo, hi := p.Bounds(len(items))
	return items[lo:hi]
}

// Result is the wire shape shared by every paginated list endpoint.
type Result[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewResult wraps one page of items with its paging metadata. Items must
// already be sliced to the page window.
func NewResult[T any](items []T, total int, p Page) Result[T] {
	if items == nil {
		items = []T{}
	}
	return Result[T]{
		Items:      items,
		Total:      total,
		Page:       p.Number,
		PageSize:   p.Size,
		TotalPages: TotalPages(total, p.Size),
	}
}
