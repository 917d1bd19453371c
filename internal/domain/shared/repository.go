package shared

// Filter represents pagination options for list queries.
// Page is zero-based; Size defaults to 20 when unset.
type Filter struct {
	Page int
	Size int
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Page: 0,
		Size: 20,
	}
}

// Normalize clamps a negative page to zero and applies the default size.
// No upper bound is placed on Size on purpose.
func (f Filter) Normalize() Filter {
	if f.Page < 0 {
		f.Page = 0
	}
	if f.Size <= 0 {
		f.Size = 20
	}
	return f
}

// Offset returns the row offset for the filter
func (f Filter) Offset() int {
	return f.Page * f.Size
}

// Paginated represents a paginated result
type Paginated[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// NewPaginated creates a new paginated result
func NewPaginated[T any](content []T, total int64, page, size int) Paginated[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if size > 0 {
		totalPages = int(total) / size
		if int(total)%size > 0 {
			totalPages++
		}
	}
	return Paginated[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
}
