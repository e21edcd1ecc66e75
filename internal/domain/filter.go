package domain

// DefaultPageSize is the page size applied when a caller does not specify
// one. A page size of zero is not an error: it disables paging entirely.
const DefaultPageSize = 5

// Filter describes a paged search: an optional free-text term, an optional
// sort column, a 1-indexed page, the page size, and relation names to load
// eagerly. The zero value means "first page, unpaged, no search".
type Filter struct {
	SearchTerm     string   `json:"searchTerm,omitempty"`
	SortName       string   `json:"sortName,omitempty"`
	SortDescending bool     `json:"sortDescending,omitempty"`
	Page           int      `json:"page,omitempty"`
	PageSize       int      `json:"pageSize,omitempty"`
	Includes       []string `json:"includes,omitempty"`
}

// NewFilter returns a filter with the conventional defaults: first page,
// DefaultPageSize items per page.
func NewFilter() *Filter {
	return &Filter{Page: 1, PageSize: DefaultPageSize}
}

// All returns a filter that requests every matching record unpaged.
func All() *Filter {
	return &Filter{Page: 1}
}

// WithIncludes returns an unpaged filter that eagerly loads the named
// relations.
func WithIncludes(includes ...string) *Filter {
	f := All()
	f.Includes = includes
	return f
}

// NormalPage returns the page clamped to 1-indexed range.
func (f *Filter) NormalPage() int {
	if f == nil || f.Page < 1 {
		return 1
	}
	return f.Page
}

// PagedQuery is the collection-read envelope: the items on the requested
// page plus the total count of matches with paging disabled.
type PagedQuery[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
}

// NewPagedQuery builds a populated PagedQuery. A nil item slice is
// normalized to empty so the envelope always serializes as a JSON array.
func NewPagedQuery[T any](items []T, totalCount int) *PagedQuery[T] {
	if items == nil {
		items = []T{}
	}
	return &PagedQuery[T]{Items: items, TotalCount: totalCount}
}
