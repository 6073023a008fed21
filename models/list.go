package models

// Sort orders accepted by list endpoints.
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Default list paging.
const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// ListParams are the paging, search and filter knobs shared by every listing.
type ListParams struct {
	Limit     int
	Offset    int
	Search    string
	IsDone    *bool
	Sort      string
	Order     string
	ProjectID *int64
	FieldID   *int64
}

// Page is one window of a listing together with the total count of
// matching rows.
type Page[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// NewPage builds a page and guarantees a non-nil Items slice so the JSON
// encoding is always an array.
func NewPage[T any](items []T, total, limit, offset int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Total: total, Limit: limit, Offset: offset}
}

// HasMore reports whether rows remain after this page.
func (p Page[T]) HasMore() bool {
	return p.Offset+len(p.Items) < p.Total
}
