package models

// PageCursor describes one pagination relation extracted from a list
// response's Link header.
type PageCursor struct {
	// URL is the full URL of the related page.
	URL string

	// After and Before are the cursor parameters carried by the URL.
	After  string
	Before string

	// Limit is the page size carried by the URL, 0 when absent.
	Limit int
}

// PageInfo is the pagination state of a list response, derived from the
// Link and X-Total-Count headers.
type PageInfo struct {
	// HasMore reports whether a next page exists.
	HasMore bool

	// TotalCount is the total number of matching records, when the API
	// reported one.
	TotalCount *int

	Next  *PageCursor
	Prev  *PageCursor
	First *PageCursor
}

// PaginatedList is one page of a list endpoint's results.
type PaginatedList[T any] struct {
	Object  string `json:"object"`
	Data    []T    `json:"data"`
	HasMore bool   `json:"has_more"`

	// TotalCount mirrors PageInfo.TotalCount for convenience.
	TotalCount *int `json:"total_count,omitempty"`

	// Pagination carries the cursors parsed from response headers.
	// It is populated by the client, not by the JSON body.
	Pagination *PageInfo `json:"-"`
}
