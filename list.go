package ophelos

import (
	"context"
	"encoding/json"
	"iter"
	"net/url"

	"github.com/google/go-querystring/query"

	"github.com/ophelos/ophelos-go/httpclient"
	"github.com/ophelos/ophelos-go/models"
)

// defaultPageSize is used by Iterate helpers when no limit is given.
const defaultPageSize = 50

// ListOptions are the query parameters accepted by list endpoints.
type ListOptions struct {
	// Limit caps the number of results per page.
	Limit int `url:"limit,omitempty"`

	// After and Before are pagination cursors (resource IDs).
	After  string `url:"after,omitempty"`
	Before string `url:"before,omitempty"`

	// Expand names related objects to return inline instead of as IDs.
	Expand []string `url:"expand[],omitempty"`
}

// SearchOptions are the query parameters accepted by search endpoints, in
// addition to the query string itself.
type SearchOptions struct {
	Limit  int      `url:"limit,omitempty"`
	Expand []string `url:"expand[],omitempty"`
}

func listValues(opts *ListOptions) (url.Values, error) {
	return query.Values(opts)
}

func searchValues(q string, opts *SearchOptions) (url.Values, error) {
	values, err := query.Values(opts)
	if err != nil {
		return nil, err
	}
	values.Set("query", q)
	return values, nil
}

func expandValues(expand []string) url.Values {
	values := url.Values{}
	for _, field := range expand {
		values.Add("expand[]", field)
	}
	return values
}

// parseResource decodes a single-object response body.
func parseResource[T any](resp *httpclient.Response) (*T, error) {
	var resource T
	if err := json.Unmarshal(resp.Body, &resource); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &resource, nil
}

// parseList decodes a list response body and merges in the pagination state
// the HTTP layer extracted from response headers.
func parseList[T any](resp *httpclient.Response) (*models.PaginatedList[T], error) {
	var list models.PaginatedList[T]
	if err := json.Unmarshal(resp.Body, &list); err != nil {
		return nil, &ParseError{Err: err}
	}

	if resp.Pagination != nil {
		list.Pagination = resp.Pagination
		list.HasMore = resp.Pagination.HasMore
		if resp.Pagination.TotalCount != nil {
			list.TotalCount = resp.Pagination.TotalCount
		}
	}

	return &list, nil
}

// pageFetcher fetches one page of results.
type pageFetcher[T any] func(ctx context.Context, opts *ListOptions) (*models.PaginatedList[T], error)

// iteratePages yields individual items across pages, following the after
// cursor until the API reports no more results or the consumer stops.
func iteratePages[T any](ctx context.Context, opts *ListOptions, id func(*T) string, fetch pageFetcher[T]) iter.Seq2[*T, error] {
	page := ListOptions{Limit: defaultPageSize}
	if opts != nil {
		page = *opts
		if page.Limit <= 0 {
			page.Limit = defaultPageSize
		}
	}

	return func(yield func(*T, error) bool) {
		for {
			result, err := fetch(ctx, &page)
			if err != nil {
				yield(nil, err)
				return
			}

			for i := range result.Data {
				if !yield(&result.Data[i], nil) {
					return
				}
			}

			if !result.HasMore || len(result.Data) == 0 {
				return
			}

			last := id(&result.Data[len(result.Data)-1])
			if last == "" {
				return
			}
			page.After = last
			page.Before = ""
		}
	}
}
