package httpclient

import (
	"encoding/json"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"github.com/ophelos/ophelos-go/models"
)

// linkPattern matches one `<url>; rel="relation"` element of a Link header.
var linkPattern = regexp.MustCompile(`<([^>]+)>;\s*rel="([^"]+)"`)

// listProbe is the minimal shape needed to recognise a list response body.
type listProbe struct {
	Object string          `json:"object"`
	Data   json.RawMessage `json:"data"`
}

// isListResponse reports whether the body is a list envelope that should
// carry pagination state.
func isListResponse(body []byte) bool {
	var probe listProbe
	if err := json.Unmarshal(body, &probe); err != nil {
		return false
	}
	return probe.Object == "list" && probe.Data != nil
}

// extractPageInfo derives pagination state from the Link and X-Total-Count
// response headers.
func extractPageInfo(header http.Header) *models.PageInfo {
	info := &models.PageInfo{}

	for _, match := range linkPattern.FindAllStringSubmatch(header.Get("Link"), -1) {
		cursor := parsePageCursor(match[1])
		switch match[2] {
		case "next":
			info.Next = cursor
		case "prev":
			info.Prev = cursor
		case "first":
			info.First = cursor
		}
	}

	info.HasMore = info.Next != nil

	if raw := header.Get("X-Total-Count"); raw != "" {
		if count, err := strconv.Atoi(raw); err == nil {
			info.TotalCount = &count
		}
	}

	return info
}

// parsePageCursor pulls the after/before/limit cursor parameters out of a
// pagination URL.
func parsePageCursor(rawURL string) *models.PageCursor {
	cursor := &models.PageCursor{URL: rawURL}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return cursor
	}

	query := parsed.Query()
	cursor.After = query.Get("after")
	cursor.Before = query.Get("before")
	if raw := query.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil {
			cursor.Limit = limit
		}
	}

	return cursor
}
