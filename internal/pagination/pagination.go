// Package pagination implements offset-based page arithmetic and the
// previous/next navigation links returned by list endpoints.
package pagination

import (
	"errors"
	"net/url"
	"strconv"
)

const (
	// DefaultPage is used when the client omits the page parameter.
	DefaultPage = 1
	// DefaultPerPage is used when the client omits the per_page parameter.
	DefaultPerPage = 10
	// MaxPerPage bounds the page size a client may request.
	MaxPerPage = 20

	pageParam    = "page"
	perPageParam = "per_page"
)

// ErrPageOutOfRange signals that the collection is empty or the requested
// page lies beyond the last one.
var ErrPageOutOfRange = errors.New("pagination: page out of range")

// Window is a resolved, valid slice of the collection.
type Window struct {
	Page       int
	PerPage    int
	TotalPages int
	TotalItems int
}

// Offset returns the number of items to skip before the window starts.
func (w Window) Offset() int {
	return (w.Page - 1) * w.PerPage
}

// Limit returns the maximum number of items in the window.
func (w Window) Limit() int {
	return w.PerPage
}

// HasPrev reports whether a page exists before this one.
func (w Window) HasPrev() bool {
	return w.Page > 1
}

// HasNext reports whether a page exists after this one.
func (w Window) HasNext() bool {
	return w.Page < w.TotalPages
}

// TotalPages returns ceil(totalItems / perPage), or 0 for an empty collection.
func TotalPages(totalItems, perPage int) int {
	if totalItems <= 0 || perPage <= 0 {
		return 0
	}
	return (totalItems + perPage - 1) / perPage
}

// Resolve validates the requested page against the collection size.
// Callers are expected to have rejected page < 1 and per_page outside
// [1, MaxPerPage] already.
func Resolve(totalItems, page, perPage int) (Window, error) {
	totalPages := TotalPages(totalItems, perPage)
	if totalItems == 0 || page > totalPages {
		return Window{}, ErrPageOutOfRange
	}
	return Window{
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}, nil
}

// Links derives the previous and next page URLs from base. Query parameters
// other than page and per_page are carried over untouched. A nil result means
// there is no page in that direction.
func Links(base *url.URL, w Window) (prev, next *string) {
	if w.HasPrev() {
		link := withPage(base, w.Page-1, w.PerPage)
		prev = &link
	}
	if w.HasNext() {
		link := withPage(base, w.Page+1, w.PerPage)
		next = &link
	}
	return prev, next
}

func withPage(base *url.URL, page, perPage int) string {
	u := *base
	q := u.Query()
	q.Set(pageParam, strconv.Itoa(page))
	q.Set(perPageParam, strconv.Itoa(perPage))
	u.RawQuery = q.Encode()
	return u.String()
}
