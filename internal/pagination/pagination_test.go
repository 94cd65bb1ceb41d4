package pagination

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	for perPage := 1; perPage <= MaxPerPage; perPage++ {
		for total := 0; total <= 200; total++ {
			want := 0
			if total > 0 {
				want = total / perPage
				if total%perPage != 0 {
					want++
				}
			}
			require.Equalf(t, want, TotalPages(total, perPage), "TotalPages(%d, %d)", total, perPage)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		page       int
		perPage    int
		wantPages  int
		wantOffset int
		wantErr    error
	}{
		{"first page", 25, 1, 10, 3, 0, nil},
		{"last partial page", 25, 3, 10, 3, 20, nil},
		{"exact fit", 20, 2, 10, 2, 10, nil},
		{"single item", 1, 1, 20, 1, 0, nil},
		{"empty collection", 0, 1, 10, 0, 0, ErrPageOutOfRange},
		{"empty collection later page", 0, 5, 1, 0, 0, ErrPageOutOfRange},
		{"beyond last page", 25, 100, 10, 0, 0, ErrPageOutOfRange},
		{"one past last page", 25, 4, 10, 0, 0, ErrPageOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := Resolve(tt.total, tt.page, tt.perPage)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPages, w.TotalPages)
			assert.Equal(t, tt.total, w.TotalItems)
			assert.Equal(t, tt.wantOffset, w.Offset())
			assert.Equal(t, tt.perPage, w.Limit())
		})
	}
}

func TestResolveItemCount(t *testing.T) {
	for perPage := 1; perPage <= MaxPerPage; perPage++ {
		for total := 1; total <= 60; total++ {
			pages := TotalPages(total, perPage)
			for page := 1; page <= pages; page++ {
				w, err := Resolve(total, page, perPage)
				require.NoError(t, err)
				items := min(w.Limit(), total-w.Offset())
				require.Positive(t, items)
				require.LessOrEqual(t, items, perPage)
				require.Equal(t, page > 1, w.HasPrev())
				require.Equal(t, page < pages, w.HasNext())
			}
		}
	}
}

func TestLinks(t *testing.T) {
	base, err := url.Parse("http://testserver/movies/?page=2&per_page=10")
	require.NoError(t, err)

	t.Run("first page", func(t *testing.T) {
		prev, next := Links(base, Window{Page: 1, PerPage: 10, TotalPages: 3, TotalItems: 25})
		assert.Nil(t, prev)
		require.NotNil(t, next)
		assert.Equal(t, "http://testserver/movies/?page=2&per_page=10", *next)
	})

	t.Run("middle page", func(t *testing.T) {
		prev, next := Links(base, Window{Page: 2, PerPage: 10, TotalPages: 3, TotalItems: 25})
		require.NotNil(t, prev)
		require.NotNil(t, next)
		assert.Equal(t, "http://testserver/movies/?page=1&per_page=10", *prev)
		assert.Equal(t, "http://testserver/movies/?page=3&per_page=10", *next)
	})

	t.Run("last page", func(t *testing.T) {
		prev, next := Links(base, Window{Page: 3, PerPage: 10, TotalPages: 3, TotalItems: 25})
		require.NotNil(t, prev)
		assert.Equal(t, "http://testserver/movies/?page=2&per_page=10", *prev)
		assert.Nil(t, next)
	})

	t.Run("single page", func(t *testing.T) {
		prev, next := Links(base, Window{Page: 1, PerPage: 10, TotalPages: 1, TotalItems: 4})
		assert.Nil(t, prev)
		assert.Nil(t, next)
	})
}

func TestLinksPreservesOtherParams(t *testing.T) {
	base, err := url.Parse("https://api.example.com/movies/?lang=en&page=2&utm=x")
	require.NoError(t, err)

	prev, next := Links(base, Window{Page: 2, PerPage: 5, TotalPages: 4, TotalItems: 20})
	require.NotNil(t, prev)
	require.NotNil(t, next)

	prevURL, err := url.Parse(*prev)
	require.NoError(t, err)
	assert.Equal(t, "https", prevURL.Scheme)
	assert.Equal(t, "api.example.com", prevURL.Host)
	assert.Equal(t, "/movies/", prevURL.Path)
	q := prevURL.Query()
	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "5", q.Get("per_page"))
	assert.Equal(t, "en", q.Get("lang"))
	assert.Equal(t, "x", q.Get("utm"))

	nextURL, err := url.Parse(*next)
	require.NoError(t, err)
	assert.Equal(t, "3", nextURL.Query().Get("page"))
	assert.Equal(t, "en", nextURL.Query().Get("lang"))

	// base must not be mutated.
	assert.Equal(t, "lang=en&page=2&utm=x", base.RawQuery)
}
