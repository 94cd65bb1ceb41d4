package httpserver

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clark-Hu/movie-catalog/internal/pagination"
)

func TestParseListQuery(t *testing.T) {
	values, _ := url.ParseQuery("page=3&per_page=20&lang=en")

	q, issues := parseListQuery(values)
	require.Empty(t, issues)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 20, q.PerPage)
}

func TestParseListQuery_Defaults(t *testing.T) {
	q, issues := parseListQuery(url.Values{})
	require.Empty(t, issues)
	assert.Equal(t, pagination.DefaultPage, q.Page)
	assert.Equal(t, pagination.DefaultPerPage, q.PerPage)
}

func TestParseListQuery_MultipleIssues(t *testing.T) {
	values, _ := url.ParseQuery("page=0&per_page=50")

	_, issues := parseListQuery(values)
	require.Len(t, issues, 2)
	assert.Equal(t, []string{"query", "page"}, issues[0].Loc)
	assert.Equal(t, "0", issues[0].Input)
	assert.Equal(t, "Input should be greater than or equal to 1", issues[0].Msg)
	assert.Equal(t, []string{"query", "per_page"}, issues[1].Loc)
	assert.Equal(t, "Input should be less than or equal to 20", issues[1].Msg)
}

func TestParseListQuery_MaxPerPageMatchesPagination(t *testing.T) {
	values := url.Values{"per_page": {"20"}}
	_, issues := parseListQuery(values)
	assert.Empty(t, issues)

	values.Set("per_page", "21")
	_, issues = parseListQuery(values)
	assert.NotEmpty(t, issues)
	assert.Equal(t, 20, pagination.MaxPerPage)
}

func TestParseMovieID(t *testing.T) {
	id, issues := parseMovieID("42")
	require.Empty(t, issues)
	assert.EqualValues(t, 42, id)

	_, issues = parseMovieID("4.2")
	require.Len(t, issues, 1)
	assert.Equal(t, "int_parsing", issues[0].Type)
}
