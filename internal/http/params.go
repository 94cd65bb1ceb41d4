package httpserver

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Clark-Hu/movie-catalog/internal/pagination"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// listQuery holds the parsed query string of GET /movies/.
type listQuery struct {
	Page    int `query:"page" validate:"gte=1"`
	PerPage int `query:"per_page" validate:"gte=1,lte=20"`
}

// validationIssue describes one rejected input, shaped like the detail
// entries clients of this API already parse.
type validationIssue struct {
	Type  string   `json:"type"`
	Loc   []string `json:"loc"`
	Msg   string   `json:"msg"`
	Input string   `json:"input"`
}

func parseListQuery(values url.Values) (listQuery, []validationIssue) {
	q := listQuery{
		Page:    pagination.DefaultPage,
		PerPage: pagination.DefaultPerPage,
	}

	var issues []validationIssue
	raw := map[string]string{}
	for _, field := range []struct {
		name string
		dst  *int
	}{
		{"page", &q.Page},
		{"per_page", &q.PerPage},
	} {
		if !values.Has(field.name) {
			continue
		}
		val := values.Get(field.name)
		raw[field.name] = val
		parsed, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			issues = append(issues, intParsingIssue("query", field.name, val))
			continue
		}
		*field.dst = parsed
	}
	if len(issues) > 0 {
		return q, issues
	}

	if err := validate.Struct(q); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return q, []validationIssue{{Type: "value_error", Loc: []string{"query"}, Msg: err.Error()}}
		}
		for _, fe := range fieldErrs {
			input, ok := raw[fe.Field()]
			if !ok {
				input = fmt.Sprint(fe.Value())
			}
			issues = append(issues, rangeIssue("query", fe, input))
		}
	}
	return q, issues
}

func parseMovieID(raw string) (int64, []validationIssue) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, []validationIssue{intParsingIssue("path", "movie_id", raw)}
	}
	return id, nil
}

func intParsingIssue(location, name, input string) validationIssue {
	return validationIssue{
		Type:  "int_parsing",
		Loc:   []string{location, name},
		Msg:   "Input should be a valid integer, unable to parse string as an integer",
		Input: input,
	}
}

func rangeIssue(location string, fe validator.FieldError, input string) validationIssue {
	issue := validationIssue{
		Loc:   []string{location, fe.Field()},
		Input: input,
	}
	switch fe.Tag() {
	case "gte":
		issue.Type = "greater_than_equal"
		issue.Msg = fmt.Sprintf("Input should be greater than or equal to %s", fe.Param())
	case "lte":
		issue.Type = "less_than_equal"
		issue.Msg = fmt.Sprintf("Input should be less than or equal to %s", fe.Param())
	default:
		issue.Type = "value_error"
		issue.Msg = fmt.Sprintf("Input failed %s validation", fe.Tag())
	}
	return issue
}
