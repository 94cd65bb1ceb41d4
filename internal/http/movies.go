package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Clark-Hu/movie-catalog/internal/domain"
	"github.com/Clark-Hu/movie-catalog/internal/pagination"
	"github.com/Clark-Hu/movie-catalog/internal/repository"
)

const (
	msgNoMovies       = "No movies found."
	msgMovieNotFound  = "Movie with the given ID was not found."
	msgInternalError  = "Internal server error."
	releaseDateLayout = "2006-01-02"
)

type errorResponse struct {
	Detail interface{} `json:"detail"`
}

type movieListResponse struct {
	Movies     []movieResponse `json:"movies"`
	PrevPage   *string         `json:"prev_page"`
	NextPage   *string         `json:"next_page"`
	TotalPages int             `json:"total_pages"`
	TotalItems int             `json:"total_items"`
}

type movieResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Date      string  `json:"date"`
	Score     float64 `json:"score"`
	Genre     string  `json:"genre"`
	Overview  string  `json:"overview"`
	Crew      string  `json:"crew"`
	OrigTitle string  `json:"orig_title"`
	Status    string  `json:"status"`
	OrigLang  string  `json:"orig_lang"`
	Budget    float64 `json:"budget"`
	Revenue   float64 `json:"revenue"`
	Country   string  `json:"country"`
}

func (s *Server) handleListMovies(w http.ResponseWriter, r *http.Request) {
	query, issues := parseListQuery(r.URL.Query())
	if len(issues) > 0 {
		s.respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: issues})
		return
	}

	ctx := r.Context()
	total, err := s.movies.Count(ctx)
	if err != nil {
		s.logger.Error("count movies failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	window, err := pagination.Resolve(total, query.Page, query.PerPage)
	if err != nil {
		if errors.Is(err, pagination.ErrPageOutOfRange) {
			s.respondError(w, http.StatusNotFound, msgNoMovies)
			return
		}
		s.logger.Error("resolve page failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	movies, err := s.movies.List(ctx, window.Offset(), window.Limit())
	if err != nil {
		s.logger.Error("list movies failed",
			zap.Int("page", window.Page),
			zap.Int("per_page", window.PerPage),
			zap.Error(err),
		)
		s.respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	items := make([]movieResponse, 0, len(movies))
	for _, movie := range movies {
		items = append(items, toMovieResponse(movie))
	}

	prev, next := pagination.Links(requestURL(r), window)
	s.respondJSON(w, http.StatusOK, movieListResponse{
		Movies:     items,
		PrevPage:   prev,
		NextPage:   next,
		TotalPages: window.TotalPages,
		TotalItems: window.TotalItems,
	})
}

func (s *Server) handleGetMovie(w http.ResponseWriter, r *http.Request) {
	id, issues := parseMovieID(chi.URLParam(r, "movieID"))
	if len(issues) > 0 {
		s.respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: issues})
		return
	}

	movie, err := s.movies.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, msgMovieNotFound)
			return
		}
		s.logger.Error("get movie failed", zap.Int64("movie_id", id), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	s.respondJSON(w, http.StatusOK, toMovieResponse(movie))
}

// requestURL reconstructs the absolute URL the client used, so navigation
// links point back at the same host and scheme.
func requestURL(r *http.Request) *url.URL {
	u := *r.URL
	u.Scheme = "http"
	if r.TLS != nil {
		u.Scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		u.Scheme = proto
	}
	u.Host = r.Host
	u.Fragment = ""
	return &u
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.logger.Warn("failed to encode response", zap.Error(err))
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, detail string) {
	s.respondJSON(w, status, errorResponse{Detail: detail})
}

func toMovieResponse(movie domain.Movie) movieResponse {
	return movieResponse{
		ID:        movie.ID,
		Name:      movie.Name,
		Date:      movie.Date.Format(releaseDateLayout),
		Score:     movie.Score,
		Genre:     movie.Genre,
		Overview:  movie.Overview,
		Crew:      movie.Crew,
		OrigTitle: movie.OrigTitle,
		Status:    movie.Status,
		OrigLang:  movie.OrigLang,
		Budget:    movie.Budget,
		Revenue:   movie.Revenue,
		Country:   movie.Country,
	}
}
