package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clark-Hu/movie-catalog/internal/domain"
)

func TestDecodeSeed(t *testing.T) {
	payload := `[
		{"name":" Inception ","date":"2010-07-16","score":88,"genre":"Action","overview":"Dreams.","crew":"Leonardo DiCaprio","orig_title":"Inception","status":"Released","orig_lang":"English","budget":160000000,"revenue":836836967.5,"country":"US"},
		{"name":"Amélie","date":"2001-04-25","score":79,"genre":"Comedy","overview":"Paris.","crew":"Audrey Tautou","orig_title":"Le Fabuleux Destin d'Amélie Poulain","status":"Released","orig_lang":"French","budget":10000000,"revenue":174000000,"country":"FR"}
	]`

	movies, err := decodeSeed(strings.NewReader(payload))
	require.NoError(t, err)
	require.Len(t, movies, 2)

	assert.Equal(t, "Inception", movies[0].Name)
	assert.Equal(t, "2010-07-16", movies[0].Date.Format("2006-01-02"))
	assert.InDelta(t, 836836967.5, movies[0].Revenue, 0.001)
	assert.Equal(t, "French", movies[1].OrigLang)
}

func TestDecodeSeedErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr string
	}{
		{"malformed json", `{"name":`, "parse seed data"},
		{"missing name", `[{"name":"","date":"2010-01-01"}]`, "name is required"},
		{"bad date", `[{"name":"X","date":"16/07/2010"}]`, "YYYY-MM-DD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeSeed(strings.NewReader(tt.payload))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestChunkMovies(t *testing.T) {
	movies := make([]domain.Movie, 7)

	chunks := chunkMovies(movies, 3)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 3)
	assert.Len(t, chunks[2], 1)

	assert.Len(t, chunkMovies(movies, 0), 1)
	assert.Empty(t, chunkMovies(nil, 10))
}
