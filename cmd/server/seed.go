package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Clark-Hu/movie-catalog/internal/domain"
	"github.com/Clark-Hu/movie-catalog/internal/repository"
)

// seedEntry is one record of the seed data file.
type seedEntry struct {
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

func newSeedCommand() *cobra.Command {
	var (
		dataPath  string
		batchSize int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load movies from a JSON file into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := os.Open(dataPath)
			if err != nil {
				return fmt.Errorf("open seed data: %w", err)
			}
			defer file.Close()

			movies, err := decodeSeed(file)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			rt, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer rt.Close()

			repo := repository.New(rt.store)
			var inserted int64
			for _, chunk := range chunkMovies(movies, batchSize) {
				n, err := repo.Movies.Upsert(ctx, chunk)
				inserted += n
				if err != nil {
					return err
				}
			}
			rt.logger.Info("seed complete",
				zap.String("file", dataPath),
				zap.Int("records", len(movies)),
				zap.Int64("inserted", inserted),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&dataPath, "data", "movies.json", "path to the seed data file")
	cmd.Flags().IntVar(&batchSize, "batch-size", 500, "rows sent per database batch")
	return cmd
}

func decodeSeed(r io.Reader) ([]domain.Movie, error) {
	var entries []seedEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	movies := make([]domain.Movie, 0, len(entries))
	for i, e := range entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("seed record %d: name is required", i)
		}
		date, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			return nil, fmt.Errorf("seed record %d (%s): date must follow YYYY-MM-DD format", i, e.Name)
		}
		movies = append(movies, domain.Movie{
			Name:      strings.TrimSpace(e.Name),
			Date:      date,
			Score:     e.Score,
			Genre:     e.Genre,
			Overview:  e.Overview,
			Crew:      e.Crew,
			OrigTitle: e.OrigTitle,
			Status:    e.Status,
			OrigLang:  e.OrigLang,
			Budget:    e.Budget,
			Revenue:   e.Revenue,
			Country:   e.Country,
		})
	}
	return movies, nil
}

func chunkMovies(movies []domain.Movie, size int) [][]domain.Movie {
	if size <= 0 {
		size = len(movies)
	}
	var chunks [][]domain.Movie
	for start := 0; start < len(movies); start += size {
		end := min(start+size, len(movies))
		chunks = append(chunks, movies[start:end])
	}
	return chunks
}
