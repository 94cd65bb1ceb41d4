package domain

import "time"

// Movie represents the canonical movie entity stored in the catalog.
type Movie struct {
	ID        int64
	Name      string
	Date      time.Time
	Score     float64
	Genre     string
	Overview  string
	Crew      string
	OrigTitle string
	Status    string
	OrigLang  string
	Budget    float64
	Revenue   float64
	Country   string
}
