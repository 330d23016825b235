package entity

import (
	"fmt"
	"strings"
)

// Movie holds the catalogue entry for a film together with its scheduled
// showtimes. IDs are assigned by the store on insert.
type Movie struct {
	ID          int64
	Title       string
	Language    string
	Genre       string
	Format      string
	Rating      float64
	ReleaseDate string
	Duration    int
	ShowTimes   []*ShowTime
}

// Details renders the movie for console display.
func (m *Movie) Details() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nTitle: %s", m.Title)
	fmt.Fprintf(&b, "\nLanguage: %s", m.Language)
	fmt.Fprintf(&b, "\nGenre: %s", m.Genre)
	fmt.Fprintf(&b, "\nFormat: %s", m.Format)
	fmt.Fprintf(&b, "\nIMDb Rating: %.1f", m.Rating)
	fmt.Fprintf(&b, "\nRelease Date: %s", m.ReleaseDate)
	fmt.Fprintf(&b, "\nDuration: %d minutes", m.Duration)
	return b.String()
}
