package movies

import (
	"time"

	"github.com/castwire/castwire/internal/casting/shared"
)

// Movie is a casting agency movie. Every persisted Movie has its title and
// release date populated.
type Movie struct {
	ID          int64
	Title       string
	ReleaseDate time.Time
	Actors      []shared.Assignment
}

// Formatted is the JSON-ready projection of a Movie, with the release date
// rendered back to its wire representation and the relationship reduced to
// actor ids.
type Formatted struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	ReleaseDate string  `json:"release_date"`
	Actors      []int64 `json:"actors"`
}

// Format projects the movie for a response body.
func (m Movie) Format() Formatted {
	actors := make([]int64, 0, len(m.Actors))
	for _, assignment := range m.Actors {
		actors = append(actors, assignment.ActorID)
	}
	return Formatted{
		ID:          m.ID,
		Title:       m.Title,
		ReleaseDate: shared.FormatReleaseDate(m.ReleaseDate),
		Actors:      actors,
	}
}
