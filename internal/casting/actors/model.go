package actors

import (
	"strings"

	"github.com/castwire/castwire/internal/casting/shared"
)

// Gender is a fixed two-value enumeration.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// NormalizeGender folds a validated gender string to the enumeration,
// regardless of input case.
func NormalizeGender(g string) string {
	if strings.ToLower(g) == GenderMale {
		return GenderMale
	}
	return GenderFemale
}

// Actor is a casting agency actor. Every persisted Actor has all non-id
// fields populated.
type Actor struct {
	ID     int64
	Name   string
	Age    int
	Gender string
	Movies []shared.Assignment
}

// Formatted is the JSON-ready projection of an Actor, with the relationship
// reduced to movie ids.
type Formatted struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Age    int     `json:"age"`
	Gender string  `json:"gender"`
	Movies []int64 `json:"movies"`
}

// Format projects the actor for a response body.
func (a Actor) Format() Formatted {
	movies := make([]int64, 0, len(a.Movies))
	for _, assignment := range a.Movies {
		movies = append(movies, assignment.MovieID)
	}
	return Formatted{
		ID:     a.ID,
		Name:   a.Name,
		Age:    a.Age,
		Gender: a.Gender,
		Movies: movies,
	}
}
