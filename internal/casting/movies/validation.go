package movies

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/castwire/castwire/internal/casting/shared"
)

// Input is the subset of movie fields submitted by a client. A nil field was
// absent from the body.
type Input struct {
	Title       *string  `json:"title"`
	ReleaseDate *string  `json:"release_date"`
	Actors      *[]int64 `json:"actors"`
}

var (
	ErrTitle = shared.InvalidInfo("movie",
		fmt.Sprintf("`title` must be a string of at most %d characters", shared.MaxMovieTitleLen))
	ErrReleaseDate = shared.InvalidInfo("movie",
		"`release_date` malformatted, expected `DD/MM/YYYY HH:MM UTC+HH`")
	ErrActors = shared.InvalidInfo("movie",
		"`actors` should contain a list of actor integer ids")
)

var validate = validator.New()

// FieldError returns the validation error belonging to a JSON field name.
// Used to translate body decode failures to the same taxonomy.
func FieldError(field string) error {
	switch field {
	case "title":
		return ErrTitle
	case "release_date":
		return ErrReleaseDate
	case "actors":
		return ErrActors
	}
	return nil
}

// ValidateInput checks every submitted field's shape and builds assignment
// placeholders for the actors relationship. It runs on every create and
// update call, even for fields that are not changing. The release date is
// only length-checked here; full parseability is checked by the service.
func ValidateInput(in Input) ([]shared.Assignment, error) {
	if in.Title != nil {
		if err := validate.Var(*in.Title, fmt.Sprintf("max=%d", shared.MaxMovieTitleLen)); err != nil {
			return nil, ErrTitle
		}
	}
	if in.ReleaseDate != nil {
		rule := fmt.Sprintf("min=%d,max=%d", shared.MinReleaseDateLen, shared.MaxReleaseDateLen)
		if err := validate.Var(*in.ReleaseDate, rule); err != nil {
			return nil, ErrReleaseDate
		}
	}

	var assignments []shared.Assignment
	if in.Actors != nil {
		assignments = make([]shared.Assignment, 0, len(*in.Actors))
		for _, actorID := range *in.Actors {
			assignments = append(assignments, shared.Assignment{ActorID: actorID})
		}
	}
	return assignments, nil
}
