package actors

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/castwire/castwire/internal/casting/shared"
)

// Input is the subset of actor fields submitted by a client. A nil field was
// absent from the body: "leave unchanged" on update, "must be supplied" on
// create.
type Input struct {
	Name   *string  `json:"name"`
	Age    *int     `json:"age"`
	Gender *string  `json:"gender"`
	Movies *[]int64 `json:"movies"`
}

var (
	ErrName = shared.InvalidInfo("actor",
		fmt.Sprintf("`name` must be a string of at most %d characters", shared.MaxActorNameLen))
	ErrAge = shared.InvalidInfo("actor",
		"`age` must be an integer in the interval [18;100]")
	ErrGender = shared.InvalidInfo("actor",
		"`gender` accepts only two values `male` and `female`")
	ErrMovies = shared.InvalidInfo("actor",
		"`movies` should contain a list of movie integer ids")
)

var validate = validator.New()

// FieldError returns the validation error belonging to a JSON field name.
// Used to translate body decode failures to the same taxonomy.
func FieldError(field string) error {
	switch field {
	case "name":
		return ErrName
	case "age":
		return ErrAge
	case "gender":
		return ErrGender
	case "movies":
		return ErrMovies
	}
	return nil
}

// ValidateInput checks every submitted field's shape and range, and builds
// assignment placeholders for the movies relationship. It runs on every
// create and update call, even for fields that are not changing, so a
// malformed resubmission of unchanged data is still rejected.
func ValidateInput(in Input) ([]shared.Assignment, error) {
	if in.Name != nil {
		if err := validate.Var(*in.Name, fmt.Sprintf("max=%d", shared.MaxActorNameLen)); err != nil {
			return nil, ErrName
		}
	}
	if in.Age != nil {
		if err := validate.Var(*in.Age, "gte=18,lte=100"); err != nil {
			return nil, ErrAge
		}
	}
	if in.Gender != nil {
		switch strings.ToLower(*in.Gender) {
		case GenderMale, GenderFemale:
		default:
			return nil, ErrGender
		}
	}

	var assignments []shared.Assignment
	if in.Movies != nil {
		assignments = make([]shared.Assignment, 0, len(*in.Movies))
		for _, movieID := range *in.Movies {
			assignments = append(assignments, shared.Assignment{MovieID: movieID})
		}
	}
	return assignments, nil
}
