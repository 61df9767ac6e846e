package actors

import (
	"context"
	"errors"
	"fmt"

	"github.com/castwire/castwire/internal/casting/shared"
	"github.com/castwire/castwire/internal/platform/httpx"
	internalShared "github.com/castwire/castwire/internal/shared"
)

var errNoActors = shared.NotFound("No actor was found in the database")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every actor ordered by id. An empty collection is reported as
// a not-found error rather than an empty success.
func (s *Service) List(ctx context.Context) ([]Formatted, error) {
	actors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(actors) == 0 {
		return nil, errNoActors
	}
	formatted := make([]Formatted, 0, len(actors))
	for _, a := range actors {
		formatted = append(formatted, a.Format())
	}
	return formatted, nil
}

// Create validates the submitted fields, requires every field to be present
// (movies defaults to an empty list), and persists the new actor with its
// assignment placeholders in a single commit.
func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	assignments, err := ValidateInput(in)
	if err != nil {
		return 0, err
	}

	// Required-field check in declaration order.
	switch {
	case in.Name == nil:
		return 0, shared.MissingField("actor", "name")
	case in.Age == nil:
		return 0, shared.MissingField("actor", "age")
	case in.Gender == nil:
		return 0, shared.MissingField("actor", "gender")
	}
	if assignments == nil {
		assignments = []shared.Assignment{}
	}

	actor := &Actor{
		Name:   *in.Name,
		Age:    *in.Age,
		Gender: NormalizeGender(*in.Gender),
		Movies: assignments,
	}
	if err := s.repo.Create(ctx, actor); err != nil {
		return 0, translateIntegrity(err, actor.Name)
	}
	return actor.ID, nil
}

// Update applies only the fields that are present and different from the
// stored state. It returns nil when nothing changed, in which case no
// persistence write was issued.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*Formatted, error) {
	actor, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, internalShared.ErrNotFound) {
			return nil, httpx.ErrNotFound
		}
		return nil, err
	}

	assignments, err := ValidateInput(in)
	if err != nil {
		return nil, err
	}

	dirty := false
	replaceMovies := false
	if in.Name != nil && *in.Name != actor.Name {
		actor.Name = *in.Name
		dirty = true
	}
	if in.Age != nil && *in.Age != actor.Age {
		actor.Age = *in.Age
		dirty = true
	}
	if in.Gender != nil && NormalizeGender(*in.Gender) != actor.Gender {
		actor.Gender = NormalizeGender(*in.Gender)
		dirty = true
	}
	if in.Movies != nil && !equalIDs(movieIDs(actor.Movies), *in.Movies) {
		actor.Movies = assignments
		dirty = true
		replaceMovies = true
	}

	if !dirty {
		return nil, nil
	}
	if err := s.repo.Update(ctx, actor, replaceMovies); err != nil {
		return nil, translateIntegrity(err, actor.Name)
	}
	formatted := actor.Format()
	return &formatted, nil
}

// Delete removes the actor and, by cascade, its assignment rows.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, internalShared.ErrNotFound) {
		return httpx.ErrNotFound
	}
	return err
}

func translateIntegrity(err error, name string) error {
	switch {
	case errors.Is(err, internalShared.ErrDuplicate):
		return shared.IntegrityError(fmt.Sprintf(
			"Duplicated actor name, actor `%s` already exists", name))
	case errors.Is(err, internalShared.ErrDanglingReference):
		return shared.IntegrityError(
			"Referenced movie[s] does not exist in the database, confirm their ids before assigning to the actor")
	default:
		return httpx.ErrUnprocessable
	}
}

func movieIDs(assignments []shared.Assignment) []int64 {
	ids := make([]int64, 0, len(assignments))
	for _, assignment := range assignments {
		ids = append(ids, assignment.MovieID)
	}
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
