package movies

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/castwire/castwire/internal/casting/shared"
	"github.com/castwire/castwire/internal/platform/httpx"
	internalShared "github.com/castwire/castwire/internal/shared"
)

var errNoMovies = shared.NotFound("No movie was found in the database")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every movie ordered by id. An empty collection is reported as
// a not-found error rather than an empty success.
func (s *Service) List(ctx context.Context) ([]Formatted, error) {
	movies, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(movies) == 0 {
		return nil, errNoMovies
	}
	formatted := make([]Formatted, 0, len(movies))
	for _, m := range movies {
		formatted = append(formatted, m.Format())
	}
	return formatted, nil
}

// Create validates the submitted fields, requires title and release date to
// be present (actors defaults to an empty list), and persists the new movie
// with its assignment placeholders in a single commit.
func (s *Service) Create(ctx context.Context, in Input) (int64, error) {
	assignments, err := ValidateInput(in)
	if err != nil {
		return 0, err
	}

	// Required-field check in declaration order.
	switch {
	case in.Title == nil:
		return 0, shared.MissingField("movie", "title")
	case in.ReleaseDate == nil:
		return 0, shared.MissingField("movie", "release_date")
	}
	if assignments == nil {
		assignments = []shared.Assignment{}
	}

	releaseDate, err := shared.ParseReleaseDate(*in.ReleaseDate)
	if err != nil {
		return 0, ErrReleaseDate
	}

	movie := &Movie{
		Title:       *in.Title,
		ReleaseDate: releaseDate,
		Actors:      assignments,
	}
	if err := s.repo.Create(ctx, movie); err != nil {
		return 0, translateIntegrity(err, movie.Title)
	}
	return movie.ID, nil
}

// Update applies only the fields that are present and different from the
// stored state. It returns nil when nothing changed, in which case no
// persistence write was issued.
func (s *Service) Update(ctx context.Context, id int64, in Input) (*Formatted, error) {
	movie, err := s.repo.Get(ctx, id)
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
	replaceActors := false
	if in.ReleaseDate != nil {
		var releaseDate time.Time
		releaseDate, err = shared.ParseReleaseDate(*in.ReleaseDate)
		if err != nil {
			return nil, ErrReleaseDate
		}
		if !releaseDate.Equal(movie.ReleaseDate) {
			movie.ReleaseDate = releaseDate
			dirty = true
		}
	}
	if in.Title != nil && *in.Title != movie.Title {
		movie.Title = *in.Title
		dirty = true
	}
	if in.Actors != nil && !equalIDs(actorIDs(movie.Actors), *in.Actors) {
		movie.Actors = assignments
		dirty = true
		replaceActors = true
	}

	if !dirty {
		return nil, nil
	}
	if err := s.repo.Update(ctx, movie, replaceActors); err != nil {
		return nil, translateIntegrity(err, movie.Title)
	}
	formatted := movie.Format()
	return &formatted, nil
}

// Delete removes the movie and, by cascade, its assignment rows.
func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, internalShared.ErrNotFound) {
		return httpx.ErrNotFound
	}
	return err
}

func translateIntegrity(err error, title string) error {
	switch {
	case errors.Is(err, internalShared.ErrDuplicate):
		return shared.IntegrityError(fmt.Sprintf(
			"Duplicated movie title, movie `%s` already exists", title))
	case errors.Is(err, internalShared.ErrDanglingReference):
		return shared.IntegrityError(
			"Referenced actor[s] does not exist in the database, confirm their ids before assigning to the movie")
	default:
		return httpx.ErrUnprocessable
	}
}

func actorIDs(assignments []shared.Assignment) []int64 {
	ids := make([]int64, 0, len(assignments))
	for _, assignment := range assignments {
		ids = append(ids, assignment.ActorID)
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
