package movies

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castwire/castwire/internal/casting/shared"
	"github.com/castwire/castwire/internal/platform/httpx"
	internalShared "github.com/castwire/castwire/internal/shared"
)

type mockRepository struct {
	movies map[int64]*Movie
	nextID int64

	// Actor ids the repository treats as existing rows.
	knownActors map[int64]bool

	updateCalls int
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		movies:      make(map[int64]*Movie),
		knownActors: make(map[int64]bool),
		nextID:      1,
	}
}

func (m *mockRepository) List(ctx context.Context) ([]Movie, error) {
	var out []Movie
	for id := int64(1); id < m.nextID; id++ {
		if mv, ok := m.movies[id]; ok {
			out = append(out, *mv)
		}
	}
	return out, nil
}

func (m *mockRepository) Get(ctx context.Context, id int64) (*Movie, error) {
	mv, ok := m.movies[id]
	if !ok {
		return nil, internalShared.ErrNotFound
	}
	copied := *mv
	return &copied, nil
}

func (m *mockRepository) checkIntegrity(movie *Movie) error {
	for _, existing := range m.movies {
		if existing.ID != movie.ID && existing.Title == movie.Title {
			return fmt.Errorf("%w: movies_title_key", internalShared.ErrDuplicate)
		}
	}
	for _, assignment := range movie.Actors {
		if !m.knownActors[assignment.ActorID] {
			return fmt.Errorf("%w: actors_movies_actor_id_fkey", internalShared.ErrDanglingReference)
		}
	}
	return nil
}

func (m *mockRepository) Create(ctx context.Context, movie *Movie) error {
	if err := m.checkIntegrity(movie); err != nil {
		return err
	}
	movie.ID = m.nextID
	m.nextID++
	copied := *movie
	m.movies[movie.ID] = &copied
	return nil
}

func (m *mockRepository) Update(ctx context.Context, movie *Movie, replaceActors bool) error {
	m.updateCalls++
	if err := m.checkIntegrity(movie); err != nil {
		return err
	}
	copied := *movie
	m.movies[movie.ID] = &copied
	return nil
}

func (m *mockRepository) Delete(ctx context.Context, id int64) error {
	if _, ok := m.movies[id]; !ok {
		return internalShared.ErrNotFound
	}
	delete(m.movies, id)
	return nil
}

const wireDate = "03/05/2020 23:00 UTC+01"

func validInput() Input {
	return Input{
		Title:       strPtr("The Landing"),
		ReleaseDate: strPtr(wireDate),
	}
}

func TestCreateMovie(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	id, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	stored := repo.movies[1]
	require.NotNil(t, stored)
	assert.Equal(t, "The Landing", stored.Title)
	assert.Equal(t, wireDate, shared.FormatReleaseDate(stored.ReleaseDate))
	assert.Empty(t, stored.Actors)
}

func TestCreateMovieMissingFieldsInOrder(t *testing.T) {
	svc := NewService(newMockRepository())

	cases := []struct {
		mutate func(*Input)
		field  string
	}{
		{func(in *Input) { in.Title = nil }, "title"},
		{func(in *Input) { in.ReleaseDate = nil }, "release_date"},
	}
	for _, tc := range cases {
		in := validInput()
		tc.mutate(&in)
		_, err := svc.Create(context.Background(), in)
		apiErr, ok := internalShared.AsAPIError(err)
		require.True(t, ok, "field %s", tc.field)
		assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
		detail := apiErr.Message.(internalShared.Detail)
		assert.Equal(t, "missing movie informations", detail.Error)
		assert.Contains(t, detail.Description, "`"+tc.field+"`")
	}
}

func TestCreateMovieUnparseableDate(t *testing.T) {
	svc := NewService(newMockRepository())

	in := validInput()
	// Passes the length shape check but does not parse.
	in.ReleaseDate = strPtr("99/99/9999 99:99 UTC+99")
	_, err := svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrReleaseDate)
}

func TestCreateMovieDuplicateTitle(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validInput())
	apiErr, ok := internalShared.AsAPIError(err)
	require.True(t, ok)
	detail := apiErr.Message.(internalShared.Detail)
	assert.Equal(t, "integrity error", detail.Error)
	assert.Contains(t, detail.Description, "Duplicated movie title")
	assert.Contains(t, detail.Description, "`The Landing`")
}

func TestCreateMovieDanglingActorReference(t *testing.T) {
	svc := NewService(newMockRepository())

	in := validInput()
	in.Actors = idsPtr([]int64{11})
	_, err := svc.Create(context.Background(), in)
	apiErr, ok := internalShared.AsAPIError(err)
	require.True(t, ok)
	detail := apiErr.Message.(internalShared.Detail)
	assert.Contains(t, detail.Description, "Referenced actor[s]")
}

func TestListMoviesEmpty(t *testing.T) {
	svc := NewService(newMockRepository())

	_, err := svc.List(context.Background())
	apiErr, ok := internalShared.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestListMoviesFormatsReleaseDate(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	formatted, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, formatted, 1)
	assert.Equal(t, wireDate, formatted[0].ReleaseDate)
	assert.Equal(t, []int64{}, formatted[0].Actors)
}

func TestUpdateMovieUnchanged(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	id, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	formatted, err := svc.Update(context.Background(), id, validInput())
	require.NoError(t, err)
	assert.Nil(t, formatted)
	assert.Zero(t, repo.updateCalls)
}

func TestUpdateMovieDirtyReleaseDate(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	id, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	next := "04/05/2020 10:30 UTC+02"
	formatted, err := svc.Update(context.Background(), id, Input{ReleaseDate: strPtr(next)})
	require.NoError(t, err)
	require.NotNil(t, formatted)
	assert.Equal(t, next, formatted.ReleaseDate)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestUpdateMovieUnparseableDate(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	id, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), id, Input{ReleaseDate: strPtr("99/99/9999 99:99 UTC+99")})
	assert.ErrorIs(t, err, ErrReleaseDate)
	assert.Zero(t, repo.updateCalls)
}

func TestUpdateMovieReplacesActors(t *testing.T) {
	repo := newMockRepository()
	repo.knownActors[4] = true
	svc := NewService(repo)

	id, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)

	formatted, err := svc.Update(context.Background(), id, Input{Actors: idsPtr([]int64{4})})
	require.NoError(t, err)
	require.NotNil(t, formatted)
	assert.Equal(t, []int64{4}, formatted.Actors)
}

func TestUpdateMovieNotFound(t *testing.T) {
	svc := NewService(newMockRepository())
	_, err := svc.Update(context.Background(), 7, Input{Title: strPtr("x")})
	assert.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestDeleteMovie(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo)

	id, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), id))
	assert.NotContains(t, repo.movies, id)
}

func TestDeleteMovieNotFound(t *testing.T) {
	svc := NewService(newMockRepository())
	assert.ErrorIs(t, svc.Delete(context.Background(), 3), httpx.ErrNotFound)
}
