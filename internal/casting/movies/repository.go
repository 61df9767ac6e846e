package movies

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/castwire/castwire/internal/casting/shared"
	"github.com/castwire/castwire/internal/platform/db"
	internalShared "github.com/castwire/castwire/internal/shared"
)

type Repository interface {
	List(ctx context.Context) ([]Movie, error)
	Get(ctx context.Context, id int64) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie, replaceActors bool) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) List(ctx context.Context) ([]Movie, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, release_date FROM movies ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movies []Movie
	index := make(map[int64]int)
	for rows.Next() {
		var m Movie
		if err := rows.Scan(&m.ID, &m.Title, &m.ReleaseDate); err != nil {
			return nil, err
		}
		index[m.ID] = len(movies)
		movies = append(movies, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	assignmentRows, err := r.pool.Query(ctx,
		`SELECT id, actor_id, movie_id FROM actors_movies ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer assignmentRows.Close()

	for assignmentRows.Next() {
		var assignment shared.Assignment
		if err := assignmentRows.Scan(&assignment.ID, &assignment.ActorID, &assignment.MovieID); err != nil {
			return nil, err
		}
		if i, ok := index[assignment.MovieID]; ok {
			movies[i].Actors = append(movies[i].Actors, assignment)
		}
	}
	return movies, assignmentRows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (*Movie, error) {
	var m Movie
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, release_date FROM movies WHERE id = $1`, id).
		Scan(&m.ID, &m.Title, &m.ReleaseDate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, internalShared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, actor_id, movie_id FROM actors_movies WHERE movie_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var assignment shared.Assignment
		if err := rows.Scan(&assignment.ID, &assignment.ActorID, &assignment.MovieID); err != nil {
			return nil, err
		}
		m.Actors = append(m.Actors, assignment)
	}
	return &m, rows.Err()
}

// Create inserts the movie and its assignment placeholders in one
// transaction. Constraint violations come back classified.
func (r *repository) Create(ctx context.Context, movie *Movie) error {
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx,
			`INSERT INTO movies (title, release_date) VALUES ($1, $2) RETURNING id`,
			movie.Title, movie.ReleaseDate).Scan(&movie.ID); err != nil {
			return err
		}
		return insertAssignments(ctx, tx, movie.ID, movie.Actors)
	})
	return shared.WrapIntegrity(err)
}

func (r *repository) Update(ctx context.Context, movie *Movie, replaceActors bool) error {
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`UPDATE movies SET title = $1, release_date = $2 WHERE id = $3`,
			movie.Title, movie.ReleaseDate, movie.ID); err != nil {
			return err
		}
		if !replaceActors {
			return nil
		}
		if _, err := tx.Exec(ctx,
			`DELETE FROM actors_movies WHERE movie_id = $1`, movie.ID); err != nil {
			return err
		}
		return insertAssignments(ctx, tx, movie.ID, movie.Actors)
	})
	return shared.WrapIntegrity(err)
}

// Delete removes the movie; assignment rows go with it via ON DELETE CASCADE.
func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return internalShared.ErrNotFound
	}
	return nil
}

func insertAssignments(ctx context.Context, tx pgx.Tx, movieID int64, assignments []shared.Assignment) error {
	for i := range assignments {
		assignments[i].MovieID = movieID
		if err := tx.QueryRow(ctx,
			`INSERT INTO actors_movies (actor_id, movie_id) VALUES ($1, $2) RETURNING id`,
			assignments[i].ActorID, assignments[i].MovieID).Scan(&assignments[i].ID); err != nil {
			return err
		}
	}
	return nil
}
