package actors

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
	List(ctx context.Context) ([]Actor, error)
	Get(ctx context.Context, id int64) (*Actor, error)
	Create(ctx context.Context, actor *Actor) error
	Update(ctx context.Context, actor *Actor, replaceMovies bool) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

func (r *repository) List(ctx context.Context) ([]Actor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, age, gender FROM actors ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var actors []Actor
	index := make(map[int64]int)
	for rows.Next() {
		var a Actor
		if err := rows.Scan(&a.ID, &a.Name, &a.Age, &a.Gender); err != nil {
			return nil, err
		}
		index[a.ID] = len(actors)
		actors = append(actors, a)
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
		if i, ok := index[assignment.ActorID]; ok {
			actors[i].Movies = append(actors[i].Movies, assignment)
		}
	}
	return actors, assignmentRows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (*Actor, error) {
	var a Actor
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, age, gender FROM actors WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.Age, &a.Gender)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, internalShared.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, actor_id, movie_id FROM actors_movies WHERE actor_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var assignment shared.Assignment
		if err := rows.Scan(&assignment.ID, &assignment.ActorID, &assignment.MovieID); err != nil {
			return nil, err
		}
		a.Movies = append(a.Movies, assignment)
	}
	return &a, rows.Err()
}

// Create inserts the actor and its assignment placeholders in one
// transaction. Constraint violations come back classified.
func (r *repository) Create(ctx context.Context, actor *Actor) error {
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx,
			`INSERT INTO actors (name, age, gender) VALUES ($1, $2, $3) RETURNING id`,
			actor.Name, actor.Age, actor.Gender).Scan(&actor.ID); err != nil {
			return err
		}
		return insertAssignments(ctx, tx, actor.ID, actor.Movies)
	})
	return shared.WrapIntegrity(err)
}

func (r *repository) Update(ctx context.Context, actor *Actor, replaceMovies bool) error {
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`UPDATE actors SET name = $1, age = $2, gender = $3 WHERE id = $4`,
			actor.Name, actor.Age, actor.Gender, actor.ID); err != nil {
			return err
		}
		if !replaceMovies {
			return nil
		}
		if _, err := tx.Exec(ctx,
			`DELETE FROM actors_movies WHERE actor_id = $1`, actor.ID); err != nil {
			return err
		}
		return insertAssignments(ctx, tx, actor.ID, actor.Movies)
	})
	return shared.WrapIntegrity(err)
}

// Delete removes the actor; assignment rows go with it via ON DELETE CASCADE.
func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM actors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return internalShared.ErrNotFound
	}
	return nil
}

func insertAssignments(ctx context.Context, tx pgx.Tx, actorID int64, assignments []shared.Assignment) error {
	for i := range assignments {
		assignments[i].ActorID = actorID
		if err := tx.QueryRow(ctx,
			`INSERT INTO actors_movies (actor_id, movie_id) VALUES ($1, $2) RETURNING id`,
			assignments[i].ActorID, assignments[i].MovieID).Scan(&assignments[i].ID); err != nil {
			return err
		}
	}
	return nil
}
