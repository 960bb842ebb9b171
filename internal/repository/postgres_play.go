package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stagedoor/theatre-reservation-system/internal/domain"
)

type PostgresPlayRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPlayRepository(db *pgxpool.Pool) *PostgresPlayRepository {
	return &PostgresPlayRepository{
		db: db,
	}
}

func (p *PostgresPlayRepository) Create(ctx context.Context, play *domain.Play) error {
	return runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO plays (title, description)
			VALUES ($1, $2)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query, play.Title, play.Description).Scan(&play.ID)
		if err != nil {
			return err
		}

		for _, genre := range play.Genres {
			_, err := tx.Exec(ctx,
				`INSERT INTO plays_genres (play_id, genre_id) VALUES ($1, $2)`,
				play.ID, genre.ID)
			if err != nil {
				return mapMissingRelation(err)
			}
		}

		for _, actor := range play.Actors {
			_, err := tx.Exec(ctx,
				`INSERT INTO plays_actors (play_id, actor_id) VALUES ($1, $2)`,
				play.ID, actor.ID)
			if err != nil {
				return mapMissingRelation(err)
			}
		}

		return nil
	})
}

func mapMissingRelation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return domain.ErrRecordNotFound
	}

	return err
}

func (p *PostgresPlayRepository) GetAll(ctx context.Context, filters domain.PlayFilters) ([]domain.Play, error) {
	query := `
		SELECT DISTINCT pl.id, pl.title, pl.description
		FROM plays pl
		LEFT JOIN plays_genres pg ON pg.play_id = pl.id
		LEFT JOIN plays_actors pa ON pa.play_id = pl.id
		WHERE (pl.title ILIKE '%' || $1 || '%' OR $1 = '')
			AND (pg.genre_id = ANY($2::bigint[]) OR $2::bigint[] IS NULL)
			AND (pa.actor_id = ANY($3::bigint[]) OR $3::bigint[] IS NULL)
		ORDER BY pl.id
	`

	var genreIDs, actorIDs any
	if len(filters.GenreIDs) > 0 {
		genreIDs = filters.GenreIDs
	}
	if len(filters.ActorIDs) > 0 {
		actorIDs = filters.ActorIDs
	}

	rows, err := p.db.Query(ctx, query, filters.Title, genreIDs, actorIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plays := make([]domain.Play, 0)

	for rows.Next() {
		var play domain.Play

		err := rows.Scan(&play.ID, &play.Title, &play.Description)
		if err != nil {
			return nil, err
		}

		plays = append(plays, play)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for i := range plays {
		if err := p.attachRelations(ctx, &plays[i]); err != nil {
			return nil, err
		}
	}

	return plays, nil
}

func (p *PostgresPlayRepository) GetById(ctx context.Context, id int) (*domain.Play, error) {
	query := `
		SELECT id, title, description
		FROM plays
		WHERE id = $1
	`

	var play domain.Play

	err := p.db.QueryRow(ctx, query, id).Scan(&play.ID, &play.Title, &play.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	if err := p.attachRelations(ctx, &play); err != nil {
		return nil, err
	}

	return &play, nil
}

func (p *PostgresPlayRepository) attachRelations(ctx context.Context, play *domain.Play) error {
	genres, err := p.retrieveGenres(ctx, play.ID)
	if err != nil {
		return err
	}

	actors, err := p.retrieveActors(ctx, play.ID)
	if err != nil {
		return err
	}

	play.Genres = genres
	play.Actors = actors

	return nil
}

func (p *PostgresPlayRepository) retrieveGenres(ctx context.Context, playID int) ([]domain.Genre, error) {
	query := `
		SELECT g.id, g.name
		FROM genres g
		JOIN plays_genres pg ON g.id = pg.genre_id AND pg.play_id = $1
		ORDER BY g.id
	`

	rows, err := p.db.Query(ctx, query, playID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	genres := make([]domain.Genre, 0)

	for rows.Next() {
		var genre domain.Genre

		err := rows.Scan(&genre.ID, &genre.Name)
		if err != nil {
			return nil, err
		}

		genres = append(genres, genre)
	}

	return genres, rows.Err()
}

func (p *PostgresPlayRepository) retrieveActors(ctx context.Context, playID int) ([]domain.Actor, error) {
	query := `
		SELECT a.id, a.first_name, a.last_name
		FROM actors a
		JOIN plays_actors pa ON a.id = pa.actor_id AND pa.play_id = $1
		ORDER BY a.id
	`

	rows, err := p.db.Query(ctx, query, playID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actors := make([]domain.Actor, 0)

	for rows.Next() {
		var actor domain.Actor

		err := rows.Scan(&actor.ID, &actor.FirstName, &actor.LastName)
		if err != nil {
			return nil, err
		}

		actors = append(actors, actor)
	}

	return actors, rows.Err()
}
