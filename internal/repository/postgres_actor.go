package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stagedoor/theatre-reservation-system/internal/domain"
)

type PostgresActorRepository struct {
	db *pgxpool.Pool
}

func NewPostgresActorRepository(db *pgxpool.Pool) *PostgresActorRepository {
	return &PostgresActorRepository{
		db: db,
	}
}

func (p *PostgresActorRepository) Create(ctx context.Context, actor *domain.Actor) error {
	query := `
		INSERT INTO actors (first_name, last_name)
		VALUES ($1, $2)
		RETURNING id
	`

	return p.db.QueryRow(ctx, query, actor.FirstName, actor.LastName).Scan(&actor.ID)
}

func (p *PostgresActorRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Actor, *domain.Metadata, error) {

	query := `
		SELECT count(*) OVER(), id, first_name, last_name
		FROM actors
		ORDER BY id
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	actors := make([]domain.Actor, 0)
	totalRecords := 0

	for rows.Next() {
		var actor domain.Actor

		err := rows.Scan(&totalRecords, &actor.ID, &actor.FirstName, &actor.LastName)
		if err != nil {
			return nil, nil, err
		}

		actors = append(actors, actor)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return actors, metadata, nil
}

func (p *PostgresActorRepository) GetById(ctx context.Context, id int) (*domain.Actor, error) {
	query := `
		SELECT id, first_name, last_name
		FROM actors
		WHERE id = $1
	`

	var actor domain.Actor

	err := p.db.QueryRow(ctx, query, id).Scan(&actor.ID, &actor.FirstName, &actor.LastName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	titles, err := playTitlesFor(ctx, p.db, `
		SELECT pl.title
		FROM plays pl
		JOIN plays_actors pa ON pl.id = pa.play_id AND pa.actor_id = $1
		ORDER BY pl.id
	`, id)
	if err != nil {
		return nil, err
	}

	actor.PlayTitles = titles

	return &actor, nil
}

func playTitlesFor(ctx context.Context, db *pgxpool.Pool, query string, id int) ([]string, error) {
	rows, err := db.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	titles := make([]string, 0)

	for rows.Next() {
		var title string

		err := rows.Scan(&title)
		if err != nil {
			return nil, err
		}

		titles = append(titles, title)
	}

	return titles, rows.Err()
}
