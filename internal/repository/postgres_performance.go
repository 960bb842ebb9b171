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

type PostgresPerformanceRepository struct {
	db *pgxpool.Pool
}

func NewPostgresPerformanceRepository(db *pgxpool.Pool) *PostgresPerformanceRepository {
	return &PostgresPerformanceRepository{
		db: db,
	}
}

func (p *PostgresPerformanceRepository) Create(ctx context.Context, performance *domain.Performance) error {
	query := `
		INSERT INTO performances (play_id, theatre_hall_id, show_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := p.db.QueryRow(
		ctx,
		query,
		performance.Play.ID,
		performance.Hall.ID,
		performance.ShowTime).Scan(&performance.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return domain.ErrRecordNotFound
		}

		return err
	}

	return nil
}

// GetAll lists performances with tickets_available computed in the same
// aggregate query as the listing itself, so the count per performance is a
// single consistent read.
func (p *PostgresPerformanceRepository) GetAll(
	ctx context.Context,
	filters domain.PerformanceFilters) ([]domain.PerformanceSummary, error) {

	query := `
		SELECT
			pf.id,
			pf.show_time,
			pl.title,
			h.name,
			h.rows * h.seats_in_row,
			h.rows * h.seats_in_row - count(t.id)
		FROM performances pf
		JOIN plays pl ON pf.play_id = pl.id
		JOIN theatre_halls h ON pf.theatre_hall_id = h.id
		LEFT JOIN tickets t ON t.performance_id = pf.id
		WHERE (pf.play_id = ANY($1::bigint[]) OR $1::bigint[] IS NULL)
			AND (pf.show_time::date = $2::date OR $2::date IS NULL)
			AND (pf.theatre_hall_id = $3 OR $3 = 0)
		GROUP BY pf.id, pf.show_time, pl.title, h.name, h.rows, h.seats_in_row
		ORDER BY pf.show_time DESC, pf.id DESC
	`

	var playIDs any
	if len(filters.PlayIDs) > 0 {
		playIDs = filters.PlayIDs
	}

	var date any
	if !filters.Date.IsZero() {
		date = filters.Date
	}

	rows, err := p.db.Query(ctx, query, playIDs, date, filters.HallID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	performances := make([]domain.PerformanceSummary, 0)

	for rows.Next() {
		var performance domain.PerformanceSummary

		err := rows.Scan(
			&performance.ID,
			&performance.ShowTime,
			&performance.PlayTitle,
			&performance.HallName,
			&performance.HallCapacity,
			&performance.TicketsAvailable,
		)
		if err != nil {
			return nil, err
		}

		if performance.TicketsAvailable < 0 {
			return nil, domain.ErrAvailabilityInvariant
		}

		performances = append(performances, performance)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return performances, nil
}

func (p *PostgresPerformanceRepository) GetById(ctx context.Context, id int) (*domain.Performance, error) {
	query := `
		SELECT
			pf.id,
			pf.show_time,
			pl.id, pl.title, pl.description,
			h.id, h.name, h.rows, h.seats_in_row
		FROM performances pf
		JOIN plays pl ON pf.play_id = pl.id
		JOIN theatre_halls h ON pf.theatre_hall_id = h.id
		WHERE pf.id = $1
	`

	var performance domain.Performance

	err := p.db.QueryRow(ctx, query, id).Scan(
		&performance.ID,
		&performance.ShowTime,
		&performance.Play.ID,
		&performance.Play.Title,
		&performance.Play.Description,
		&performance.Hall.ID,
		&performance.Hall.Name,
		&performance.Hall.Rows,
		&performance.Hall.SeatsInRow,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	return &performance, nil
}

func (p *PostgresPerformanceRepository) GetTakenPlaces(
	ctx context.Context,
	performanceID int) ([]domain.TakenPlace, error) {

	query := `
		SELECT seat_row, seat
		FROM tickets
		WHERE performance_id = $1
		ORDER BY seat_row, seat
	`

	rows, err := p.db.Query(ctx, query, performanceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	takenPlaces := make([]domain.TakenPlace, 0)

	for rows.Next() {
		var place domain.TakenPlace

		err := rows.Scan(&place.Row, &place.Seat)
		if err != nil {
			return nil, err
		}

		takenPlaces = append(takenPlaces, place)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return takenPlaces, nil
}

// Remaining computes hall capacity minus issued tickets as one aggregate
// query. A negative result means the unique constraint failed to hold and is
// reported as an invariant violation, never clamped.
func (p *PostgresPerformanceRepository) Remaining(ctx context.Context, performanceID int) (int, error) {
	query := `
		SELECT h.rows * h.seats_in_row - count(t.id)
		FROM performances pf
		JOIN theatre_halls h ON pf.theatre_hall_id = h.id
		LEFT JOIN tickets t ON t.performance_id = pf.id
		WHERE pf.id = $1
		GROUP BY h.rows, h.seats_in_row
	`

	var remaining int

	err := p.db.QueryRow(ctx, query, performanceID).Scan(&remaining)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrRecordNotFound
		}

		return 0, err
	}

	if remaining < 0 {
		return 0, domain.ErrAvailabilityInvariant
	}

	return remaining, nil
}
