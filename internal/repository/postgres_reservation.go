package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stagedoor/theatre-reservation-system/internal/domain"
)

type PostgresReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresReservationRepository(db *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{
		db: db,
	}
}

// Create persists a reservation and all its tickets in one transaction.
// Each requested seat is validated against the hall grid of its performance
// and inserted under the tickets unique constraint, which is the
// authoritative guard against double booking. Any failure rolls the whole
// reservation back.
func (p *PostgresReservationRepository) Create(
	ctx context.Context,
	userID int,
	requests []domain.TicketRequest) (*domain.Reservation, error) {

	if len(requests) == 0 {
		return nil, domain.ErrNoTickets
	}

	reservation := domain.Reservation{
		Reference: uuid.NewString(),
		UserID:    userID,
	}

	err := runInTx(ctx, p.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO reservations (reference, user_id)
			VALUES ($1, $2)
			RETURNING id, created_at
		`

		err := tx.QueryRow(ctx, query, reservation.Reference, userID).
			Scan(&reservation.ID, &reservation.CreatedAt)
		if err != nil {
			return err
		}

		// Performances are resolved once each within this transaction
		// only; nothing is cached across calls.
		performances := make(map[int]performanceContext)

		for i, req := range requests {
			perf, ok := performances[req.PerformanceID]
			if !ok {
				perf, err = contextOfPerformance(ctx, tx, req.PerformanceID)
				if err != nil {
					if errors.Is(err, pgx.ErrNoRows) {
						return &domain.TicketPerformanceError{Index: i, PerformanceID: req.PerformanceID}
					}
					return err
				}
				performances[req.PerformanceID] = perf
			}

			if seatErrs := domain.ValidateTicketSeat(req.Row, req.Seat, perf.Hall); len(seatErrs) > 0 {
				return &domain.TicketValidationError{Index: i, SeatErrors: seatErrs}
			}

			ticket := domain.Ticket{
				Row:           req.Row,
				Seat:          req.Seat,
				PerformanceID: req.PerformanceID,
				PlayTitle:     perf.PlayTitle,
				HallName:      perf.Hall.Name,
				ShowTime:      perf.ShowTime,
			}

			query = `
				INSERT INTO tickets (performance_id, reservation_id, seat_row, seat)
				VALUES ($1, $2, $3, $4)
				RETURNING id
			`

			err = tx.QueryRow(ctx, query, req.PerformanceID, reservation.ID, req.Row, req.Seat).
				Scan(&ticket.ID)
			if err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
					return &domain.SeatTakenError{
						PerformanceID: req.PerformanceID,
						Row:           req.Row,
						Seat:          req.Seat,
					}
				}
				return err
			}

			reservation.Tickets = append(reservation.Tickets, ticket)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &reservation, nil
}

// performanceContext is what a ticket needs from its performance: the hall
// grid for seat validation plus the denormalized display fields.
type performanceContext struct {
	Hall      domain.TheatreHall
	PlayTitle string
	ShowTime  time.Time
}

func contextOfPerformance(ctx context.Context, tx pgx.Tx, performanceID int) (performanceContext, error) {
	query := `
		SELECT h.id, h.name, h.rows, h.seats_in_row, pl.title, p.show_time
		FROM performances p
		JOIN theatre_halls h ON p.theatre_hall_id = h.id
		JOIN plays pl ON p.play_id = pl.id
		WHERE p.id = $1
	`

	var perf performanceContext

	err := tx.QueryRow(ctx, query, performanceID).Scan(
		&perf.Hall.ID,
		&perf.Hall.Name,
		&perf.Hall.Rows,
		&perf.Hall.SeatsInRow,
		&perf.PlayTitle,
		&perf.ShowTime,
	)

	return perf, err
}

func (p *PostgresReservationRepository) GetAllByUserId(
	ctx context.Context,
	userID int,
	pagination domain.Pagination) ([]domain.Reservation, *domain.Metadata, error) {

	query := `
		SELECT count(*) OVER(), id, reference, user_id, created_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := p.db.Query(ctx, query, userID, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	totalRecords := 0

	for rows.Next() {
		var reservation domain.Reservation

		err := rows.Scan(
			&totalRecords,
			&reservation.ID,
			&reservation.Reference,
			&reservation.UserID,
			&reservation.CreatedAt,
		)
		if err != nil {
			return nil, nil, err
		}

		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	for i := range reservations {
		tickets, err := p.retrieveTickets(ctx, reservations[i].ID)
		if err != nil {
			return nil, nil, err
		}

		reservations[i].Tickets = tickets
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return reservations, metadata, nil
}

func (p *PostgresReservationRepository) GetByIdAndUserId(
	ctx context.Context,
	reservationID,
	userID int) (*domain.Reservation, error) {

	query := `
		SELECT id, reference, user_id, created_at
		FROM reservations
		WHERE id = $1 AND user_id = $2
	`

	var reservation domain.Reservation

	err := p.db.QueryRow(ctx, query, reservationID, userID).Scan(
		&reservation.ID,
		&reservation.Reference,
		&reservation.UserID,
		&reservation.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, err
	}

	tickets, err := p.retrieveTickets(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	reservation.Tickets = tickets

	return &reservation, nil
}

func (p *PostgresReservationRepository) retrieveTickets(
	ctx context.Context,
	reservationID int) ([]domain.Ticket, error) {

	query := `
		SELECT t.id, t.seat_row, t.seat, t.performance_id, pl.title, h.name, pf.show_time
		FROM tickets t
		JOIN performances pf ON t.performance_id = pf.id
		JOIN plays pl ON pf.play_id = pl.id
		JOIN theatre_halls h ON pf.theatre_hall_id = h.id
		WHERE t.reservation_id = $1
		ORDER BY t.id
	`

	rows, err := p.db.Query(ctx, query, reservationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)

	for rows.Next() {
		var ticket domain.Ticket

		err := rows.Scan(
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.PerformanceID,
			&ticket.PlayTitle,
			&ticket.HallName,
			&ticket.ShowTime,
		)
		if err != nil {
			return nil, err
		}

		tickets = append(tickets, ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tickets, nil
}
