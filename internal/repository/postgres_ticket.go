package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stagedoor/theatre-reservation-system/internal/domain"
)

type PostgresTicketRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTicketRepository(db *pgxpool.Pool) *PostgresTicketRepository {
	return &PostgresTicketRepository{
		db: db,
	}
}

func (p *PostgresTicketRepository) GetAll(
	ctx context.Context,
	pagination domain.Pagination) ([]domain.Ticket, *domain.Metadata, error) {

	query := `
		SELECT count(*) OVER(), t.id, t.seat_row, t.seat, t.performance_id, pl.title, h.name, pf.show_time
		FROM tickets t
		JOIN performances pf ON t.performance_id = pf.id
		JOIN plays pl ON pf.play_id = pl.id
		JOIN theatre_halls h ON pf.theatre_hall_id = h.id
		ORDER BY t.id
		LIMIT $1 OFFSET $2
	`

	rows, err := p.db.Query(ctx, query, pagination.Limit(), pagination.Offset())
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	tickets := make([]domain.Ticket, 0)
	totalRecords := 0

	for rows.Next() {
		var ticket domain.Ticket

		err := rows.Scan(
			&totalRecords,
			&ticket.ID,
			&ticket.Row,
			&ticket.Seat,
			&ticket.PerformanceID,
			&ticket.PlayTitle,
			&ticket.HallName,
			&ticket.ShowTime,
		)
		if err != nil {
			return nil, nil, err
		}

		tickets = append(tickets, ticket)
	}

	if err = rows.Err(); err != nil {
		return nil, nil, err
	}

	metadata := domain.NewMetadata(totalRecords, pagination.Page, pagination.PageSize)

	return tickets, metadata, nil
}
