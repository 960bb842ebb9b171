package app

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/stagedoor/theatre-reservation-system/api"
	"github.com/stagedoor/theatre-reservation-system/internal/domain"
)

func (app *Application) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var input api.CreateReservationRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	requests := make([]domain.TicketRequest, len(input.Tickets))
	for i, t := range input.Tickets {
		requests[i] = domain.TicketRequest{
			PerformanceID: t.PerformanceId,
			Row:           t.Row,
			Seat:          t.Seat,
		}
	}

	userID := app.contextGetUserId(r)

	reservation, err := app.reservationRepo.Create(r.Context(), userID, requests)
	if err != nil {
		var validationErr *domain.TicketValidationError
		var seatTakenErr *domain.SeatTakenError

		switch {
		case errors.As(err, &validationErr):
			app.seatValidationResponse(w, r, validationErr)
		case errors.Is(err, domain.ErrPerformanceNotFound):
			app.notFoundResponseWithErr(w, r, err)
		case errors.As(err, &seatTakenErr):
			app.editConflictResponseWithErr(w, r, seatTakenErr)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	app.sendReservationConfirmation(r, userID, reservation)

	resp := toReservationResponse(*reservation)

	headers := http.Header{
		"Location": []string{fmt.Sprintf("/reservations/%d", reservation.ID)},
	}

	err = app.writeJSON(w, http.StatusCreated, resp, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetReservations(w http.ResponseWriter, r *http.Request) {
	params, err := readListParams(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userID := app.contextGetUserId(r)

	reservations, metadata, err := app.reservationRepo.GetAllByUserId(r.Context(), userID, toPagination(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserReservationsResponse{
		Reservations: toReservationResponses(reservations),
		Metadata:     toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetReservation(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userID := app.contextGetUserId(r)

	// Scoping the lookup by user makes someone else's reservation
	// indistinguishable from a missing one.
	reservation, err := app.reservationRepo.GetByIdAndUserId(r.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := toReservationResponse(*reservation)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) sendReservationConfirmation(r *http.Request, userID int, reservation *domain.Reservation) {
	user, err := app.userRepo.GetById(r.Context(), userID)
	if err != nil {
		app.logError(r, err)
		return
	}

	type mailTicket struct {
		PlayTitle string
		ShowTime  string
		Row       int
		Seat      int
	}

	tickets := make([]mailTicket, len(reservation.Tickets))
	for i, t := range reservation.Tickets {
		tickets[i] = mailTicket{
			PlayTitle: t.PlayTitle,
			ShowTime:  t.ShowTime.Format(time.RFC1123),
			Row:       t.Row,
			Seat:      t.Seat,
		}
	}

	data := map[string]any{
		"reference": reservation.Reference,
		"tickets":   tickets,
	}

	app.background(r, "sending reservation confirmation email", func() error {
		return app.mailer.Send(user.Email, "reservation_confirmation.tmpl", data)
	})
}

func toReservationResponse(reservation domain.Reservation) api.ReservationResponse {
	return api.ReservationResponse{
		Id:        reservation.ID,
		Reference: reservation.Reference,
		Tickets:   toTicketResponses(reservation.Tickets),
		CreatedAt: reservation.CreatedAt,
	}
}

func toReservationResponses(reservations []domain.Reservation) []api.ReservationResponse {
	responses := make([]api.ReservationResponse, len(reservations))

	for i, reservation := range reservations {
		responses[i] = toReservationResponse(reservation)
	}

	return responses
}

func toTicketResponses(tickets []domain.Ticket) []api.TicketResponse {
	responses := make([]api.TicketResponse, len(tickets))

	for i, t := range tickets {
		responses[i] = api.TicketResponse{
			Id:            t.ID,
			Row:           t.Row,
			Seat:          t.Seat,
			PerformanceId: t.PerformanceID,
			PlayTitle:     t.PlayTitle,
			HallName:      t.HallName,
			ShowTime:      t.ShowTime,
		}
	}

	return responses
}
