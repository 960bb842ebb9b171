package app

import (
	"net/http"

	"github.com/stagedoor/theatre-reservation-system/api"
)

// GetTickets lists every issued ticket across the system. Admin only.
func (app *Application) GetTickets(w http.ResponseWriter, r *http.Request) {
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

	tickets, metadata, err := app.ticketRepo.GetAll(r.Context(), toPagination(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.TicketListResponse{
		Tickets:  toTicketResponses(tickets),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
