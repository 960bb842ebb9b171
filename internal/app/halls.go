package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/stagedoor/theatre-reservation-system/api"
	"github.com/stagedoor/theatre-reservation-system/internal/domain"
)

func (app *Application) GetTheatreHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := app.hallRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.TheatreHallListResponse{
		TheatreHalls: toTheatreHallResponses(halls),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetTheatreHall(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	hall, err := app.hallRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	performances, err := app.performanceRepo.GetAll(r.Context(), domain.PerformanceFilters{HallID: id})
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.TheatreHallDetailResponse{
		TheatreHallResponse: toTheatreHallResponse(*hall),
		Performances:        toPerformanceSummaries(performances),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateTheatreHall(w http.ResponseWriter, r *http.Request) {
	var input api.CreateTheatreHallRequest

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

	hall := domain.TheatreHall{
		Name:       input.Name,
		Rows:       input.Rows,
		SeatsInRow: input.SeatsInRow,
	}

	err = app.hallRepo.Create(r.Context(), &hall)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := toTheatreHallResponse(hall)

	headers := http.Header{
		"Location": []string{fmt.Sprintf("/theatre-halls/%d", hall.ID)},
	}

	err = app.writeJSON(w, http.StatusCreated, resp, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toTheatreHallResponse(hall domain.TheatreHall) api.TheatreHallResponse {
	return api.TheatreHallResponse{
		Id:         hall.ID,
		Name:       hall.Name,
		Rows:       hall.Rows,
		SeatsInRow: hall.SeatsInRow,
		Capacity:   hall.Capacity(),
	}
}

func toTheatreHallResponses(halls []domain.TheatreHall) []api.TheatreHallResponse {
	responses := make([]api.TheatreHallResponse, len(halls))

	for i, hall := range halls {
		responses[i] = toTheatreHallResponse(hall)
	}

	return responses
}
