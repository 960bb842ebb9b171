package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/stagedoor/theatre-reservation-system/api"
	"github.com/stagedoor/theatre-reservation-system/internal/domain"
)

func (app *Application) GetPerformances(w http.ResponseWriter, r *http.Request) {
	playIDs, err := readCSVInts(r, "play")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	date, err := readDate(r, "date")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	filters := domain.PerformanceFilters{
		PlayIDs: playIDs,
		Date:    date,
	}

	performances, err := app.performanceRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PerformanceListResponse{
		Performances: toPerformanceSummaries(performances),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPerformance(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	performance, err := app.performanceRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	takenPlaces, err := app.performanceRepo.GetTakenPlaces(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	remaining, err := app.performanceRepo.Remaining(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PerformanceDetailResponse{
		Id:               performance.ID,
		ShowTime:         performance.ShowTime,
		PlayTitle:        performance.Play.Title,
		TheatreHallName:  performance.Hall.Name,
		Rows:             performance.Hall.Rows,
		SeatsInRow:       performance.Hall.SeatsInRow,
		TicketsAvailable: remaining,
		TakenPlaces:      toTakenPlaces(takenPlaces),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreatePerformance(w http.ResponseWriter, r *http.Request) {
	var input api.CreatePerformanceRequest

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

	performance := domain.Performance{
		ShowTime: input.ShowTime,
		Play:     domain.Play{ID: input.PlayId},
		Hall:     domain.TheatreHall{ID: input.TheatreHallId},
	}

	err = app.performanceRepo.Create(r.Context(), &performance)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, fmt.Errorf("referenced play or theatre hall does not exist"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	created, err := app.performanceRepo.GetById(r.Context(), performance.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	// A just-created performance has no tickets, so the full grid is open.
	resp := api.PerformanceDetailResponse{
		Id:               created.ID,
		ShowTime:         created.ShowTime,
		PlayTitle:        created.Play.Title,
		TheatreHallName:  created.Hall.Name,
		Rows:             created.Hall.Rows,
		SeatsInRow:       created.Hall.SeatsInRow,
		TicketsAvailable: created.Hall.Rows * created.Hall.SeatsInRow,
		TakenPlaces:      []api.TakenPlace{},
	}

	headers := http.Header{
		"Location": []string{fmt.Sprintf("/performances/%d", created.ID)},
	}

	err = app.writeJSON(w, http.StatusCreated, resp, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toPerformanceSummaries(performances []domain.PerformanceSummary) []api.PerformanceSummary {
	summaries := make([]api.PerformanceSummary, len(performances))

	for i, p := range performances {
		summaries[i] = api.PerformanceSummary{
			Id:               p.ID,
			ShowTime:         p.ShowTime,
			PlayTitle:        p.PlayTitle,
			TheatreHallName:  p.HallName,
			HallCapacity:     p.HallCapacity,
			TicketsAvailable: p.TicketsAvailable,
		}
	}

	return summaries
}

func toTakenPlaces(places []domain.TakenPlace) []api.TakenPlace {
	taken := make([]api.TakenPlace, len(places))

	for i, p := range places {
		taken[i] = api.TakenPlace{Row: p.Row, Seat: p.Seat}
	}

	return taken
}
