package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/stagedoor/theatre-reservation-system/api"
	"github.com/stagedoor/theatre-reservation-system/internal/domain"
)

func (app *Application) GetPlays(w http.ResponseWriter, r *http.Request) {
	genreIDs, err := readCSVInts(r, "genres")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	actorIDs, err := readCSVInts(r, "actors")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	filters := domain.PlayFilters{
		Title:    r.URL.Query().Get("title"),
		GenreIDs: genreIDs,
		ActorIDs: actorIDs,
	}

	plays, err := app.playRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.PlayListResponse{
		Plays: toPlayResponses(plays),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetPlay(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	play, err := app.playRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := toPlayResponse(*play)

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreatePlay(w http.ResponseWriter, r *http.Request) {
	var input api.CreatePlayRequest

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

	play := domain.Play{
		Title:       input.Title,
		Description: input.Description,
	}

	for _, id := range input.GenreIds {
		play.Genres = append(play.Genres, domain.Genre{ID: id})
	}

	for _, id := range input.ActorIds {
		play.Actors = append(play.Actors, domain.Actor{ID: id})
	}

	err = app.playRepo.Create(r.Context(), &play)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.badRequestResponse(w, r, fmt.Errorf("one or more referenced genres or actors do not exist"))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	// Re-read so the response carries full genre and actor records.
	created, err := app.playRepo.GetById(r.Context(), play.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := toPlayResponse(*created)

	headers := http.Header{
		"Location": []string{fmt.Sprintf("/plays/%d", play.ID)},
	}

	err = app.writeJSON(w, http.StatusCreated, resp, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toPlayResponse(play domain.Play) api.PlayResponse {
	return api.PlayResponse{
		Id:          play.ID,
		Title:       play.Title,
		Description: play.Description,
		Genres:      toGenreResponses(play.Genres),
		Actors:      toActorResponses(play.Actors),
	}
}

func toPlayResponses(plays []domain.Play) []api.PlayResponse {
	responses := make([]api.PlayResponse, len(plays))

	for i, play := range plays {
		responses[i] = toPlayResponse(play)
	}

	return responses
}
