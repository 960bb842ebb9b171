package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/stagedoor/theatre-reservation-system/api"
	"github.com/stagedoor/theatre-reservation-system/internal/domain"
)

func (app *Application) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := app.genreRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.GenreListResponse{
		Genres: toGenreResponses(genres),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetGenre(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	genre, err := app.genreRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.GenreDetailResponse{
		GenreResponse: toGenreResponse(*genre),
		Plays:         genre.PlayTitles,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var input api.CreateGenreRequest

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

	genre := domain.Genre{
		Name: input.Name,
	}

	err = app.genreRepo.Create(r.Context(), &genre)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEditConflict):
			app.editConflictResponseWithErr(w, r, fmt.Errorf("a genre named %q already exists", input.Name))
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := toGenreResponse(genre)

	headers := http.Header{
		"Location": []string{fmt.Sprintf("/genres/%d", genre.ID)},
	}

	err = app.writeJSON(w, http.StatusCreated, resp, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toGenreResponse(genre domain.Genre) api.GenreResponse {
	return api.GenreResponse{
		Id:   genre.ID,
		Name: genre.Name,
	}
}

func toGenreResponses(genres []domain.Genre) []api.GenreResponse {
	responses := make([]api.GenreResponse, len(genres))

	for i, genre := range genres {
		responses[i] = toGenreResponse(genre)
	}

	return responses
}
