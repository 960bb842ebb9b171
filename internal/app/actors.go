package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/stagedoor/theatre-reservation-system/api"
	"github.com/stagedoor/theatre-reservation-system/internal/domain"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

func (app *Application) GetActors(w http.ResponseWriter, r *http.Request) {
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

	actors, metadata, err := app.actorRepo.GetAll(r.Context(), toPagination(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.ActorListResponse{
		Actors:   toActorResponses(actors),
		Metadata: toApiMetadata(metadata),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetActor(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	actor, err := app.actorRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.ActorDetailResponse{
		ActorResponse: toActorResponse(*actor),
		Plays:         actor.PlayTitles,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateActor(w http.ResponseWriter, r *http.Request) {
	var input api.CreateActorRequest

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

	actor := domain.Actor{
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}

	err = app.actorRepo.Create(r.Context(), &actor)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := toActorResponse(actor)

	headers := http.Header{
		"Location": []string{fmt.Sprintf("/actors/%d", actor.ID)},
	}

	err = app.writeJSON(w, http.StatusCreated, resp, headers)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func readListParams(r *http.Request) (api.ListParams, error) {
	var params api.ListParams

	page, err := readIntParam(r, "page")
	if err != nil {
		return params, err
	}

	pageSize, err := readIntParam(r, "page_size")
	if err != nil {
		return params, err
	}

	params.Page = page
	params.PageSize = pageSize

	return params, nil
}

func toPagination(params api.ListParams) domain.Pagination {
	pagination := domain.Pagination{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if params.Page != nil {
		pagination.Page = *params.Page
	}
	if params.PageSize != nil {
		pagination.PageSize = *params.PageSize
	}

	return pagination
}

func toApiMetadata(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}

func toActorResponse(actor domain.Actor) api.ActorResponse {
	return api.ActorResponse{
		Id:        actor.ID,
		FirstName: actor.FirstName,
		LastName:  actor.LastName,
		FullName:  actor.FullName(),
	}
}

func toActorResponses(actors []domain.Actor) []api.ActorResponse {
	responses := make([]api.ActorResponse, len(actors))

	for i, actor := range actors {
		responses[i] = toActorResponse(actor)
	}

	return responses
}
