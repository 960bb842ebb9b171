package api

// ListParams are common pagination query parameters.
type ListParams struct {
	Page     *int `validate:"omitempty,min=1"`
	PageSize *int `validate:"omitempty,min=1,max=100"`
}
