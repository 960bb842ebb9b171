package api

type Metadata struct {
	CurrentPage  int `json:"current_page"`
	FirstPage    int `json:"first_page"`
	LastPage     int `json:"last_page"`
	PageSize     int `json:"page_size"`
	TotalRecords int `json:"total_records"`
}

type CreateTheatreHallRequest struct {
	Name       string `json:"name" validate:"required,max=255"`
	Rows       int    `json:"rows" validate:"required,min=1"`
	SeatsInRow int    `json:"seats_in_row" validate:"required,min=1"`
}

type TheatreHallResponse struct {
	Id         int    `json:"id"`
	Name       string `json:"name"`
	Rows       int    `json:"rows"`
	SeatsInRow int    `json:"seats_in_row"`
	Capacity   int    `json:"capacity"`
}

type TheatreHallDetailResponse struct {
	TheatreHallResponse
	Performances []PerformanceSummary `json:"performances"`
}

type TheatreHallListResponse struct {
	TheatreHalls []TheatreHallResponse `json:"theatre_halls"`
}

type CreateActorRequest struct {
	FirstName string `json:"first_name" validate:"required,max=255"`
	LastName  string `json:"last_name" validate:"required,max=255"`
}

type ActorResponse struct {
	Id        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

type ActorDetailResponse struct {
	ActorResponse
	Plays []string `json:"plays"`
}

type ActorListResponse struct {
	Actors   []ActorResponse `json:"actors"`
	Metadata *Metadata       `json:"metadata,omitempty"`
}

type CreateGenreRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

type GenreResponse struct {
	Id   int    `json:"id"`
	Name string `json:"name"`
}

type GenreDetailResponse struct {
	GenreResponse
	Plays []string `json:"plays"`
}

type GenreListResponse struct {
	Genres []GenreResponse `json:"genres"`
}

type CreatePlayRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	GenreIds    []int  `json:"genres" validate:"omitempty,dive,min=1"`
	ActorIds    []int  `json:"actors" validate:"omitempty,dive,min=1"`
}

type PlayResponse struct {
	Id          int             `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Genres      []GenreResponse `json:"genres"`
	Actors      []ActorResponse `json:"actors"`
}

type PlayListResponse struct {
	Plays []PlayResponse `json:"plays"`
}
