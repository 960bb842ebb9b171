package api

import "time"

type CreatePerformanceRequest struct {
	PlayId        int       `json:"play" validate:"required,min=1"`
	TheatreHallId int       `json:"theatre_hall" validate:"required,min=1"`
	ShowTime      time.Time `json:"show_time" validate:"required"`
}

type PerformanceSummary struct {
	Id               int       `json:"id"`
	ShowTime         time.Time `json:"show_time"`
	PlayTitle        string    `json:"play_title"`
	TheatreHallName  string    `json:"theatre_hall_name"`
	HallCapacity     int       `json:"theatre_hall_capacity"`
	TicketsAvailable int       `json:"tickets_available"`
}

type PerformanceListResponse struct {
	Performances []PerformanceSummary `json:"performances"`
}

type TakenPlace struct {
	Row  int `json:"row"`
	Seat int `json:"seat"`
}

type PerformanceDetailResponse struct {
	Id               int          `json:"id"`
	ShowTime         time.Time    `json:"show_time"`
	PlayTitle        string       `json:"play_title"`
	TheatreHallName  string       `json:"theatre_hall_name"`
	Rows             int          `json:"rows"`
	SeatsInRow       int          `json:"seats_in_row"`
	TicketsAvailable int          `json:"tickets_available"`
	TakenPlaces      []TakenPlace `json:"taken_places"`
}
