package api

import "time"

type TicketRequest struct {
	Row           int `json:"row"`
	Seat          int `json:"seat"`
	PerformanceId int `json:"performance" validate:"required,min=1"`
}

type CreateReservationRequest struct {
	Tickets []TicketRequest `json:"tickets" validate:"required,min=1,dive"`
}

type TicketResponse struct {
	Id            int       `json:"id"`
	Row           int       `json:"row"`
	Seat          int       `json:"seat"`
	PerformanceId int       `json:"performance"`
	PlayTitle     string    `json:"play_title,omitempty"`
	HallName      string    `json:"theatre_hall_name,omitempty"`
	ShowTime      time.Time `json:"show_time,omitzero"`
}

type ReservationResponse struct {
	Id        int              `json:"id"`
	Reference string           `json:"reference"`
	Tickets   []TicketResponse `json:"tickets"`
	CreatedAt time.Time        `json:"created_at"`
}

type UserReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Metadata     *Metadata             `json:"metadata,omitempty"`
}

type TicketListResponse struct {
	Tickets  []TicketResponse `json:"tickets"`
	Metadata *Metadata        `json:"metadata,omitempty"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"system_info"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}
