package dto

import (
	"time"

	"github.com/shravanmandadapu71-sys/parkx/internal/domain"
)

type PlotResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	OwnerName    string         `json:"owner_name"`
	RegNumber    string         `json:"reg_number"`
	SurveyNumber string         `json:"survey_number"`
	Location     Location       `json:"location"`
	Capacity     map[string]int `json:"capacity"`
	Occupied     map[string]int `json:"occupied"`
	Retired      bool           `json:"retired"`
	CreatedAt    string         `json:"created_at"`
}

type AvailabilityResponse struct {
	PlotID       string   `json:"plot_id"`
	Name         string   `json:"name"`
	Location     Location `json:"location"`
	FreeSlots    int      `json:"free_slots"`
	VehicleClass string   `json:"vehicle_class"`
}

type BookingResponse struct {
	ID           string `json:"id"`
	PlotID       string `json:"plot_id"`
	PlotName     string `json:"plot_name"`
	VehicleClass string `json:"vehicle_class"`
	Plan         string `json:"plan,omitempty"`
	PlanHours    int    `json:"plan_hours,omitempty"`
	Price        int64  `json:"price,omitempty"`
	State        string `json:"state"`
	CreatedAt    string `json:"created_at"`
	ReservedAt   string `json:"reserved_at,omitempty"`
	ActivatedAt  string `json:"activated_at,omitempty"`
	ExpiresAt    string `json:"expires_at,omitempty"`
}

type TicketResponse struct {
	BookingID    string `json:"booking_id"`
	PlotName     string `json:"plot_name"`
	VehicleClass string `json:"vehicle_class"`
	Plan         string `json:"plan"`
	PlanHours    int    `json:"plan_hours,omitempty"`
	Price        int64  `json:"price"`
	IssuedAt     string `json:"issued_at"`
	ExpiresAt    string `json:"expires_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToPlotResponse(p *domain.Plot) PlotResponse {
	return PlotResponse{
		ID:           p.ID,
		Name:         p.Name,
		OwnerName:    p.OwnerName,
		RegNumber:    p.RegNumber,
		SurveyNumber: p.SurveyNumber,
		Location:     Location{Lat: p.Location.Lat, Lng: p.Location.Lng},
		Capacity:     classMap(p.Capacity),
		Occupied:     classMap(p.Occupied),
		Retired:      p.Retired,
		CreatedAt:    p.CreatedAt.Format(time.RFC3339),
	}
}

func ToAvailabilityResponse(a domain.PlotAvailability) AvailabilityResponse {
	return AvailabilityResponse{
		PlotID:       a.PlotID,
		Name:         a.Name,
		Location:     Location{Lat: a.Location.Lat, Lng: a.Location.Lng},
		FreeSlots:    a.FreeSlots,
		VehicleClass: string(a.Class),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		PlotID:       b.PlotID,
		PlotName:     b.PlotName,
		VehicleClass: string(b.Vehicle),
		Plan:         string(b.Plan.Kind),
		PlanHours:    b.Plan.Hours,
		Price:        b.Price,
		State:        string(b.State),
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		ReservedAt:   optionalTime(b.ReservedAt),
		ActivatedAt:  optionalTime(b.ActivatedAt),
		ExpiresAt:    optionalTime(b.ExpiresAt),
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		BookingID:    t.BookingID,
		PlotName:     t.PlotName,
		VehicleClass: string(t.Vehicle),
		Plan:         string(t.Plan.Kind),
		PlanHours:    t.Plan.Hours,
		Price:        t.Price,
		IssuedAt:     t.IssuedAt.Format(time.RFC3339),
		ExpiresAt:    t.ExpiresAt.Format(time.RFC3339),
	}
}

func classMap(m map[domain.VehicleClass]int) map[string]int {
	out := make(map[string]int, len(m))
	for class, n := range m {
		out[string(class)] = n
	}
	return out
}

func optionalTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
