package domain

import "time"

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Plot struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	OwnerName    string               `json:"owner_name"`
	RegNumber    string               `json:"reg_number"`
	SurveyNumber string               `json:"survey_number"`
	Location     Location             `json:"location"`
	Capacity     map[VehicleClass]int `json:"capacity"`
	Occupied     map[VehicleClass]int `json:"occupied"`
	Retired      bool                 `json:"retired"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// FreeSlots returns remaining capacity for a class, never negative.
func (p *Plot) FreeSlots(class VehicleClass) int {
	free := p.Capacity[class] - p.Occupied[class]
	if free < 0 {
		return 0
	}
	return free
}

// PlotAvailability is the query projection shown to a booking caller:
// one eligible plot annotated with its free-slot count.
type PlotAvailability struct {
	PlotID    string       `json:"plot_id"`
	Name      string       `json:"name"`
	Location  Location     `json:"location"`
	FreeSlots int          `json:"free_slots"`
	Class     VehicleClass `json:"vehicle_class"`
}

// OwnershipCredential carries the land-upload form fields checked by the
// external document verification collaborator.
type OwnershipCredential struct {
	OwnerName    string
	RegNumber    string
	SurveyNumber string
	DocumentRef  string
}

type RegisterPlotInput struct {
	ID           string
	Name         string
	OwnerName    string
	RegNumber    string
	SurveyNumber string
	DocumentRef  string
	Location     Location
	Capacity     map[VehicleClass]int
	// InitialOccupied seeds occupancy on first registration only.
	// Re-registration never touches live counters.
	InitialOccupied map[VehicleClass]int
}

func (in RegisterPlotInput) Credential() OwnershipCredential {
	return OwnershipCredential{
		OwnerName:    in.OwnerName,
		RegNumber:    in.RegNumber,
		SurveyNumber: in.SurveyNumber,
		DocumentRef:  in.DocumentRef,
	}
}
