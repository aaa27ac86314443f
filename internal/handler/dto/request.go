package dto

type RegisterPlotRequest struct {
	// ID re-registers an existing plot (capacity/metadata update) when set.
	ID           string         `json:"id" binding:"omitempty,uuid"`
	Name         string         `json:"name" binding:"required"`
	OwnerName    string         `json:"owner_name" binding:"required"`
	RegNumber    string         `json:"reg_number" binding:"required"`
	SurveyNumber string         `json:"survey_number" binding:"required"`
	DocumentRef  string         `json:"document_ref" binding:"required"`
	Location     Location       `json:"location"`
	Capacity     map[string]int `json:"capacity" binding:"required"`
	Occupied     map[string]int `json:"occupied"`
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type StartBookingRequest struct {
	PlotID       string `json:"plot_id" binding:"required,uuid"`
	VehicleClass string `json:"vehicle_class" binding:"required"`
}

type ChoosePlanRequest struct {
	Plan  string `json:"plan" binding:"required"`
	Hours int    `json:"hours"`
}
