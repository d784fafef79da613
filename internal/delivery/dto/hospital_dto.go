package dto

// Request DTOs

type BookingSelectionRequest struct {
	DateID   string `json:"date_id" validate:"required,max=32"`
	TimeSlot string `json:"time_slot" validate:"required,max=32"`
}

// Response DTOs

type HospitalReviewResponse struct {
	ID       int    `json:"id"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
	Reviewer string `json:"reviewer"`
}

type HospitalResponse struct {
	Name        string                   `json:"name"`
	Credentials string                   `json:"credentials"`
	Experience  string                   `json:"experience"`
	Rating      float64                  `json:"rating"`
	Bio         string                   `json:"bio"`
	Reviews     []HospitalReviewResponse `json:"reviews"`
	VisitName   string                   `json:"visit_name"`
	Fee         string                   `json:"fee"`
	WaitTime    string                   `json:"wait_time"`
	Layout      string                   `json:"layout"`
}

type AvailableDateResponse struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	SlotsAvailable int    `json:"slots_available"`
	Summary        string `json:"summary"`
}

type TimeSlotGroupResponse struct {
	Key   string   `json:"key"`
	Label string   `json:"label"`
	Slots []string `json:"slots"`
}

type AvailabilityResponse struct {
	Hospital  HospitalResponse        `json:"hospital"`
	Dates     []AvailableDateResponse `json:"dates"`
	TimeSlots []TimeSlotGroupResponse `json:"time_slots"`
}

// BookingParams are the route params of the hospital booking screen.
type BookingParams struct {
	HospitalName        string `json:"HospitalName"`
	HospitalCredentials string `json:"HospitalCredentials"`
	VisitName           string `json:"hospitalName"`
	Date                string `json:"date"`
	TimeSlot            string `json:"timeSlot"`
	Fee                 string `json:"fee"`
}

type BookingSelectionResponse struct {
	Navigation Navigation `json:"navigation"`
}
