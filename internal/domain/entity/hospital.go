package entity

import "slices"

// Hospital is the sample hospital shown on the booking screen.
type Hospital struct {
	Name        string
	Credentials string
	Experience  string
	Rating      float64
	Bio         string
	Reviews     []HospitalReview
	Visit       HospitalVisit
}

type HospitalReview struct {
	ID       int
	Rating   int
	Text     string
	Reviewer string
}

type HospitalVisit struct {
	Name     string
	Fee      string
	WaitTime string
	Layout   string
}

// AvailableDate is a bookable day and how many slots it has left.
type AvailableDate struct {
	ID             string
	Label          string
	SlotsAvailable int
}

// TimeSlotGroup groups slots by part of the day.
type TimeSlotGroup struct {
	Key   string
	Label string
	Slots []string
}

// HospitalAvailability is hardcoded sample data; no reservation happens.
type HospitalAvailability struct {
	Hospital  Hospital
	Dates     []AvailableDate
	TimeSlots []TimeSlotGroup
}

// FindDate returns the date with the given id, or nil.
func (a *HospitalAvailability) FindDate(id string) *AvailableDate {
	for i := range a.Dates {
		if a.Dates[i].ID == id {
			return &a.Dates[i]
		}
	}
	return nil
}

// HasTimeSlot reports whether slot appears in any group.
func (a *HospitalAvailability) HasTimeSlot(slot string) bool {
	for _, group := range a.TimeSlots {
		if slices.Contains(group.Slots, slot) {
			return true
		}
	}
	return false
}

// SampleAvailability returns a fresh copy of the sample hospital data.
func SampleAvailability() *HospitalAvailability {
	return &HospitalAvailability{
		Hospital: Hospital{
			Name:        "Apollo Multispeciality Hospital",
			Credentials: "HSR Layout",
			Experience:  "Trusted Since 1983",
			Rating:      4.5,
			Bio: "Apollo Hospitals is a leading healthcare provider in India, founded in 1983. " +
				"It offers surgery, diagnostics, and specialized care in fields like cardiology and oncology.",
			Reviews: []HospitalReview{
				{ID: 1, Rating: 5, Text: "Very good Hospital", Reviewer: "Mr Donald"},
				{ID: 2, Rating: 5, Text: "Very good Hospital", Reviewer: "Mr Donald"},
				{ID: 3, Rating: 5, Text: "Very good Hospital", Reviewer: "Mr Donald"},
			},
			Visit: HospitalVisit{
				Name:     "Visit Hospital",
				Fee:      "$499 fee",
				WaitTime: "Max 15 min wait",
				Layout:   "Hsr Layout",
			},
		},
		Dates: []AvailableDate{
			{ID: "today", Label: "Today", SlotsAvailable: 0},
			{ID: "tomorrow", Label: "Tomorrow", SlotsAvailable: 2},
			{ID: "dayAfter", Label: "Mon, 2 feb", SlotsAvailable: 2},
		},
		TimeSlots: []TimeSlotGroup{
			{Key: "morning", Label: "Morning (1 slot)", Slots: []string{"10:30 AM"}},
			{Key: "afternoon", Label: "Afternoon (1 slot)", Slots: []string{"12:30 PM"}},
		},
	}
}
