package converter

import (
	"fmt"

	"doctor-directory-bff/internal/delivery/dto"
	"doctor-directory-bff/internal/domain/entity"
)

// AvailabilityToResponse converts sample hospital availability to its DTO
func AvailabilityToResponse(a *entity.HospitalAvailability) *dto.AvailabilityResponse {
	h := a.Hospital

	reviews := make([]dto.HospitalReviewResponse, len(h.Reviews))
	for i, r := range h.Reviews {
		reviews[i] = dto.HospitalReviewResponse{ID: r.ID, Rating: r.Rating, Text: r.Text, Reviewer: r.Reviewer}
	}

	dates := make([]dto.AvailableDateResponse, len(a.Dates))
	for i, d := range a.Dates {
		summary := "No slot today"
		if d.SlotsAvailable > 0 {
			summary = fmt.Sprintf("%d slots Available", d.SlotsAvailable)
		}
		dates[i] = dto.AvailableDateResponse{
			ID:             d.ID,
			Label:          d.Label,
			SlotsAvailable: d.SlotsAvailable,
			Summary:        summary,
		}
	}

	groups := make([]dto.TimeSlotGroupResponse, len(a.TimeSlots))
	for i, g := range a.TimeSlots {
		groups[i] = dto.TimeSlotGroupResponse{Key: g.Key, Label: g.Label, Slots: g.Slots}
	}

	return &dto.AvailabilityResponse{
		Hospital: dto.HospitalResponse{
			Name:        h.Name,
			Credentials: h.Credentials,
			Experience:  h.Experience,
			Rating:      h.Rating,
			Bio:         h.Bio,
			Reviews:     reviews,
			VisitName:   h.Visit.Name,
			Fee:         h.Visit.Fee,
			WaitTime:    h.Visit.WaitTime,
			Layout:      h.Visit.Layout,
		},
		Dates:     dates,
		TimeSlots: groups,
	}
}
