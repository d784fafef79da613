package converter

import (
	"doctor-directory-bff/internal/delivery/dto"
	"doctor-directory-bff/internal/domain/entity"
	"doctor-directory-bff/internal/service"
)

// DoctorToCard converts a DoctorRecord and its displayed count to a card DTO
func DoctorToCard(doctor *entity.DoctorRecord, count int, selectedSlot string) dto.DoctorCardResponse {
	return dto.DoctorCardResponse{
		Email:           doctor.Email,
		DoctorName:      doctor.DoctorName,
		Specialization:  doctor.Specialization,
		Experience:      doctor.Experience,
		ProfilePhoto:    doctor.ProfilePhoto,
		Description:     doctor.Description,
		Fees:            doctor.Fees,
		FeeLabel:        doctor.FeeLabel(),
		Rating:          float64(doctor.Rating),
		SubscriberCount: count,
		Slots:           doctor.Slots,
		SelectedSlot:    selectedSlot,
	}
}

// SnapshotToResponse converts a view snapshot to DirectoryViewResponse DTO
func SnapshotToResponse(snap service.ViewSnapshot) *dto.DirectoryViewResponse {
	cards := make([]dto.DoctorCardResponse, len(snap.Doctors))
	for i := range snap.Doctors {
		doctor := &snap.Doctors[i]
		cards[i] = DoctorToCard(doctor, snap.Counts[doctor.Email], snap.SelectedSlots[doctor.Email])
	}

	response := &dto.DirectoryViewResponse{
		ID:      snap.ID,
		Loading: snap.Loading,
		Doctors: cards,
		Total:   len(cards),
	}
	if !snap.LoadedAt.IsZero() {
		loadedAt := snap.LoadedAt
		response.LoadedAt = &loadedAt
	}
	return response
}

// DoctorToViewModel merges a record with the count shown on the detail screen
func DoctorToViewModel(doctor entity.DoctorRecord, subscriberCount int) dto.SubscriptionViewModel {
	return dto.SubscriptionViewModel{
		DoctorRecord:    doctor,
		SubscriberCount: subscriberCount,
	}
}
