package usecase

import (
	"context"
	"errors"

	"doctor-directory-bff/internal/converter"
	"doctor-directory-bff/internal/delivery/dto"
	"doctor-directory-bff/internal/delivery/http/middleware"
	"doctor-directory-bff/internal/domain/entity"
	"doctor-directory-bff/internal/service"

	"github.com/sirupsen/logrus"
)

// HospitalBookingRoute is the screen opened after a date and slot are picked.
const HospitalBookingRoute = "BookHospitals"

var (
	ErrDateNotFound     = errors.New("date not found")
	ErrNoSlotsOnDate    = errors.New("no slots available on this date")
	ErrTimeSlotNotFound = errors.New("time slot not found")
)

type HospitalBookingUsecase interface {
	GetAvailability(ctx context.Context) *dto.AvailabilityResponse
	SelectBooking(ctx context.Context, req *dto.BookingSelectionRequest) (*dto.BookingSelectionResponse, error)
}

type hospitalBookingUsecase struct {
	log          *logrus.Logger
	auditService service.AuditService
}

func NewHospitalBookingUsecase(log *logrus.Logger, auditService service.AuditService) HospitalBookingUsecase {
	return &hospitalBookingUsecase{
		log:          log,
		auditService: auditService,
	}
}

func (u *hospitalBookingUsecase) GetAvailability(ctx context.Context) *dto.AvailabilityResponse {
	return converter.AvailabilityToResponse(entity.SampleAvailability())
}

// SelectBooking validates the selection against the sample availability.
// Nothing is reserved; the booking screen takes over from here.
func (u *hospitalBookingUsecase) SelectBooking(ctx context.Context, req *dto.BookingSelectionRequest) (*dto.BookingSelectionResponse, error) {
	availability := entity.SampleAvailability()

	date := availability.FindDate(req.DateID)
	if date == nil {
		return nil, ErrDateNotFound
	}
	if date.SlotsAvailable == 0 {
		return nil, ErrNoSlotsOnDate
	}
	if !availability.HasTimeSlot(req.TimeSlot) {
		return nil, ErrTimeSlotNotFound
	}

	hospital := availability.Hospital

	userEmail, _ := middleware.GetUserEmailFromContext(ctx)
	if err := u.auditService.Record(ctx, userEmail, entity.AuditActionBookingSelect, "hospital", hospital.Name, map[string]interface{}{
		"date":      date.Label,
		"time_slot": req.TimeSlot,
	}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return &dto.BookingSelectionResponse{
		Navigation: dto.Navigation{
			Route: HospitalBookingRoute,
			Params: dto.BookingParams{
				HospitalName:        hospital.Name,
				HospitalCredentials: hospital.Credentials,
				VisitName:           hospital.Visit.Name,
				Date:                date.Label,
				TimeSlot:            req.TimeSlot,
				Fee:                 hospital.Visit.Fee,
			},
		},
	}, nil
}
