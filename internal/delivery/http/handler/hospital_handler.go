package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"doctor-directory-bff/internal/delivery/dto"
	"doctor-directory-bff/internal/usecase"
	"doctor-directory-bff/pkg/response"
	"doctor-directory-bff/pkg/validator"
)

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalBookingUsecase
	validator       *validator.CustomValidator
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalBookingUsecase, validator *validator.CustomValidator) *HospitalHandler {
	return &HospitalHandler{
		hospitalUsecase: hospitalUsecase,
		validator:       validator,
	}
}

func (h *HospitalHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Availability retrieved successfully", h.hospitalUsecase.GetAvailability(r.Context()))
}

func (h *HospitalHandler) SelectBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.BookingSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.hospitalUsecase.SelectBooking(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDateNotFound):
			response.NotFound(w, "Date not found")
		case errors.Is(err, usecase.ErrNoSlotsOnDate):
			response.Error(w, http.StatusConflict, "No slots available on this date", nil)
		case errors.Is(err, usecase.ErrTimeSlotNotFound):
			response.Error(w, http.StatusBadRequest, "Time slot not found", nil)
		default:
			response.InternalServerError(w, "Failed to select booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking selected", booking)
}
