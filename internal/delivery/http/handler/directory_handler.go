package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"doctor-directory-bff/internal/delivery/dto"
	"doctor-directory-bff/internal/service"
	"doctor-directory-bff/internal/usecase"
	"doctor-directory-bff/pkg/response"
	"doctor-directory-bff/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DirectoryHandler struct {
	directoryUsecase usecase.DoctorDirectoryUsecase
	validator        *validator.CustomValidator
}

func NewDirectoryHandler(directoryUsecase usecase.DoctorDirectoryUsecase, validator *validator.CustomValidator) *DirectoryHandler {
	return &DirectoryHandler{
		directoryUsecase: directoryUsecase,
		validator:        validator,
	}
}

// OpenView mounts a directory view. ?wait=true blocks until the first load settles.
func (h *DirectoryHandler) OpenView(w http.ResponseWriter, r *http.Request) {
	wait := r.URL.Query().Get("wait") == "true"

	view, err := h.directoryUsecase.OpenView(r.Context(), wait)
	if err != nil {
		response.InternalServerError(w, "Failed to open directory view")
		return
	}

	response.Success(w, http.StatusCreated, "Directory view opened", view)
}

func (h *DirectoryHandler) GetView(w http.ResponseWriter, r *http.Request) {
	viewID, ok := h.viewID(w, r)
	if !ok {
		return
	}

	view, err := h.directoryUsecase.GetView(r.Context(), viewID)
	if err != nil {
		writeDirectoryError(w, err, "Failed to get directory view")
		return
	}

	response.Success(w, http.StatusOK, "Directory view retrieved successfully", view)
}

func (h *DirectoryHandler) CloseView(w http.ResponseWriter, r *http.Request) {
	viewID, ok := h.viewID(w, r)
	if !ok {
		return
	}

	if err := h.directoryUsecase.CloseView(r.Context(), viewID); err != nil {
		writeDirectoryError(w, err, "Failed to close directory view")
		return
	}

	response.Success(w, http.StatusOK, "Directory view closed", nil)
}

func (h *DirectoryHandler) ReloadView(w http.ResponseWriter, r *http.Request) {
	viewID, ok := h.viewID(w, r)
	if !ok {
		return
	}

	view, err := h.directoryUsecase.ReloadView(r.Context(), viewID)
	if err != nil {
		writeDirectoryError(w, err, "Failed to reload doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors reloaded", view)
}

func (h *DirectoryHandler) LikeDoctor(w http.ResponseWriter, r *http.Request) {
	viewID, ok := h.viewID(w, r)
	if !ok {
		return
	}
	doctorEmail, ok := h.doctorEmail(w, r)
	if !ok {
		return
	}

	like, err := h.directoryUsecase.LikeDoctor(r.Context(), viewID, doctorEmail)
	if err != nil {
		writeDirectoryError(w, err, "Failed to like doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor liked", like)
}

func (h *DirectoryHandler) SubscribeToDoctor(w http.ResponseWriter, r *http.Request) {
	viewID, ok := h.viewID(w, r)
	if !ok {
		return
	}
	doctorEmail, ok := h.doctorEmail(w, r)
	if !ok {
		return
	}

	outcome, err := h.directoryUsecase.SubscribeToDoctor(r.Context(), viewID, doctorEmail)
	if err != nil {
		writeDirectoryError(w, err, "Failed to subscribe")
		return
	}

	message := "Subscribed successfully"
	if !outcome.Subscribed {
		message = "Subscription not accepted"
	}
	response.Success(w, http.StatusOK, message, outcome)
}

func (h *DirectoryHandler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	viewID, ok := h.viewID(w, r)
	if !ok {
		return
	}
	doctorEmail, ok := h.doctorEmail(w, r)
	if !ok {
		return
	}

	var req dto.SelectSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	view, err := h.directoryUsecase.SelectSlot(r.Context(), viewID, doctorEmail, &req)
	if err != nil {
		writeDirectoryError(w, err, "Failed to select slot")
		return
	}

	response.Success(w, http.StatusOK, "Slot selected", view)
}

func (h *DirectoryHandler) viewID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	viewID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid view ID", nil)
		return uuid.Nil, false
	}
	return viewID, true
}

func (h *DirectoryHandler) doctorEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	email := mux.Vars(r)["email"]
	if err := h.validator.Var(email, "required,email"); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid doctor email", nil)
		return "", false
	}
	return email, true
}

func writeDirectoryError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrViewNotFound):
		response.NotFound(w, "Directory view not found")
	case errors.Is(err, usecase.ErrNotAuthenticated):
		response.Unauthorized(w, usecase.NotLoggedInMessage)
	case errors.Is(err, usecase.ErrSubscriptionInFlight):
		response.Conflict(w, "Subscription already in progress")
	case errors.Is(err, usecase.ErrSubscribeFailed):
		response.BadGateway(w, "Subscription failed, please try again")
	case errors.Is(err, service.ErrDoctorNotLoaded):
		response.NotFound(w, "Doctor not found in this view")
	case errors.Is(err, service.ErrSlotNotOffered):
		response.Error(w, http.StatusBadRequest, "Slot is not offered by this doctor", nil)
	default:
		response.InternalServerError(w, fallback)
	}
}
