package handler

import (
	"errors"
	"net/http"

	"doctor-directory-bff/internal/usecase"
	"doctor-directory-bff/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

func (h *AuditLogHandler) GetMyActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := h.auditLogUsecase.GetMyActivity(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrLoginRequired) {
			response.Unauthorized(w, "")
			return
		}
		response.InternalServerError(w, "Failed to get activity")
		return
	}

	response.Success(w, http.StatusOK, "Activity retrieved successfully", activity)
}
