package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"doctor-directory-bff/internal/delivery/dto"
	"doctor-directory-bff/internal/usecase"
	"doctor-directory-bff/pkg/response"
	"doctor-directory-bff/pkg/validator"

	"github.com/gorilla/mux"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

func (h *PaymentHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Plans retrieved successfully", h.paymentUsecase.ListPlans(r.Context()))
}

func (h *PaymentHandler) BuyPlan(w http.ResponseWriter, r *http.Request) {
	planID := mux.Vars(r)["id"]

	payment, err := h.paymentUsecase.BuyPlan(r.Context(), planID)
	if err != nil {
		writePaymentError(w, payment, err)
		return
	}

	response.Success(w, http.StatusOK, "Payment initiated", payment)
}

func (h *PaymentHandler) InitiatePayment(w http.ResponseWriter, r *http.Request) {
	var req dto.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.InitiatePayment(r.Context(), &req)
	if err != nil {
		writePaymentError(w, payment, err)
		return
	}

	response.Success(w, http.StatusOK, "Payment initiated", payment)
}

func writePaymentError(w http.ResponseWriter, payment *dto.PaymentResponse, err error) {
	switch {
	case errors.Is(err, usecase.ErrPlanNotFound):
		response.NotFound(w, "Plan not found")
	case errors.Is(err, usecase.ErrInvalidAmount):
		response.ValidationError(w, map[string]string{"amount": "amount must be greater than zero"})
	case errors.Is(err, usecase.ErrPaymentFailed):
		var notice *dto.Notice
		if payment != nil {
			notice = payment.Notice
		}
		response.Error(w, http.StatusBadGateway, usecase.PaymentFailedTitle, notice)
	default:
		response.InternalServerError(w, "Failed to initiate payment")
	}
}
