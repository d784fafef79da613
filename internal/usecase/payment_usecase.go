package usecase

import (
	"context"
	"errors"

	"doctor-directory-bff/internal/converter"
	"doctor-directory-bff/internal/delivery/dto"
	"doctor-directory-bff/internal/delivery/http/middleware"
	"doctor-directory-bff/internal/domain/entity"
	"doctor-directory-bff/internal/domain/gateway"
	"doctor-directory-bff/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	PaymentProcessingTitle   = "Processing Payment"
	PaymentProcessingMessage = "Redirecting to payment gateway..."
	PaymentFailedTitle       = "Payment Failed"
)

var (
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	ErrPlanNotFound  = errors.New("plan not found")
	ErrPaymentFailed = errors.New("payment failed")
)

type PaymentUsecase interface {
	ListPlans(ctx context.Context) *dto.PlanListResponse
	BuyPlan(ctx context.Context, planID string) (*dto.PaymentResponse, error)
	InitiatePayment(ctx context.Context, req *dto.PaymentRequest) (*dto.PaymentResponse, error)
}

type paymentUsecase struct {
	log            *logrus.Logger
	paymentGateway gateway.PaymentGateway
	auditService   service.AuditService
}

func NewPaymentUsecase(
	log *logrus.Logger,
	paymentGateway gateway.PaymentGateway,
	auditService service.AuditService,
) PaymentUsecase {
	return &paymentUsecase{
		log:            log,
		paymentGateway: paymentGateway,
		auditService:   auditService,
	}
}

func (u *paymentUsecase) ListPlans(ctx context.Context) *dto.PlanListResponse {
	plans := converter.PlansToResponses(entity.Plans)
	return &dto.PlanListResponse{
		Plans: plans,
		Total: len(plans),
	}
}

// BuyPlan starts a payment for the plan's discounted price.
func (u *paymentUsecase) BuyPlan(ctx context.Context, planID string) (*dto.PaymentResponse, error) {
	plan := entity.FindPlan(planID)
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	return u.initiate(ctx, plan.NewPrice, plan.ID)
}

func (u *paymentUsecase) InitiatePayment(ctx context.Context, req *dto.PaymentRequest) (*dto.PaymentResponse, error) {
	return u.initiate(ctx, req.Amount, "")
}

// initiate calls the payment processor. On failure the response still
// carries the notice to show, alongside ErrPaymentFailed.
func (u *paymentUsecase) initiate(ctx context.Context, amount decimal.Decimal, planID string) (*dto.PaymentResponse, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	userEmail, _ := middleware.GetUserEmailFromContext(ctx)
	details := map[string]interface{}{
		"amount": amount.String(),
	}
	if planID != "" {
		details["plan_id"] = planID
	}

	reply, err := u.paymentGateway.ProcessPayment(ctx, amount)
	if err != nil {
		u.log.Errorf("Payment of %s failed: %+v", amount, err)
		details["accepted"] = false
		u.audit(ctx, userEmail, planID, details)

		return &dto.PaymentResponse{
			Amount: amount,
			Notice: &dto.Notice{Title: PaymentFailedTitle, Message: err.Error()},
		}, ErrPaymentFailed
	}

	if reply.PaymentLink == "" {
		u.log.Warnf("Payment of %s accepted without a payment link", amount)
	}
	details["accepted"] = true
	u.audit(ctx, userEmail, planID, details)

	return &dto.PaymentResponse{
		Amount:      amount,
		Notice:      &dto.Notice{Title: PaymentProcessingTitle, Message: PaymentProcessingMessage},
		RedirectURL: reply.PaymentLink,
	}, nil
}

func (u *paymentUsecase) audit(ctx context.Context, userEmail, planID string, details map[string]interface{}) {
	if err := u.auditService.Record(ctx, userEmail, entity.AuditActionPaymentInitiate, "plan", planID, details); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
}
