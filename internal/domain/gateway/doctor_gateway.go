package gateway

import (
	"context"

	"doctor-directory-bff/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// SubscribeReply is the upstream answer to a subscription request.
// Success is nil when the upstream omitted the discriminator.
type SubscribeReply struct {
	Success *bool
	Message string
}

// DoctorGateway is the upstream doctors service.
type DoctorGateway interface {
	FetchDoctors(ctx context.Context) ([]entity.DoctorRecord, error)
	Subscribe(ctx context.Context, doctorEmail, userEmail string) (*SubscribeReply, error)
}

// PaymentReply is the upstream answer to a payment request.
type PaymentReply struct {
	PaymentLink string
}

// PaymentGateway starts a payment and hands back the gateway link.
type PaymentGateway interface {
	ProcessPayment(ctx context.Context, amount decimal.Decimal) (*PaymentReply, error)
}
