package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"doctor-directory-bff/internal/domain/gateway"

	"github.com/shopspring/decimal"
)

// PaymentClient calls the process-payment endpoint.
type PaymentClient struct {
	*jsonClient
}

var _ gateway.PaymentGateway = (*PaymentClient)(nil)

func NewPaymentClient(base string, timeout time.Duration) (*PaymentClient, error) {
	c, err := newJSONClient(base, timeout)
	if err != nil {
		return nil, err
	}
	return &PaymentClient{jsonClient: c}, nil
}

// amount goes out as a JSON number, not decimal's default quoted string.
type processPaymentRequest struct {
	Amount json.Number `json:"amount"`
}

type processPaymentResponse struct {
	PaymentLink string `json:"payment_link"`
	URL         string `json:"url"`
}

// ProcessPayment posts the amount. The reply body is optional and may be an
// object carrying payment_link (or url) or a bare JSON string.
func (c *PaymentClient) ProcessPayment(ctx context.Context, amount decimal.Decimal) (*gateway.PaymentReply, error) {
	var raw json.RawMessage
	req := processPaymentRequest{Amount: json.Number(amount.String())}
	if err := c.post(ctx, req, &raw, "process-payment"); err != nil {
		return nil, err
	}

	reply := &gateway.PaymentReply{}
	if len(raw) == 0 {
		return reply, nil
	}

	var link string
	if err := json.Unmarshal(raw, &link); err == nil {
		reply.PaymentLink = link
		return reply, nil
	}

	var resp processPaymentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode payment response: %w", err)
	}
	reply.PaymentLink = resp.PaymentLink
	if reply.PaymentLink == "" {
		reply.PaymentLink = resp.URL
	}
	return reply, nil
}
