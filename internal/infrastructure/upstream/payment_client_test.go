package upstream

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentClient_ProcessPayment_SendsNumericAmount(t *testing.T) {
	var body string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/process-payment", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		_, _ = w.Write([]byte(`{"payment_link": "https://pay.example.com/abc"}`))
	}))
	defer ts.Close()

	c, err := NewPaymentClient(ts.URL, time.Second)
	require.NoError(t, err)

	reply, err := c.ProcessPayment(context.Background(), decimal.NewFromInt(2500))
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount": 2500}`, body)
	assert.Equal(t, "https://pay.example.com/abc", reply.PaymentLink)
}

func TestPaymentClient_ProcessPayment_ReplyShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"bare string", `"https://pay.example.com/s"`, "https://pay.example.com/s"},
		{"url field", `{"url": "https://pay.example.com/u"}`, "https://pay.example.com/u"},
		{"empty body", ``, ""},
		{"no link", `{"status": "ok"}`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer ts.Close()

			c, err := NewPaymentClient(ts.URL, time.Second)
			require.NoError(t, err)

			reply, err := c.ProcessPayment(context.Background(), decimal.NewFromInt(850))
			require.NoError(t, err)
			assert.Equal(t, tc.want, reply.PaymentLink)
		})
	}
}

func TestPaymentClient_ProcessPayment_NotOK(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c, err := NewPaymentClient(ts.URL, time.Second)
	require.NoError(t, err)

	reply, err := c.ProcessPayment(context.Background(), decimal.NewFromInt(850))
	assert.ErrorIs(t, err, ErrStatus)
	assert.Nil(t, reply)
}
