package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodUPI      PaymentMethod = "upi"
	PaymentMethodRazorpay PaymentMethod = "razorpay"
)

// PaymentDetails carries the method-specific fields the customer entered.
type PaymentDetails struct {
	Method     PaymentMethod `json:"method"`
	CardNumber string        `json:"card_number"`
	ExpiryDate string        `json:"expiry_date"`
	CVV        string        `json:"cvv"`
	CardName   string        `json:"card_name"`
	UPIID      string        `json:"upi_id"`
}

// Receipt is what a settled payment hands back.
type Receipt struct {
	Reference string
	SettledAt time.Time
}

// PaymentProcessor settles a payment for the given amount. A real gateway
// implementation slots in here without touching the checkout state
// machine; the reference implementation simulates settlement with a fixed
// delay.
type PaymentProcessor interface {
	Settle(ctx context.Context, amount int64, details PaymentDetails) (Receipt, error)
}

// SimulatedProcessor stands in for a gateway. It waits for Delay and then
// succeeds, unless the context is cancelled first.
type SimulatedProcessor struct {
	Delay time.Duration
}

func (p *SimulatedProcessor) Settle(ctx context.Context, amount int64, details PaymentDetails) (Receipt, error) {
	select {
	case <-time.After(p.Delay):
	case <-ctx.Done():
		return Receipt{}, ctx.Err()
	}
	return Receipt{
		Reference: "SIM-" + uuid.NewString(),
		SettledAt: time.Now(),
	}, nil
}
