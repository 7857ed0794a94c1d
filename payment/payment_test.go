package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	cases := map[float64]int64{
		0:     0,
		1:     100,
		19.99: 1999,
		250.5: 25050,
	}
	for in, want := range cases {
		assert.Equal(t, want, MinorUnits(in), "amount %v", in)
	}
}

func TestNewStripeGatewayLowercasesCurrency(t *testing.T) {
	g := NewStripeGateway("sk_test_x", "INR")
	assert.Equal(t, "inr", g.currency)
	assert.NotNil(t, g.api.PaymentIntents)
}
