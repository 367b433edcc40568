package rates

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		name     string
		amount   float64
		currency string
		want     string
	}{
		{name: "usd", amount: 50, currency: "USD", want: "$50.00"},
		{name: "ars uses dollar sign", amount: 50000, currency: "ARS", want: "$50,000.00"},
		{name: "eur", amount: 1234.5, currency: "EUR", want: "€1,234.50"},
		{name: "unknown currency falls back to dollar sign", amount: 10, currency: "XYZ", want: "$10.00"},
		{name: "rounding", amount: 0.005, currency: "USD", want: "$0.01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, FormatPrice(tc.amount, tc.currency))
		})
	}
}
