package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/donaldgifford/mercado-search/pkg/format"
	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

func strPtr(s string) *string { return &s }

func TestAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "zero", in: 0, want: "0"},
		{name: "below grouping", in: 999, want: "999"},
		{name: "thousands", in: 1500, want: "1.500"},
		{name: "one decimal kept", in: 1500.5, want: "1.500,5"},
		{name: "two decimals", in: 1234567.89, want: "1.234.567,89"},
		{name: "small fraction", in: 10.05, want: "10,05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, format.Amount(tt.in))
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		currency string
		price    float64
		want     string
	}{
		{name: "pesos", currency: "ARS", price: 25000, want: "$ 25.000"},
		{name: "dollars", currency: "USD", price: 99.99, want: "US$ 99,99"},
		{name: "unknown code falls back to pesos", currency: "BRL", price: 10, want: "$ 10"},
		{name: "missing code falls back to pesos", currency: "", price: 1, want: "$ 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := &domain.Product{Currency: tt.currency, Price: tt.price}
			assert.Equal(t, tt.want, format.FormatCurrency(p))
		})
	}
}

func TestFormatAddress(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		product domain.Product
		want    string
	}{
		{
			name: "item address preferred",
			product: domain.Product{
				Address: &domain.Address{City: strPtr("Palermo"), State: strPtr("Capital Federal")},
				SellerAddress: &domain.SellerAddress{
					City:  &domain.Named{Name: "Rosario"},
					State: &domain.Named{Name: "Santa Fe"},
				},
			},
			want: "Palermo, Capital Federal",
		},
		{
			name: "seller address fallback",
			product: domain.Product{
				SellerAddress: &domain.SellerAddress{
					City:  &domain.Named{Name: "Rosario"},
					State: &domain.Named{Name: "Santa Fe"},
				},
			},
			want: "Rosario, Santa Fe",
		},
		{
			name:    "item address with missing parts",
			product: domain.Product{Address: &domain.Address{City: strPtr("Palermo")}},
			want:    "Palermo, null",
		},
		{
			name:    "no address at all",
			product: domain.Product{},
			want:    "null, null",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, format.FormatAddress(&tt.product))
		})
	}
}

func TestProducts(t *testing.T) {
	t.Parallel()

	in := []domain.Product{
		{ID: "1", Price: 1000, Currency: "ARS"},
		{ID: "2", Price: 5, Currency: "USD"},
	}
	out := format.Products(in)

	assert.Equal(t, "$ 1.000", out[0].FormattedPrice)
	assert.Equal(t, "null, null", out[0].FormattedAddress)
	assert.Equal(t, "US$ 5", out[1].FormattedPrice)
	assert.Empty(t, in[0].FormattedPrice, "input must not be mutated")
}
