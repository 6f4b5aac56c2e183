// Package format renders products for display: a currency string built from
// the price and currency code, and a "city, state" address string.
package format

import (
	"strings"

	"github.com/dustin/go-humanize"

	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

// Currency is a recognized display currency.
type Currency string

// Recognized currencies. ARS is first and is the fallback for unknown codes.
const (
	CurrencyARS Currency = "ARS"
	CurrencyUSD Currency = "USD"
)

// amountPattern groups thousands with '.' and uses ',' for two decimals.
const amountPattern = "#.###,##"

// nullText is rendered for missing address parts.
const nullText = "null"

// ParseCurrency maps a currency code to a Currency. Unrecognized or empty
// codes map to ARS.
func ParseCurrency(code string) Currency {
	switch Currency(code) {
	case CurrencyUSD:
		return CurrencyUSD
	case CurrencyARS:
		return CurrencyARS
	default:
		return CurrencyARS
	}
}

// Symbol returns the display symbol for c.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyUSD:
		return "US$"
	case CurrencyARS:
		return "$"
	default:
		return "$"
	}
}

// Amount renders v with '.' grouping and at most two decimals after ','.
// Trailing fractional zeros are dropped, so 1500.50 becomes "1.500,5" and
// 1500 becomes "1.500".
func Amount(v float64) string {
	s := humanize.FormatFloat(amountPattern, v)
	if strings.Contains(s, ",") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ",")
	}
	if s == "-0" {
		return "0"
	}
	return s
}

// FormatCurrency returns "<symbol> <amount>" for p.
func FormatCurrency(p *domain.Product) string {
	return ParseCurrency(p.Currency).Symbol() + " " + Amount(p.Price)
}

// FormatAddress returns "<city>, <state>" from the item's own address, or
// from the seller address when the item has none. Missing parts render as
// "null"; nothing is validated.
func FormatAddress(p *domain.Product) string {
	if a := p.Address; a != nil {
		return orNull(a.City) + ", " + orNull(a.State)
	}

	city, state := nullText, nullText
	if sa := p.SellerAddress; sa != nil {
		if sa.City != nil {
			city = sa.City.Name
		}
		if sa.State != nil {
			state = sa.State.Name
		}
	}
	return city + ", " + state
}

// Product returns a copy of p with both display fields filled.
func Product(p domain.Product) domain.Product {
	p.FormattedPrice = FormatCurrency(&p)
	p.FormattedAddress = FormatAddress(&p)
	return p
}

// Products formats every element of ps into a new slice.
func Products(ps []domain.Product) []domain.Product {
	out := make([]domain.Product, 0, len(ps))
	for i := range ps {
		out = append(out, Product(ps[i]))
	}
	return out
}

func orNull(s *string) string {
	if s == nil {
		return nullText
	}
	return *s
}
