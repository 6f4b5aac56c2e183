// Package domain defines the core catalog types for mercado-search.
package domain

import (
	"time"
)

// DefaultSiteID is the MercadoLibre site queried when none is configured.
const DefaultSiteID = "MLA"

// Condition represents the normalized item condition.
type Condition string

// Condition constants.
const (
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
)

// ParseCondition maps a raw API condition to a Condition. Anything that is
// not "used" is treated as new.
func ParseCondition(raw string) Condition {
	switch Condition(raw) {
	case ConditionUsed:
		return ConditionUsed
	default:
		return ConditionNew
	}
}

// Label returns the user-facing label for the condition.
func (c Condition) Label() string {
	switch c {
	case ConditionUsed:
		return "Usado"
	case ConditionNew:
		return "Nuevo"
	default:
		return "Nuevo"
	}
}

// Picture is a product image.
type Picture struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Address is the location attached directly to an item.
type Address struct {
	State *string `json:"state_name,omitempty"`
	City  *string `json:"city_name,omitempty"`
}

// Named wraps a single display name, as used by seller address parts.
type Named struct {
	Name string `json:"name"`
}

// SellerAddress is the seller's location, used when the item has none.
type SellerAddress struct {
	City  *Named `json:"city,omitempty"`
	State *Named `json:"state,omitempty"`
}

// Product is a catalog item. FormattedPrice and FormattedAddress are
// display-only and are filled by pkg/format, never by the remote API.
type Product struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Price         float64        `json:"price"`
	Currency      string         `json:"currency_id,omitempty"`
	Thumbnail     string         `json:"thumbnail,omitempty"`
	Description   string         `json:"description,omitempty"`
	Permalink     string         `json:"permalink,omitempty"`
	Condition     string         `json:"condition,omitempty"`
	Pictures      []Picture      `json:"pictures,omitempty"`
	Address       *Address       `json:"address,omitempty"`
	SellerAddress *SellerAddress `json:"seller_address,omitempty"`

	FormattedPrice   string `json:"formatted_price,omitempty"`
	FormattedAddress string `json:"formatted_address,omitempty"`
}

// NormalizedCondition returns the parsed condition of the product.
func (p *Product) NormalizedCondition() Condition {
	return ParseCondition(p.Condition)
}

// Category is a top-level marketplace category.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SearchPage is one fetched batch of search results plus the server's
// total-count hint.
type SearchPage struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
}

// Description is the long-form text of an item.
type Description struct {
	Text string `json:"text"`
}

// Favorite is a product the user saved for later.
type Favorite struct {
	ID        string    `json:"id"         db:"id"`
	Title     string    `json:"title"      db:"title"`
	Price     float64   `json:"price"      db:"price"`
	Currency  string    `json:"currency"   db:"currency"`
	Thumbnail string    `json:"thumbnail"  db:"thumbnail"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// FavoriteFromProduct builds a Favorite from a fetched product.
func FavoriteFromProduct(p *Product) *Favorite {
	return &Favorite{
		ID:        p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Currency:  p.Currency,
		Thumbnail: p.Thumbnail,
	}
}
