package meli

// CategoryRef is an entry of GET /sites/{site}/categories.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Item is a listing as returned by both /sites/{site}/search results and
// GET /items/{id}. Search results carry Address; item details carry
// SellerAddress and Pictures.
type Item struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Price         float64            `json:"price"`
	CurrencyID    *string            `json:"currency_id"`
	Thumbnail     *string            `json:"thumbnail"`
	Permalink     *string            `json:"permalink"`
	Condition     *string            `json:"condition"`
	Pictures      []ItemPicture      `json:"pictures,omitempty"`
	Address       *ItemAddress       `json:"address,omitempty"`
	SellerAddress *ItemSellerAddress `json:"seller_address,omitempty"`
}

// ItemPicture holds MercadoLibre picture information.
type ItemPicture struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	SecureURL string `json:"secure_url,omitempty"`
}

// ItemAddress is the item-level location on search results.
type ItemAddress struct {
	StateName *string `json:"state_name"`
	CityName  *string `json:"city_name"`
}

// ItemSellerAddress is the seller location on item details.
type ItemSellerAddress struct {
	City  *Place `json:"city"`
	State *Place `json:"state"`
}

// Place is an id/name pair used by seller address parts.
type Place struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// ItemDescription is the body of GET /items/{id}/description.
type ItemDescription struct {
	Text      *string `json:"text"`
	PlainText *string `json:"plain_text"`
}

// APIError is the error body MercadoLibre returns on non-2xx responses.
type APIError struct {
	Message string `json:"message"`
	Err     string `json:"error"`
	Status  int    `json:"status"`
}
