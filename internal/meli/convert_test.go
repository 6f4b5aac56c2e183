package meli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mercado-search/internal/meli"
	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

func ptr(s string) *string { return &s }

func TestToProduct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		item  meli.Item
		check func(t *testing.T, p domain.Product)
	}{
		{
			name: "search result with item address",
			item: meli.Item{
				ID:         "MLA1",
				Title:      "Phone A",
				Price:      150000,
				CurrencyID: ptr("ARS"),
				Thumbnail:  ptr("http://img/1.jpg"),
				Condition:  ptr("used"),
				Address:    &meli.ItemAddress{CityName: ptr("Palermo"), StateName: ptr("Capital Federal")},
			},
			check: func(t *testing.T, p domain.Product) {
				t.Helper()
				assert.Equal(t, "MLA1", p.ID)
				assert.Equal(t, "ARS", p.Currency)
				assert.Equal(t, "http://img/1.jpg", p.Thumbnail)
				assert.Equal(t, domain.ConditionUsed, p.NormalizedCondition())
				require.NotNil(t, p.Address)
				assert.Equal(t, "Palermo", *p.Address.City)
				assert.Nil(t, p.SellerAddress)
				assert.Empty(t, p.FormattedPrice)
			},
		},
		{
			name: "item details with seller address and pictures",
			item: meli.Item{
				ID:    "MLA2",
				Title: "Phone B",
				Pictures: []meli.ItemPicture{
					{ID: "p1", URL: "http://img/p1.jpg", SecureURL: "https://img/p1.jpg"},
					{ID: "p2", URL: "http://img/p2.jpg"},
				},
				SellerAddress: &meli.ItemSellerAddress{
					City:  &meli.Place{ID: "c1", Name: "Rosario"},
					State: &meli.Place{ID: "s1", Name: "Santa Fe"},
				},
			},
			check: func(t *testing.T, p domain.Product) {
				t.Helper()
				require.Len(t, p.Pictures, 2)
				assert.Equal(t, "https://img/p1.jpg", p.Pictures[0].URL)
				assert.Equal(t, "http://img/p2.jpg", p.Pictures[1].URL)
				assert.Nil(t, p.Address)
				require.NotNil(t, p.SellerAddress)
				assert.Equal(t, "Rosario", p.SellerAddress.City.Name)
				assert.Equal(t, "Santa Fe", p.SellerAddress.State.Name)
			},
		},
		{
			name: "nullable fields absent",
			item: meli.Item{ID: "MLA3", Title: "Bare"},
			check: func(t *testing.T, p domain.Product) {
				t.Helper()
				assert.Empty(t, p.Currency)
				assert.Empty(t, p.Permalink)
				assert.Nil(t, p.Pictures)
				assert.Nil(t, p.Address)
				assert.Nil(t, p.SellerAddress)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, meli.ToProduct(&tt.item))
		})
	}
}

func TestToCategoriesAndDescription(t *testing.T) {
	t.Parallel()

	cats := meli.ToCategories([]meli.CategoryRef{
		{ID: "MLA1051", Name: "Celulares y Teléfonos"},
		{ID: "MLA1648", Name: "Computación"},
	})
	require.Len(t, cats, 2)
	assert.Equal(t, domain.Category{ID: "MLA1648", Name: "Computación"}, cats[1])

	assert.Equal(t, "hello", meli.ToDescription(&meli.ItemDescription{PlainText: ptr("hello")}).Text)
	assert.Empty(t, meli.ToDescription(&meli.ItemDescription{}).Text)
	assert.Empty(t, meli.ToDescription(nil).Text)
}

func TestToDescription_HTMLFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		desc meli.ItemDescription
		want string
	}{
		{
			name: "plain text wins",
			desc: meli.ItemDescription{Text: ptr("<p>ignored</p>"), PlainText: ptr("Equipo nuevo")},
			want: "Equipo nuevo",
		},
		{
			name: "html flattened when plain text empty",
			desc: meli.ItemDescription{
				Text:      ptr("<p>Equipo <b>nuevo</b></p><ul><li>Garantía 12 meses</li><li>Envío gratis</li></ul>Línea 1<br>Línea 2"),
				PlainText: ptr(""),
			},
			want: "Equipo nuevo\nGarantía 12 meses\nEnvío gratis\nLínea 1\nLínea 2",
		},
		{
			name: "scripts dropped",
			desc: meli.ItemDescription{Text: ptr("<script>alert(1)</script><div>Hola</div>")},
			want: "Hola",
		},
		{
			name: "whitespace only",
			desc: meli.ItemDescription{Text: ptr("  ")},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, meli.ToDescription(&tt.desc).Text)
		})
	}
}
