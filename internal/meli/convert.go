package meli

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

// ToCategories converts API category refs into domain categories.
func ToCategories(refs []CategoryRef) []domain.Category {
	out := make([]domain.Category, 0, len(refs))
	for _, r := range refs {
		out = append(out, domain.Category{ID: r.ID, Name: r.Name})
	}
	return out
}

// ToProducts converts API items into domain products.
func ToProducts(items []Item) []domain.Product {
	products := make([]domain.Product, 0, len(items))
	for i := range items {
		products = append(products, ToProduct(&items[i]))
	}
	return products
}

// ToProduct converts a single API item into a domain product. Display
// fields are left empty.
func ToProduct(item *Item) domain.Product {
	p := domain.Product{
		ID:        item.ID,
		Title:     item.Title,
		Price:     item.Price,
		Currency:  deref(item.CurrencyID),
		Thumbnail: deref(item.Thumbnail),
		Permalink: deref(item.Permalink),
		Condition: deref(item.Condition),
	}

	// Pictures
	if len(item.Pictures) > 0 {
		p.Pictures = make([]domain.Picture, 0, len(item.Pictures))
		for _, pic := range item.Pictures {
			u := pic.SecureURL
			if u == "" {
				u = pic.URL
			}
			p.Pictures = append(p.Pictures, domain.Picture{ID: pic.ID, URL: u})
		}
	}

	// Location
	if a := item.Address; a != nil {
		p.Address = &domain.Address{City: a.CityName, State: a.StateName}
	} else if sa := item.SellerAddress; sa != nil {
		p.SellerAddress = &domain.SellerAddress{}
		if sa.City != nil {
			p.SellerAddress.City = &domain.Named{Name: sa.City.Name}
		}
		if sa.State != nil {
			p.SellerAddress.State = &domain.Named{Name: sa.State.Name}
		}
	}

	return p
}

// ToDescription converts an API description into the domain type. Some
// sellers only fill the HTML body; its text is used when plain_text is
// empty.
func ToDescription(d *ItemDescription) domain.Description {
	if d == nil {
		return domain.Description{}
	}
	if plain := deref(d.PlainText); plain != "" {
		return domain.Description{Text: plain}
	}
	return domain.Description{Text: htmlText(deref(d.Text))}
}

// htmlText flattens an HTML fragment to text, keeping line breaks at
// <br> and block boundaries.
func htmlText(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	doc.Find("script, style").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("p, li, div, h1, h2, h3, h4, tr").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})

	lines := strings.Split(doc.Text(), "\n")
	out := lines[:0]
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
