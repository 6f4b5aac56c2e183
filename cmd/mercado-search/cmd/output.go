package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	apiclient "github.com/donaldgifford/mercado-search/internal/api/client"
	"github.com/donaldgifford/mercado-search/internal/screen"
	"github.com/donaldgifford/mercado-search/pkg/format"
	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printCategoriesTable(categories []domain.Category) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\n")
	for _, c := range categories {
		tw.writef("%s\t%s\n", c.ID, c.Name)
	}
	return tw.finish()
}

func printProductsTable(products []domain.Product) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTITLE\tPRICE\tCONDITION\tLOCATION\n")
	for i := range products {
		p := &products[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			p.ID,
			truncate(p.Title, 50),
			p.FormattedPrice,
			p.NormalizedCondition().Label(),
			p.FormattedAddress,
		)
	}
	return tw.finish()
}

func printSearchFooter(state screen.SearchState) {
	if total, ok := state.KnownTotal(); ok {
		fmt.Printf("\nShowing %s of %s results.\n",
			humanize.Comma(int64(len(state.Results))), humanize.Comma(int64(total)))
	}
	if state.HasMore() {
		fmt.Println("Use --pages to load more.")
	}
}

func printProductDetail(p *domain.Product) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", p.ID)
	tw.writef("Title:\t%s\n", p.Title)
	tw.writef("Price:\t%s\n", p.FormattedPrice)
	tw.writef("Condition:\t%s\n", p.NormalizedCondition().Label())
	tw.writef("Location:\t%s\n", p.FormattedAddress)
	if p.Permalink != "" {
		tw.writef("Link:\t%s\n", p.Permalink)
	}
	tw.writef("Pictures:\t%d\n", len(p.Pictures))
	if err := tw.finish(); err != nil {
		return err
	}
	if p.Description != "" {
		fmt.Printf("\n%s\n", p.Description)
	}
	return nil
}

func printFavoritesTable(favorites []domain.Favorite) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTITLE\tPRICE\tUPDATED\n")
	for i := range favorites {
		f := &favorites[i]
		tw.writef("%s\t%s\t%s\t%s\n",
			f.ID,
			truncate(f.Title, 50),
			favoritePrice(f),
			humanize.Time(f.UpdatedAt),
		)
	}
	return tw.finish()
}

func printFavoriteDetail(f *domain.Favorite) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", f.ID)
	tw.writef("Title:\t%s\n", f.Title)
	tw.writef("Price:\t%s\n", favoritePrice(f))
	tw.writef("Saved:\t%s\n", humanize.Time(f.CreatedAt))
	tw.writef("Updated:\t%s\n", humanize.Time(f.UpdatedAt))
	return tw.finish()
}

func printRefreshResult(r *apiclient.RefreshResult) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Checked:\t%d\n", r.Checked)
	tw.writef("Updated:\t%d\n", r.Updated)
	tw.writef("Price changes:\t%d\n", r.PriceChanges)
	tw.writef("Failed:\t%d\n", r.Failed)
	return tw.finish()
}

func printQuota(q *apiclient.Quota) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Daily limit:\t%s\n", humanize.Comma(q.DailyLimit))
	tw.writef("Used:\t%s\n", humanize.Comma(q.DailyUsed))
	tw.writef("Remaining:\t%s\n", humanize.Comma(q.Remaining))
	if !q.ResetAt.IsZero() {
		tw.writef("Resets:\t%s\n", humanize.Time(q.ResetAt))
	}
	return tw.finish()
}

// favoritePrice renders a stored price with the same rules as search
// results.
func favoritePrice(f *domain.Favorite) string {
	return format.FormatCurrency(&domain.Product{Price: f.Price, Currency: f.Currency})
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
