// Package notify delivers favorite price change notifications.
package notify

import (
	"context"
)

// PriceChange describes a favorite whose price moved during a refresh.
type PriceChange struct {
	ID        string
	Title     string
	Permalink string
	Thumbnail string
	Currency  string
	OldPrice  float64
	NewPrice  float64
}

// Drop reports whether the price went down.
func (c *PriceChange) Drop() bool {
	return c.NewPrice < c.OldPrice
}

// Percent returns the relative change from the old price, negative for
// drops. A zero old price yields 0.
func (c *PriceChange) Percent() float64 {
	if c.OldPrice == 0 {
		return 0
	}
	return (c.NewPrice - c.OldPrice) / c.OldPrice * 100
}

// Notifier sends price change notifications.
type Notifier interface {
	SendPriceChange(ctx context.Context, change *PriceChange) error
	SendBatch(ctx context.Context, changes []PriceChange) error
}
