package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/donaldgifford/mercado-search/internal/metrics"
	"github.com/donaldgifford/mercado-search/pkg/format"
)

const (
	colorGreen = 0x2ECC71 // price drop
	colorRed   = 0xE74C3C // price increase
	colorGray  = 0x95A5A6 // overflow summary
)

// maxEmbeds is Discord's per-message embed limit.
const maxEmbeds = 10

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Thumbnail   *discordThumbnail   `json:"thumbnail,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type discordThumbnail struct {
	URL string `json:"url"`
}

// SendPriceChange sends a single change as a Discord embed.
func (d *DiscordNotifier) SendPriceChange(ctx context.Context, change *PriceChange) error {
	return d.post(ctx, discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(change)},
	})
}

// SendBatch sends up to ten changes as one Discord message. Anything past
// that is summarized in a final embed.
func (d *DiscordNotifier) SendBatch(ctx context.Context, changes []PriceChange) error {
	if len(changes) == 0 {
		return nil
	}

	limit := len(changes)
	if limit > maxEmbeds {
		limit = maxEmbeds - 1
	}

	embeds := make([]discordEmbed, 0, limit+1)
	for i := range limit {
		embeds = append(embeds, buildEmbed(&changes[i]))
	}

	if rest := len(changes) - limit; rest > 0 {
		embeds = append(embeds, discordEmbed{
			Title:       fmt.Sprintf("... and %d more price changes", rest),
			Color:       colorGray,
			Description: "Run `mercado-search favorites list` for the full list.",
		})
	}

	return d.post(ctx, discordWebhookPayload{Embeds: embeds})
}

func buildEmbed(c *PriceChange) discordEmbed {
	cur := format.ParseCurrency(c.Currency).Symbol()
	kind, color := "Price up", colorRed
	if c.Drop() {
		kind, color = "Price drop", colorGreen
	}

	embed := discordEmbed{
		Title: fmt.Sprintf("%s: %s", kind, c.Title),
		URL:   c.Permalink,
		Color: color,
		Fields: []discordEmbedField{
			{Name: "Before", Value: cur + " " + format.Amount(c.OldPrice), Inline: true},
			{Name: "Now", Value: cur + " " + format.Amount(c.NewPrice), Inline: true},
			{Name: "Change", Value: fmt.Sprintf("%+.1f%%", c.Percent()), Inline: true},
			{Name: "Item", Value: c.ID, Inline: true},
		},
	}

	if c.Thumbnail != "" {
		embed.Thumbnail = &discordThumbnail{URL: c.Thumbnail}
	}

	return embed
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
