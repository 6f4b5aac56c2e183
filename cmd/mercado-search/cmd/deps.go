package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/donaldgifford/mercado-search/internal/config"
	"github.com/donaldgifford/mercado-search/internal/meli"
	"github.com/donaldgifford/mercado-search/internal/notify"
	"github.com/donaldgifford/mercado-search/internal/repository"
	"github.com/donaldgifford/mercado-search/pkg/logger"
)

// newRateLimiter builds the upstream call limiter from config.
func newRateLimiter(cfg *config.MeliConfig) *meli.RateLimiter {
	return meli.NewRateLimiter(cfg.RateLimit.PerSecond, cfg.RateLimit.Burst, cfg.RateLimit.DailyLimit)
}

// newRepository wires the MercadoLibre client behind a Repository. The
// client authenticates only when app credentials are configured.
func newRepository(cfg *config.MeliConfig, rl *meli.RateLimiter, log *slog.Logger) *repository.MeliRepository {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	opts := []meli.Option{
		meli.WithBaseURL(cfg.BaseURL),
		meli.WithClientHTTPClient(httpClient),
		meli.WithUserAgent(cfg.UserAgent),
		meli.WithRateLimiter(rl),
	}
	if cfg.Authenticated() {
		tokens := meli.NewOAuthTokenProvider(
			cfg.ClientID, cfg.ClientSecret,
			meli.WithTokenURL(cfg.TokenURL),
			meli.WithHTTPClient(httpClient),
		)
		opts = append(opts, meli.WithTokenProvider(tokens))
	}

	return repository.New(
		meli.NewClient(opts...),
		repository.WithSiteID(cfg.SiteID),
		repository.WithLogger(log),
	)
}

// cliDeps loads config and builds a logger and repository for the
// one-shot catalog commands.
func cliDeps() (*config.Config, *slog.Logger, *repository.MeliRepository, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	repo := newRepository(&cfg.Meli, newRateLimiter(&cfg.Meli), log)
	return cfg, log, repo, nil
}

// await blocks until a controller finishes its construction-time work.
func await(ctx context.Context, ready <-chan struct{}) error {
	select {
	case <-ready:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for MercadoLibre: %w", ctx.Err())
	}
}

func newNotifier(cfg *config.NotifyConfig, log *slog.Logger) notify.Notifier {
	if !cfg.Enabled() {
		return notify.NewNoOpNotifier(logger.Component(log, "notify"))
	}
	log.Info("price change notifications enabled", "drops_only", cfg.DropsOnly)
	return notify.NewDiscordNotifier(cfg.DiscordWebhookURL)
}
