// Package main implements a mock MercadoLibre API server for local
// development. It serves categories, paginated searches, item details and
// descriptions from a JSON fixture, plus the OAuth token endpoint, without
// requiring network access or app credentials.
package main

import (
	"embed"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/mercado-search/internal/meli"
)

//go:embed testdata/catalog.json
var defaultFixture embed.FS

const (
	defaultLimit = 50
	maxLimit     = 50
)

// catalog is the fixture layout.
type catalog struct {
	Categories map[string][]meli.CategoryRef `json:"categories"` // by site
	Items      []fixtureItem                 `json:"items"`
}

// fixtureItem is an item together with where it is listed.
type fixtureItem struct {
	meli.Item
	SiteID      string `json:"site_id"`
	CategoryID  string `json:"category_id"`
	Description string `json:"description"`
}

type paging struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type searchResponse struct {
	SiteID  string      `json:"site_id"`
	Query   string      `json:"query,omitempty"`
	Paging  paging      `json:"paging"`
	Results []meli.Item `json:"results"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "", "path to a catalog fixture (default: embedded)")
	latency := flag.Duration("latency", 0, "delay added to every response")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cat, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "sites", len(cat.Categories), "items", len(cat.Items))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock MercadoLibre server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      newHandler(logger, cat, *latency),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second + *latency,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newHandler(logger *slog.Logger, cat *catalog, latency time.Duration) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth/token", tokenHandler(logger))
	mux.HandleFunc("GET /sites/{site}/categories", categoriesHandler(cat))
	mux.HandleFunc("GET /sites/{site}/search", searchHandler(logger, cat))
	mux.HandleFunc("GET /items/{id}", itemHandler(cat))
	mux.HandleFunc("GET /items/{id}/description", descriptionHandler(cat))
	return requestLogger(logger, latency, mux)
}

func loadFixture(path string) (*catalog, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = defaultFixture.ReadFile("testdata/catalog.json")
	} else {
		data, err = os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	}
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var cat catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &cat, nil
}

func requestLogger(logger *slog.Logger, latency time.Duration, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		if latency > 0 {
			select {
			case <-time.After(latency):
			case <-r.Context().Done():
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

// writeError writes a MercadoLibre-style error body.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"message": message,
		"error":   code,
		"status":  status,
		"cause":   []string{},
	})
}

func tokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "malformed form body")
			return
		}
		if r.PostForm.Get("grant_type") != "client_credentials" {
			writeError(w, http.StatusBadRequest, "unsupported_grant_type", "grant_type must be client_credentials")
			return
		}
		// Credentials must be present but are not verified.
		if r.PostForm.Get("client_id") == "" || r.PostForm.Get("client_secret") == "" {
			logger.Warn("token request missing client credentials")
			writeError(w, http.StatusUnauthorized, "invalid_client", "invalid client_id or client_secret")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": "APP_USR-mock-" + strconv.FormatInt(int64(os.Getpid()), 16),
			"token_type":   "Bearer",
			"expires_in":   21600,
			"scope":        "offline_access read",
		})
		logger.Info("issued mock token")
	}
}

func categoriesHandler(cat *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		site := r.PathValue("site")
		cats, ok := cat.Categories[site]
		if !ok {
			writeError(w, http.StatusNotFound, "not_found", "Site "+site+" not found")
			return
		}
		writeJSON(w, http.StatusOK, cats)
	}
}

func searchHandler(logger *slog.Logger, cat *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		site := r.PathValue("site")
		query := r.URL.Query()
		q := strings.ToLower(strings.TrimSpace(query.Get("q")))
		category := query.Get("category")

		limit := defaultLimit
		if v, err := strconv.Atoi(query.Get("limit")); err == nil && v > 0 {
			limit = min(v, maxLimit)
		}
		offset := 0
		if v, err := strconv.Atoi(query.Get("offset")); err == nil && v >= 0 {
			offset = v
		}

		var matched []meli.Item
		for i := range cat.Items {
			it := &cat.Items[i]
			if it.SiteID != site {
				continue
			}
			if category != "" && it.CategoryID != category {
				continue
			}
			if q != "" && !strings.Contains(strings.ToLower(it.Title), q) {
				continue
			}
			matched = append(matched, searchResult(it))
		}

		total := len(matched)
		if offset >= total {
			matched = []meli.Item{}
		} else {
			matched = matched[offset:min(offset+limit, total)]
		}

		writeJSON(w, http.StatusOK, searchResponse{
			SiteID:  site,
			Query:   query.Get("q"),
			Paging:  paging{Total: total, Offset: offset, Limit: limit},
			Results: matched,
		})
		logger.Info("search", "site", site, "query", q, "category", category,
			"matched", total, "returned", len(matched), "offset", offset, "limit", limit)
	}
}

// searchResult projects an item the way the search endpoint does: item
// address, no pictures or seller address.
func searchResult(it *fixtureItem) meli.Item {
	out := it.Item
	out.Pictures = nil
	out.SellerAddress = nil
	return out
}

func findItem(cat *catalog, id string) *fixtureItem {
	for i := range cat.Items {
		if cat.Items[i].ID == id {
			return &cat.Items[i]
		}
	}
	return nil
}

func itemHandler(cat *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		it := findItem(cat, id)
		if it == nil {
			writeError(w, http.StatusNotFound, "not_found", "Item with id "+id+" not found")
			return
		}
		out := it.Item
		out.Address = nil
		writeJSON(w, http.StatusOK, out)
	}
}

func descriptionHandler(cat *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		it := findItem(cat, id)
		if it == nil {
			writeError(w, http.StatusNotFound, "not_found", "Item with id "+id+" not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"text":       "",
			"plain_text": it.Description,
		})
	}
}
