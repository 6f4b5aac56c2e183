package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/donaldgifford/mercado-search/internal/meli"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cat, err := loadFixture("")
	if err != nil {
		t.Fatalf("loading fixture: %v", err)
	}
	srv := httptest.NewServer(newHandler(testLogger(), cat, 0))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, srv *httptest.Server, path string, dst any) int {
	t.Helper()
	resp, err := http.Get(srv.URL + path) //nolint:noctx // test request
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	if dst != nil {
		if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
			t.Fatalf("decoding %s: %v", path, err)
		}
	}
	return resp.StatusCode
}

func TestLoadFixture(t *testing.T) {
	cat, err := loadFixture("")
	if err != nil {
		t.Fatalf("loadFixture: %v", err)
	}
	if len(cat.Categories["MLA"]) == 0 {
		t.Fatal("expected MLA categories in fixture")
	}
	if len(cat.Items) == 0 {
		t.Fatal("expected items in fixture")
	}
	for _, it := range cat.Items {
		if it.SiteID == "" || it.CategoryID == "" || it.ID == "" {
			t.Errorf("item %q missing site, category or id", it.Title)
		}
	}

	if _, err := loadFixture("testdata/missing.json"); err == nil {
		t.Error("expected error for missing fixture file")
	}
}

func TestTokenHandler(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		wantStatus int
		wantError  string
	}{
		{
			name:       "client credentials",
			form:       url.Values{"grant_type": {"client_credentials"}, "client_id": {"app"}, "client_secret": {"secret"}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing secret",
			form:       url.Values{"grant_type": {"client_credentials"}, "client_id": {"app"}},
			wantStatus: http.StatusUnauthorized,
			wantError:  "invalid_client",
		},
		{
			name:       "wrong grant",
			form:       url.Values{"grant_type": {"password"}},
			wantStatus: http.StatusBadRequest,
			wantError:  "unsupported_grant_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			w := httptest.NewRecorder()

			tokenHandler(testLogger())(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status=%d, want %d", w.Code, tt.wantStatus)
			}
			var resp map[string]any
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if tt.wantError != "" {
				if resp["error"] != tt.wantError {
					t.Errorf("error=%v, want %s", resp["error"], tt.wantError)
				}
				return
			}
			if s, _ := resp["access_token"].(string); !strings.HasPrefix(s, "APP_USR-") {
				t.Errorf("access_token=%v, want APP_USR- prefix", resp["access_token"])
			}
			if resp["expires_in"] != float64(21600) {
				t.Errorf("expires_in=%v, want 21600", resp["expires_in"])
			}
		})
	}
}

func TestCategoriesHandler(t *testing.T) {
	srv := newTestServer(t)

	var cats []meli.CategoryRef
	if code := getJSON(t, srv, "/sites/MLA/categories", &cats); code != http.StatusOK {
		t.Fatalf("status=%d, want 200", code)
	}
	if len(cats) != 6 {
		t.Errorf("categories=%d, want 6", len(cats))
	}

	var apiErr meli.APIError
	if code := getJSON(t, srv, "/sites/XXX/categories", &apiErr); code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", code)
	}
	if apiErr.Err != "not_found" {
		t.Errorf("error=%q, want not_found", apiErr.Err)
	}
}

func TestSearchHandler(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name        string
		path        string
		wantTotal   int
		wantResults int
		wantOffset  int
	}{
		{name: "query across site", path: "/sites/MLA/search?q=samsung", wantTotal: 4, wantResults: 4},
		{name: "case insensitive", path: "/sites/MLA/search?q=SAMSUNG", wantTotal: 4, wantResults: 4},
		{name: "category scope", path: "/sites/MLA/search?category=MLA1051", wantTotal: 7, wantResults: 7},
		{name: "query within category", path: "/sites/MLA/search?q=samsung&category=MLA1051", wantTotal: 2, wantResults: 2},
		{name: "last page", path: "/sites/MLA/search?category=MLA1051&offset=6&limit=3", wantTotal: 7, wantResults: 1, wantOffset: 6},
		{name: "past the end", path: "/sites/MLA/search?category=MLA1051&offset=50", wantTotal: 7, wantResults: 0, wantOffset: 50},
		{name: "other site", path: "/sites/MLB/search?q=samsung", wantTotal: 1, wantResults: 1},
		{name: "no match", path: "/sites/MLA/search?q=zzzz", wantTotal: 0, wantResults: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp searchResponse
			if code := getJSON(t, srv, tt.path, &resp); code != http.StatusOK {
				t.Fatalf("status=%d, want 200", code)
			}
			if resp.Paging.Total != tt.wantTotal {
				t.Errorf("total=%d, want %d", resp.Paging.Total, tt.wantTotal)
			}
			if len(resp.Results) != tt.wantResults {
				t.Errorf("results=%d, want %d", len(resp.Results), tt.wantResults)
			}
			if resp.Paging.Offset != tt.wantOffset {
				t.Errorf("offset=%d, want %d", resp.Paging.Offset, tt.wantOffset)
			}
			if resp.Results == nil {
				t.Error("results must be an empty array, not null")
			}
			for _, it := range resp.Results {
				if it.SellerAddress != nil || len(it.Pictures) > 0 {
					t.Errorf("search result %s carries detail-only fields", it.ID)
				}
			}
		})
	}
}

func TestItemHandlers(t *testing.T) {
	srv := newTestServer(t)

	var item meli.Item
	if code := getJSON(t, srv, "/items/MLA1400000000", &item); code != http.StatusOK {
		t.Fatalf("status=%d, want 200", code)
	}
	if item.Address != nil {
		t.Error("item detail must not carry the search address")
	}
	if item.SellerAddress == nil || item.SellerAddress.City == nil || item.SellerAddress.City.Name != "Palermo" {
		t.Errorf("seller_address=%+v, want Palermo", item.SellerAddress)
	}
	if len(item.Pictures) != 2 {
		t.Errorf("pictures=%d, want 2", len(item.Pictures))
	}

	var desc meli.ItemDescription
	if code := getJSON(t, srv, "/items/MLA1400000000/description", &desc); code != http.StatusOK {
		t.Fatalf("status=%d, want 200", code)
	}
	if desc.PlainText == nil || !strings.Contains(*desc.PlainText, "Garantía") {
		t.Errorf("plain_text=%v, want warranty text", desc.PlainText)
	}

	for _, path := range []string{"/items/MLA0", "/items/MLA0/description"} {
		var apiErr meli.APIError
		if code := getJSON(t, srv, path, &apiErr); code != http.StatusNotFound {
			t.Errorf("%s: status=%d, want 404", path, code)
		}
		if !strings.Contains(apiErr.Message, "MLA0") {
			t.Errorf("%s: message=%q, want item id", path, apiErr.Message)
		}
	}
}

func TestMeliClientAgainstMock(t *testing.T) {
	srv := newTestServer(t)
	client := meli.NewClient(meli.WithBaseURL(srv.URL))
	ctx := context.Background()

	page, err := client.Search(ctx, meli.SearchRequest{SiteID: "MLA", CategoryID: "MLA1051", Limit: 5})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if page.Total != 7 || len(page.Items) != 5 {
		t.Errorf("total=%d items=%d, want 7 and 5", page.Total, len(page.Items))
	}

	item, err := client.Item(ctx, page.Items[0].ID)
	if err != nil {
		t.Fatalf("Item: %v", err)
	}
	if item.Title != page.Items[0].Title {
		t.Errorf("title=%q, want %q", item.Title, page.Items[0].Title)
	}

	if _, err := client.Item(ctx, "MLA0"); err == nil {
		t.Error("expected error for unknown item")
	}
}
