package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	ptestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/mercado-search/internal/api/handlers"
	"github.com/donaldgifford/mercado-search/internal/metrics"
	"github.com/donaldgifford/mercado-search/internal/store/mocks"
)

func TestHealthz(t *testing.T) {
	t.Parallel()

	h := handlers.NewHealthHandler(mocks.NewMockStore(t))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Healthz(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReadyz(t *testing.T) {
	tests := []struct {
		name       string
		noStore    bool
		pingErr    error
		wantStatus int
		wantBody   string
		wantGauge  float64
	}{
		{
			name:       "returns 200 when store ping succeeds",
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready"}`,
			wantGauge:  1,
		},
		{
			name:       "returns 503 when store ping fails",
			pingErr:    errors.New("connection refused"),
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `{"status":"unavailable"}`,
			wantGauge:  0,
		},
		{
			name:       "returns 200 without a store",
			noStore:    true,
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"ready"}`,
			wantGauge:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h *handlers.HealthHandler
			if tt.noStore {
				h = handlers.NewHealthHandler(nil)
			} else {
				mockStore := mocks.NewMockStore(t)
				mockStore.EXPECT().Ping(mock.Anything).Return(tt.pingErr)
				h = handlers.NewHealthHandler(mockStore)
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/readyz", http.NoBody)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.Readyz(c)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.InDelta(t, tt.wantGauge, ptestutil.ToFloat64(metrics.ReadyzUp), 0.001)
		})
	}
}
