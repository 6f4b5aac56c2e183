package handlers_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	domain "github.com/donaldgifford/mercado-search/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func decode(t *testing.T, data []byte, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(data, v))
}

func strPtr(s string) *string { return &s }

func product(id string, price float64) domain.Product {
	return domain.Product{
		ID:        id,
		Title:     "Phone " + id,
		Price:     price,
		Currency:  "ARS",
		Condition: "new",
		Address:   &domain.Address{City: strPtr("Palermo"), State: strPtr("Capital Federal")},
	}
}
