package extraction

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/sublease-service/internal/config"
)

func newTestClient(url string) *Client {
	return NewClient(config.ExtractionConfig{EndpointURL: url, APIKey: "k", TimeoutSec: 5}, zap.NewNop())
}

func TestExtract_ShapesModelOutput(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "2BR near campus, $1450/mo", body["text"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"title": "2BR near campus",
			"address": "123 College Ave",
			"rent": 1450,
			"bedrooms": 2,
			"bathrooms": 1.5,
			"start_date": "2026-06-01",
			"end_date": "2026-08-15",
			"amenities": ["parking", "laundry"],
			"description": "Sunny unit"
		}`))
	}))
	defer server.Close()

	draft, err := newTestClient(server.URL).Extract(context.Background(), "2BR near campus, $1450/mo", "")
	require.NoError(t, err)
	require.Equal(t, "Bearer k", gotAuth)
	require.Equal(t, "2BR near campus", draft.Title)
	require.Equal(t, 1450, draft.Rent)
	require.Equal(t, 2, draft.Bedrooms)
	require.Equal(t, 1.5, draft.Bathrooms)
	require.Equal(t, []string{"parking", "laundry"}, draft.Amenities)
}

func TestExtract_ToleratesMalformedFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"title": "Loft", "rent": "not a number", "amenities": "garbage"}`))
	}))
	defer server.Close()

	draft, err := newTestClient(server.URL).Extract(context.Background(), "loft", "")
	require.NoError(t, err)
	require.Equal(t, "Loft", draft.Title)
	require.Zero(t, draft.Rent)
	require.Empty(t, draft.Amenities)
}

func TestExtract_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Extract(context.Background(), "loft", "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "503")
}

func TestExtract_NotConfigured(t *testing.T) {
	client := NewClient(config.ExtractionConfig{}, zap.NewNop())

	_, err := client.Extract(context.Background(), "loft", "")
	require.ErrorIs(t, err, ErrNotConfigured)
}
