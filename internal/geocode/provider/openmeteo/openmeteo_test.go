// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

package openmeteo

import (
	"encoding/json"
	"io"
	"log/slog"
	stdhttp "net/http"
	"strings"
	"testing"

	"github.com/lifeboard/widgetsync/internal/http"
	"github.com/lifeboard/widgetsync/internal/logger"
	"github.com/lifeboard/widgetsync/internal/testhelper"
)

func newTestProvider(t *testing.T, status int, body string) *OpenMeteo {
	t.Helper()
	client := http.New(logger.New(slog.LevelInfo))
	client.Transport = testhelper.MockRoundTripper{Fn: func(req *stdhttp.Request) (*stdhttp.Response, error) {
		if got := req.URL.Query().Get("count"); got != "10" {
			t.Errorf("expected count query parameter to be '10', got %q", got)
		}
		return &stdhttp.Response{
			StatusCode: status,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(stdhttp.Header),
		}, nil
	}}
	provider, err := New(client, logger.New(slog.LevelInfo))
	if err != nil {
		t.Fatalf("failed to create provider: %s", err)
	}
	return provider
}

func TestOpenMeteo_SearchCities(t *testing.T) {
	t.Run("candidates carry display names with optional region", func(t *testing.T) {
		const fixture = `{"results":[
			{"id": 2950159, "name": "Berlin", "country": "Germany", "admin1": "Berlin",
			 "latitude": 52.52437, "longitude": 13.41053},
			{"id": 5083330, "name": "Berlin", "country": "United States",
			 "latitude": 44.46867, "longitude": -71.18508}
		]}`
		provider := newTestProvider(t, 200, fixture)
		cities, err := provider.SearchCities(t.Context(), "berlin")
		if err != nil {
			t.Fatalf("failed to search cities: %s", err)
		}
		if len(cities) != 2 {
			t.Fatalf("expected 2 cities, got %d", len(cities))
		}
		if got := cities[0].DisplayName; got != "Berlin, Germany, Berlin" {
			t.Errorf("expected display name 'Berlin, Germany, Berlin', got %q", got)
		}
		if got := cities[1].DisplayName; got != "Berlin, United States" {
			t.Errorf("expected display name 'Berlin, United States', got %q", got)
		}
		raw, err := json.Marshal(cities[0])
		if err != nil {
			t.Fatalf("failed to marshal city: %s", err)
		}
		if !strings.Contains(string(raw), `"displayName":"Berlin, Germany, Berlin"`) {
			t.Errorf("expected serialized candidate to carry the display name, got %s", raw)
		}
	})
	t.Run("missing results block yields an empty slice", func(t *testing.T) {
		provider := newTestProvider(t, 200, `{"generationtime_ms": 0.5}`)
		cities, err := provider.SearchCities(t.Context(), "nowhere")
		if err != nil {
			t.Fatalf("failed to search cities: %s", err)
		}
		if len(cities) != 0 {
			t.Errorf("expected no cities, got %d", len(cities))
		}
	})
	t.Run("non-2xx response fails the search", func(t *testing.T) {
		provider := newTestProvider(t, 429, "")
		if _, err := provider.SearchCities(t.Context(), "berlin"); err == nil {
			t.Fatal("expected city search to fail")
		}
	})
}
