// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

package nominatim

import (
	"io"
	"log/slog"
	stdhttp "net/http"
	"strings"
	"testing"

	"github.com/lifeboard/widgetsync/internal/geocode"
	"github.com/lifeboard/widgetsync/internal/http"
	"github.com/lifeboard/widgetsync/internal/logger"
	"github.com/lifeboard/widgetsync/internal/testhelper"
)

func newTestProvider(t *testing.T, status int, body string) *Nominatim {
	t.Helper()
	client := http.New(logger.New(slog.LevelInfo))
	client.Transport = testhelper.MockRoundTripper{Fn: func(req *stdhttp.Request) (*stdhttp.Response, error) {
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

func TestNominatim_CityName(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"city is preferred",
			`{"address":{"city":"Berlin","town":"Spandau","county":"Brandenburg"}}`,
			"Berlin",
		},
		{
			"town is the first fallback",
			`{"address":{"town":"Falkensee","village":"Seegefeld"}}`,
			"Falkensee",
		},
		{
			"village is the second fallback",
			`{"address":{"village":"Seegefeld","county":"Havelland"}}`,
			"Seegefeld",
		},
		{
			"county is the last fallback",
			`{"address":{"county":"Havelland","state":"Brandenburg"}}`,
			"Havelland",
		},
		{
			"empty address yields the sentinel",
			`{"address":{"state":"Brandenburg","country":"Germany"}}`,
			geocode.UnknownCity,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			provider := newTestProvider(t, 200, tc.body)
			city, err := provider.CityName(t.Context(), 52.5333, 13.2)
			if err != nil {
				t.Fatalf("failed to resolve city name: %s", err)
			}
			if city != tc.want {
				t.Errorf("expected city %q, got %q", tc.want, city)
			}
		})
	}

	t.Run("non-2xx response fails the lookup", func(t *testing.T) {
		provider := newTestProvider(t, 500, "")
		if _, err := provider.CityName(t.Context(), 52.5333, 13.2); err == nil {
			t.Fatal("expected city name lookup to fail")
		}
	})
}
