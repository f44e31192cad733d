// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

// Package openmeteo implements city search against the Open-Meteo geocoding API.
package openmeteo

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/lifeboard/widgetsync/internal/geocode"
	"github.com/lifeboard/widgetsync/internal/http"
	"github.com/lifeboard/widgetsync/internal/logger"
)

const (
	name        = "open-meteo-geocoding"
	apiEndpoint = "https://geocoding-api.open-meteo.com/v1/search"
	apiTimeout  = time.Second * 10
	maxResults  = 10
)

type OpenMeteo struct {
	http *http.Client
	log  *logger.Logger
}

type searchResponse struct {
	Results []struct {
		ID        int64   `json:"id"`
		Name      string  `json:"name"`
		Country   string  `json:"country"`
		Admin1    string  `json:"admin1"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"results"`
}

func New(http *http.Client, log *logger.Logger) (*OpenMeteo, error) {
	if http == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return &OpenMeteo{http: http, log: log}, nil
}

func (o *OpenMeteo) Name() string {
	return name
}

// SearchCities resolves a free-text name to at most 10 candidate cities. An
// empty results block is a valid response for an unmatched query.
func (o *OpenMeteo) SearchCities(ctx context.Context, queryText string) ([]geocode.City, error) {
	res := new(searchResponse)

	query := url.Values{}
	query.Set("name", queryText)
	query.Set("count", fmt.Sprintf("%d", maxResults))
	query.Set("language", "en")
	query.Set("format", "json")

	if err := o.http.GetWithTimeout(ctx, apiEndpoint, res, query, nil, apiTimeout); err != nil {
		return nil, fmt.Errorf("failed to search cities on Open-Meteo geocoding API: %w", err)
	}

	cities := make([]geocode.City, 0, len(res.Results))
	for _, result := range res.Results {
		cities = append(cities, geocode.City{
			ID:          result.ID,
			Name:        result.Name,
			Country:     result.Country,
			Region:      result.Admin1,
			DisplayName: geocode.DisplayName(result.Name, result.Country, result.Admin1),
			Latitude:    result.Latitude,
			Longitude:   result.Longitude,
		})
	}
	return cities, nil
}
