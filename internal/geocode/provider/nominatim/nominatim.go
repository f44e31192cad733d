// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

// Package nominatim implements reverse geocoding against the OSM Nominatim API.
package nominatim

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
	name               = "osm-nominatim"
	apiReverseEndpoint = "https://nominatim.openstreetmap.org/reverse"
	apiTimeout         = time.Second * 10
)

type Nominatim struct {
	http *http.Client
	log  *logger.Logger
}

type reverseResult struct {
	Address address `json:"address"`
}

type address struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	County  string `json:"county"`
	State   string `json:"state"`
	Country string `json:"country"`
}

func New(http *http.Client, log *logger.Logger) (*Nominatim, error) {
	if http == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return &Nominatim{http: http, log: log}, nil
}

func (n *Nominatim) Name() string {
	return name
}

// CityName reverse geocodes the coordinates. The city is the first non-empty
// of city, town, village and county; without any of those the sentinel
// "Unknown" is returned rather than an error.
func (n *Nominatim) CityName(ctx context.Context, lat, lon float64) (string, error) {
	res := new(reverseResult)

	query := url.Values{}
	query.Set("lat", fmt.Sprintf("%.4f", lat))
	query.Set("lon", fmt.Sprintf("%.4f", lon))
	query.Set("format", "json")

	if err := n.http.GetWithTimeout(ctx, apiReverseEndpoint, res, query, nil, apiTimeout); err != nil {
		return "", fmt.Errorf("failed to reverse geocode coordinates: %w", err)
	}

	for _, candidate := range []string{res.Address.City, res.Address.Town, res.Address.Village, res.Address.County} {
		if candidate != "" {
			return candidate, nil
		}
	}
	return geocode.UnknownCity, nil
}
