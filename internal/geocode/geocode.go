// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

// Package geocode defines the geocoding interfaces used to label coordinates
// with a city name and to search cities by free text.
package geocode

import "context"

// UnknownCity is the sentinel returned when reverse geocoding cannot resolve
// any usable address component.
const UnknownCity = "Unknown"

// Reverser resolves coordinates to a city name.
type Reverser interface {
	Name() string
	CityName(ctx context.Context, lat, lon float64) (string, error)
}

// Searcher resolves a free-text name to candidate cities.
type Searcher interface {
	Name() string
	SearchCities(ctx context.Context, query string) ([]City, error)
}

// City is one candidate result of a city search. DisplayName is the rendered
// "Name, Country[, Region]" label served to the widget layer.
type City struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	Region      string  `json:"region,omitempty"`
	DisplayName string  `json:"displayName"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// DisplayName renders a candidate label as "Name, Country[, Region]".
func DisplayName(name, country, region string) string {
	label := name + ", " + country
	if region != "" {
		label += ", " + region
	}
	return label
}
