// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

// Package weather holds the canonical weather record types and the WMO
// weather-code taxonomy shared by all weather providers.
package weather

import (
	"context"
	"time"
)

// Provider is implemented by each weather API backend.
type Provider interface {
	Name() string
	GetWeather(ctx context.Context, lat, lon float64) (*Report, error)
}

// Report is the normalized result of a single provider fetch: current
// conditions plus an ordered, day-ordered forecast of at most 7 entries.
type Report struct {
	Current  Snapshot      `json:"current"`
	Forecast []ForecastDay `json:"forecast"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	City      string  `json:"city"`
}

// Snapshot describes the current conditions at a location. Humidity, FeelsLike
// and UVIndex are nil when the provider's hourly series has no sample matching
// the observation time; they are never interpolated.
type Snapshot struct {
	Temperature int       `json:"temperature"`
	WeatherCode Code      `json:"weatherCode"`
	Description string    `json:"description"`
	IconName    string    `json:"iconName"`
	WindSpeed   int       `json:"windSpeed"`
	Humidity    *int      `json:"humidity"`
	FeelsLike   *int      `json:"feelsLike"`
	UVIndex     *float64  `json:"uvIndex"`
	ObservedAt  time.Time `json:"observedAt"`
}

// ForecastDay describes the conditions forecast for one calendar day.
type ForecastDay struct {
	Date        time.Time `json:"date"`
	High        int       `json:"high"`
	Low         int       `json:"low"`
	WeatherCode Code      `json:"weatherCode"`
	Description string    `json:"description"`
	IconName    string    `json:"iconName"`
}
