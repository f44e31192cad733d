// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

// Package transit holds the canonical departure record types and the
// normalization rules shared by all transit providers.
package transit

import (
	"context"
	"time"
)

// Provider is implemented by each transit API backend.
type Provider interface {
	Name() string
	// Departures returns the raw departure board of a stop within the
	// lookahead window, at most results entries, in provider order.
	Departures(ctx context.Context, stopID string, results int, lookahead time.Duration) ([]Departure, error)
	// SearchStops returns candidate stops for a free-text name.
	SearchStops(ctx context.Context, query string) ([]Stop, error)
}

// Category is the tariff-relevant product class of a line.
type Category string

const (
	CategoryBus      Category = "bus"
	CategorySuburban Category = "suburban"
	CategoryRegional Category = "regional"
	CategoryOther    Category = "other"
)

// Occupancy is the provider-reported crowding level of a departure.
type Occupancy string

const (
	OccupancyLow      Occupancy = "low"
	OccupancyMedium   Occupancy = "medium"
	OccupancyHigh     Occupancy = "high"
	OccupancyVeryHigh Occupancy = "very-high"
	OccupancyUnknown  Occupancy = "unknown"
)

// Departure is one normalized entry of a stop's departure board.
//
// When and PlannedWhen are the raw instants; Time and PlannedTime are their
// "15:04" renderings and are always derived from the same instant pair as
// MinutesUntil. DelayMinutes is nil when the provider reports no delay; its
// sign follows "later than planned means positive".
type Departure struct {
	Line        string    `json:"line"`
	LineName    string    `json:"lineName"`
	Category    Category  `json:"lineCategory"`
	Direction   string    `json:"direction"`
	Destination string    `json:"destination"`
	When        time.Time `json:"when"`
	PlannedWhen time.Time `json:"plannedWhen"`
	Time        string    `json:"time"`
	PlannedTime string    `json:"plannedTime"`
	DelayMins   *int      `json:"delayMinutes"`
	MinutesLeft int       `json:"minutesUntil"`
	Platform    string    `json:"platform,omitempty"`
	Occupancy   Occupancy `json:"occupancy"`
	Remarks     []string  `json:"remarks"`
}

// Stop is a candidate result of the advisory stop search.
type Stop struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Products  []string `json:"products"`
}

// ParseCategory maps a provider product string onto a Category. Products
// outside the known set (subway, tram, ferry, express) map to CategoryOther.
func ParseCategory(product string) Category {
	switch product {
	case "bus":
		return CategoryBus
	case "suburban":
		return CategorySuburban
	case "regional":
		return CategoryRegional
	default:
		return CategoryOther
	}
}

// ParseOccupancy maps a provider occupancy string onto an Occupancy value.
func ParseOccupancy(raw string) Occupancy {
	switch raw {
	case "low":
		return OccupancyLow
	case "medium":
		return OccupancyMedium
	case "high":
		return OccupancyHigh
	case "very-high":
		return OccupancyVeryHigh
	default:
		return OccupancyUnknown
	}
}
