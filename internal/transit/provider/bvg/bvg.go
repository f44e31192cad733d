// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

// Package bvg implements the transit.Provider interface against the BVG
// transport.rest v6 API.
package bvg

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/lifeboard/widgetsync/internal/http"
	"github.com/lifeboard/widgetsync/internal/logger"
	"github.com/lifeboard/widgetsync/internal/transit"
)

const (
	name        = "bvg-transport-rest"
	apiEndpoint = "https://v6.bvg.transport.rest"
	apiTimeout  = time.Second * 10
)

type BVG struct {
	log  *logger.Logger
	http *http.Client

	// now is swappable for tests; departures are normalized against it.
	now func() time.Time
}

type departuresResponse struct {
	Departures []rawDeparture `json:"departures"`
}

type rawDeparture struct {
	When        string `json:"when"` // empty for cancelled departures
	PlannedWhen string `json:"plannedWhen"`
	Delay       *int   `json:"delay"` // seconds
	Platform    string `json:"platform"`
	Direction   string `json:"direction"`
	Destination *struct {
		Name string `json:"name"`
	} `json:"destination"`
	Line struct {
		Name        string `json:"name"`
		Product     string `json:"product"`
		ProductName string `json:"productName"`
	} `json:"line"`
	Occupancy string `json:"occupancy"`
	Remarks   []struct {
		Text string `json:"text"`
	} `json:"remarks"`
}

type rawLocation struct {
	Type     string `json:"type"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
	Products map[string]bool `json:"products"`
}

func New(http *http.Client, log *logger.Logger) (*BVG, error) {
	if http == nil {
		return nil, fmt.Errorf("http client is required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return &BVG{http: http, log: log, now: time.Now}, nil
}

func (b *BVG) Name() string {
	return name
}

// Departures fetches the departure board of a stop, at most results entries
// within the lookahead window, and normalizes each entry.
func (b *BVG) Departures(ctx context.Context, stopID string, results int, lookahead time.Duration) ([]transit.Departure, error) {
	res := new(departuresResponse)

	query := url.Values{}
	query.Set("results", strconv.Itoa(results))
	query.Set("duration", strconv.Itoa(int(lookahead.Minutes())))

	endpoint := fmt.Sprintf("%s/stops/%s/departures", apiEndpoint, url.PathEscape(stopID))
	if err := b.http.GetWithTimeout(ctx, endpoint, res, query, nil, apiTimeout); err != nil {
		return nil, fmt.Errorf("failed to retrieve departures from BVG API: %w", err)
	}

	now := b.now()
	departures := make([]transit.Departure, 0, len(res.Departures))
	for _, raw := range res.Departures {
		dep, err := normalize(raw, now)
		if err != nil {
			return nil, err
		}
		departures = append(departures, dep)
	}
	return departures, nil
}

// SearchStops resolves a free-text name to candidate stops, keeping only
// locations of type "stop".
func (b *BVG) SearchStops(ctx context.Context, queryText string) ([]transit.Stop, error) {
	var res []rawLocation

	query := url.Values{}
	query.Set("query", queryText)
	query.Set("results", "10")

	if err := b.http.GetWithTimeout(ctx, apiEndpoint+"/locations", &res, query, nil, apiTimeout); err != nil {
		return nil, fmt.Errorf("failed to search stops on BVG API: %w", err)
	}

	stops := make([]transit.Stop, 0, len(res))
	for _, loc := range res {
		if loc.Type != "stop" {
			continue
		}
		products := make([]string, 0, len(loc.Products))
		for product, available := range loc.Products {
			if available {
				products = append(products, product)
			}
		}
		stops = append(stops, transit.Stop{
			ID:        loc.ID,
			Name:      loc.Name,
			Latitude:  loc.Location.Latitude,
			Longitude: loc.Location.Longitude,
			Products:  products,
		})
	}
	return stops, nil
}

// normalize maps one raw provider entry onto the canonical departure record.
// The effective instant is "when" (the realtime estimate), falling back to
// "plannedWhen" for entries without realtime data; the rendered times and
// minutes-until are all derived from that same pair.
func normalize(raw rawDeparture, now time.Time) (transit.Departure, error) {
	planned, err := time.Parse(time.RFC3339, raw.PlannedWhen)
	if err != nil {
		return transit.Departure{}, &http.ParseError{Err: fmt.Errorf("invalid plannedWhen %q: %w", raw.PlannedWhen, err)}
	}

	when := planned
	if raw.When != "" {
		when, err = time.Parse(time.RFC3339, raw.When)
		if err != nil {
			return transit.Departure{}, &http.ParseError{Err: fmt.Errorf("invalid when %q: %w", raw.When, err)}
		}
	}

	destination := raw.Direction
	if raw.Destination != nil && raw.Destination.Name != "" {
		destination = raw.Destination.Name
	}

	remarks := make([]string, 0, len(raw.Remarks))
	for _, remark := range raw.Remarks {
		if remark.Text != "" {
			remarks = append(remarks, remark.Text)
		}
	}

	return transit.Departure{
		Line:        raw.Line.Name,
		LineName:    raw.Line.ProductName,
		Category:    transit.ParseCategory(raw.Line.Product),
		Direction:   raw.Direction,
		Destination: destination,
		When:        when,
		PlannedWhen: planned,
		Time:        when.Local().Format("15:04"),
		PlannedTime: planned.Local().Format("15:04"),
		DelayMins:   transit.DelayMinutes(raw.Delay),
		MinutesLeft: transit.MinutesUntil(now, when),
		Platform:    raw.Platform,
		Occupancy:   transit.ParseOccupancy(raw.Occupancy),
		Remarks:     remarks,
	}, nil
}
