// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

package service

import (
	"context"

	"github.com/lifeboard/widgetsync/internal/transit"
	"github.com/lifeboard/widgetsync/internal/weather"
)

// fetchWeather is the weather source's fetch cycle: provider call, then the
// forecast slice is trimmed to the configured widget horizon and the resolved
// city name is attached.
func (s *Service) fetchWeather(ctx context.Context) (weather.Report, error) {
	report, err := s.weatherProvider.GetWeather(ctx, s.config.Weather.Latitude, s.config.Weather.Longitude)
	if err != nil {
		return weather.Report{}, err
	}
	if len(report.Forecast) > s.config.Weather.ForecastDays {
		report.Forecast = report.Forecast[:s.config.Weather.ForecastDays]
	}
	report.City = s.City()
	return *report, nil
}

// fetchBusDepartures takes the bus stop's board verbatim: the stop is bus-only
// in practice, but no mode filter is applied and whatever the provider returns
// is reported.
func (s *Service) fetchBusDepartures(ctx context.Context) ([]transit.Departure, error) {
	return s.transitProvider.Departures(ctx, s.config.Transit.BusStopID,
		s.config.Transit.Results, busLookahead)
}

// fetchRailDepartures queries an oversized window and count, keeps only local
// rail (suburban/regional without ICE/IC) and truncates to the configured
// result count.
func (s *Service) fetchRailDepartures(ctx context.Context) ([]transit.Departure, error) {
	departures, err := s.transitProvider.Departures(ctx, s.config.Transit.RailStopID,
		railQueryResults, railLookahead)
	if err != nil {
		return nil, err
	}
	return transit.FilterLocalRail(departures, s.config.Transit.Results), nil
}
