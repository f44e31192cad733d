// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

// Package service wires the synchronization sources, geocoders and the widget
// API together into the running application.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/lifeboard/widgetsync/internal/config"
	"github.com/lifeboard/widgetsync/internal/geocode"
	nominatim "github.com/lifeboard/widgetsync/internal/geocode/provider/nominatim"
	geosearch "github.com/lifeboard/widgetsync/internal/geocode/provider/openmeteo"
	"github.com/lifeboard/widgetsync/internal/http"
	"github.com/lifeboard/widgetsync/internal/logger"
	"github.com/lifeboard/widgetsync/internal/source"
	"github.com/lifeboard/widgetsync/internal/transit"
	"github.com/lifeboard/widgetsync/internal/transit/provider/bvg"
	"github.com/lifeboard/widgetsync/internal/weather"
	openmeteo "github.com/lifeboard/widgetsync/internal/weather/provider/openmeteo"
)

const (
	busLookahead  = 60 * time.Minute
	railLookahead = 120 * time.Minute

	// The rail query is oversized because the local-rail filter discards most
	// of the mixed departure board.
	railQueryResults = 30
)

// Service owns the three synchronization sources and their shared scheduler.
type Service struct {
	config    *config.Config
	logger    *logger.Logger
	scheduler gocron.Scheduler

	weatherProvider weather.Provider
	transitProvider transit.Provider
	reverser        geocode.Reverser
	citySearcher    geocode.Searcher

	Weather *source.Source[weather.Report]
	Bus     *source.Source[[]transit.Departure]
	Rail    *source.Source[[]transit.Departure]

	cityLock sync.RWMutex
	city     string
}

// New builds the service with its providers and sources. Nothing is scheduled
// until Run is called.
func New(conf *config.Config, log *logger.Logger) (*Service, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	httpClient := http.New(log)
	weatherProvider, err := openmeteo.New(httpClient, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather provider: %w", err)
	}
	transitProvider, err := bvg.New(httpClient, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create transit provider: %w", err)
	}
	reverser, err := nominatim.New(httpClient, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create reverse geocoder: %w", err)
	}
	citySearcher, err := geosearch.New(httpClient, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create city searcher: %w", err)
	}

	service := &Service{
		config:          conf,
		logger:          log,
		scheduler:       scheduler,
		weatherProvider: weatherProvider,
		transitProvider: transitProvider,
		reverser:        reverser,
		citySearcher:    citySearcher,
		city:            geocode.UnknownCity,
	}

	service.Weather, err = source.New("weather", conf.Intervals.Weather, scheduler,
		service.fetchWeather, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create weather source: %w", err)
	}
	service.Bus, err = source.New("transit-bus", conf.Intervals.Transit, scheduler,
		service.fetchBusDepartures, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create bus source: %w", err)
	}
	service.Rail, err = source.New("transit-rail", conf.Intervals.Transit, scheduler,
		service.fetchRailDepartures, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create rail source: %w", err)
	}

	return service, nil
}

// Run starts the scheduler and all sources, then blocks until the context is
// cancelled. Teardown stops the sources and shuts the scheduler down.
func (s *Service) Run(ctx context.Context) error {
	s.scheduler.Start()

	s.resolveCity(ctx)

	if err := s.Weather.Start(ctx); err != nil {
		return err
	}
	if err := s.Bus.Start(ctx); err != nil {
		return err
	}
	if err := s.Rail.Start(ctx); err != nil {
		return err
	}
	s.logger.Info("synchronization sources started",
		slog.String("weather_interval", s.config.Intervals.Weather.String()),
		slog.String("transit_interval", s.config.Intervals.Transit.String()))

	<-ctx.Done()
	return s.Shutdown()
}

// Shutdown stops all sources and the underlying scheduler.
func (s *Service) Shutdown() error {
	for _, stop := range []func() error{s.Weather.Stop, s.Bus.Stop, s.Rail.Stop} {
		if err := stop(); err != nil {
			s.logger.Error("failed to stop source", logger.Err(err))
		}
	}
	return s.scheduler.Shutdown()
}

// City returns the city name the configured coordinates resolved to.
func (s *Service) City() string {
	s.cityLock.RLock()
	defer s.cityLock.RUnlock()
	return s.city
}

// ForecastDays returns the number of forecast days exposed to widgets.
func (s *Service) ForecastDays() int {
	return s.config.Weather.ForecastDays
}

// resolveCity labels the configured coordinates with a city name. The lookup
// is advisory; on failure the sentinel stays in place.
func (s *Service) resolveCity(ctx context.Context) {
	city, err := s.reverser.CityName(ctx, s.config.Weather.Latitude, s.config.Weather.Longitude)
	if err != nil {
		s.logger.Warn("failed to resolve city name", logger.Err(err))
		return
	}
	s.cityLock.Lock()
	s.city = city
	s.cityLock.Unlock()
	s.logger.Debug("city name resolved", slog.String("city", city))
}

// SearchCities resolves a free-text city query. The search backs typeahead UI
// only, so failures degrade to an empty result instead of propagating.
func (s *Service) SearchCities(ctx context.Context, query string) []geocode.City {
	cities, err := s.citySearcher.SearchCities(ctx, query)
	if err != nil {
		s.logger.Warn("city search failed", slog.String("query", query), logger.Err(err))
		return []geocode.City{}
	}
	return cities
}

// SearchStops resolves a free-text stop query. Advisory like SearchCities.
func (s *Service) SearchStops(ctx context.Context, query string) []transit.Stop {
	stops, err := s.transitProvider.SearchStops(ctx, query)
	if err != nil {
		s.logger.Warn("stop search failed", slog.String("query", query), logger.Err(err))
		return []transit.Stop{}
	}
	return stops
}
