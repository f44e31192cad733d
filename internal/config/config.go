// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

// Package config provides the application's configuration handling.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/kkyr/fig"
)

const configEnv = "WIDGETSYNC"

// Config represents the application's configuration structure. Defaults match
// the deployment this service was written for: the Spandau coordinates, the
// Kirchhofstr. bus stop and the Spandau main station.
type Config struct {
	LogLevel slog.Level `fig:"loglevel" default:"0"`

	Listen struct {
		Addr string `fig:"addr" default:"localhost:8340"`
	} `fig:"listen"`

	Weather struct {
		Latitude  float64 `fig:"latitude" default:"52.5333"`
		Longitude float64 `fig:"longitude" default:"13.2"`
		// Number of forecast days exposed to the widget layer (the provider
		// horizon stays at 7)
		ForecastDays int `fig:"forecast_days" default:"5"`
	} `fig:"weather"`

	Transit struct {
		BusStopID  string `fig:"bus_stop" default:"900028151"`
		RailStopID string `fig:"rail_stop" default:"900029101"`
		Results    int    `fig:"results" default:"5"`
	} `fig:"transit"`

	Intervals struct {
		Weather time.Duration `fig:"weather" default:"30m"`
		Transit time.Duration `fig:"transit" default:"2m"`
	} `fig:"intervals"`
}

// NewFromFile loads the Config from the given file, applying env overrides.
func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

// New loads the Config from defaults and env overrides only.
func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

// Validate sanity-checks the configuration values.
func (c *Config) Validate() error {
	if c.Weather.Latitude < -90 || c.Weather.Latitude > 90 {
		return fmt.Errorf("invalid latitude: %f", c.Weather.Latitude)
	}
	if c.Weather.Longitude < -180 || c.Weather.Longitude > 180 {
		return fmt.Errorf("invalid longitude: %f", c.Weather.Longitude)
	}
	if c.Weather.ForecastDays < 1 || c.Weather.ForecastDays > 7 {
		return fmt.Errorf("invalid forecast days: %d", c.Weather.ForecastDays)
	}
	if c.Transit.BusStopID == "" || c.Transit.RailStopID == "" {
		return fmt.Errorf("transit stop IDs must not be empty")
	}
	if c.Transit.Results < 1 {
		return fmt.Errorf("invalid transit result count: %d", c.Transit.Results)
	}
	if c.Intervals.Weather < time.Minute {
		return fmt.Errorf("weather interval too short: %s", c.Intervals.Weather)
	}
	if c.Intervals.Transit < 30*time.Second {
		return fmt.Errorf("transit interval too short: %s", c.Intervals.Transit)
	}

	return nil
}
