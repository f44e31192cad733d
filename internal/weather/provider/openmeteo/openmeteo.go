// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

// Package openmeteo implements the weather.Provider interface against the
// Open-Meteo forecast API.
package openmeteo

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"time"

	"github.com/lifeboard/widgetsync/internal/http"
	"github.com/lifeboard/widgetsync/internal/logger"
	"github.com/lifeboard/widgetsync/internal/weather"
)

const (
	name        = "open-meteo"
	apiEndpoint = "https://api.open-meteo.com/v1/forecast"
	apiTimeout  = time.Second * 10

	hourlyFields = "relativehumidity_2m,apparent_temperature,uv_index"
	dailyFields  = "temperature_2m_max,temperature_2m_min,weathercode"
	forecastDays = 7
)

type OpenMeteo struct {
	log  *logger.Logger
	http *http.Client
}

// resTime parses the provider's local-time rendering ("2006-01-02T15:04").
type resTime struct {
	time.Time
}

// resDate parses the provider's date-only rendering ("2006-01-02").
type resDate struct {
	time.Time
}

type response struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	Timezone       string  `json:"timezone"`
	CurrentWeather *struct {
		Temperature float64 `json:"temperature"`
		WindSpeed   float64 `json:"windspeed"`
		WeatherCode int     `json:"weathercode"`
		Time        resTime `json:"time"`
	} `json:"current_weather"`
	Hourly *struct {
		Time                []resTime `json:"time"`
		RelativeHumidity    []float64 `json:"relativehumidity_2m"`
		ApparentTemperature []float64 `json:"apparent_temperature"`
		UVIndex             []float64 `json:"uv_index"`
	} `json:"hourly"`
	Daily *struct {
		Time           []resDate `json:"time"`
		TemperatureMax []float64 `json:"temperature_2m_max"`
		TemperatureMin []float64 `json:"temperature_2m_min"`
		WeatherCode    []int     `json:"weathercode"`
	} `json:"daily"`
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

// GetWeather fetches current conditions plus the 7-day forecast and normalizes
// them into a weather.Report. A missing current or daily block fails the whole
// call; a missing hourly block only degrades the optional current-conditions
// fields to nil.
func (o *OpenMeteo) GetWeather(ctx context.Context, lat, lon float64) (*weather.Report, error) {
	res := new(response)

	query := url.Values{}
	query.Set("latitude", fmt.Sprintf("%.4f", lat))
	query.Set("longitude", fmt.Sprintf("%.4f", lon))
	query.Set("current_weather", "true")
	query.Set("hourly", hourlyFields)
	query.Set("daily", dailyFields)
	query.Set("timezone", "auto")
	query.Set("forecast_days", fmt.Sprintf("%d", forecastDays))

	if err := o.http.GetWithTimeout(ctx, apiEndpoint, res, query, nil, apiTimeout); err != nil {
		return nil, fmt.Errorf("failed to retrieve weather data from Open-Meteo API: %w", err)
	}

	if res.CurrentWeather == nil {
		return nil, &http.ParseError{Err: fmt.Errorf("response is missing the current_weather block")}
	}

	observed := res.CurrentWeather.Time.Time
	current := weather.Snapshot{
		Temperature: roundInt(res.CurrentWeather.Temperature),
		WeatherCode: weather.Code(res.CurrentWeather.WeatherCode),
		Description: weather.Code(res.CurrentWeather.WeatherCode).Condition().Description,
		IconName:    weather.IconName(weather.Code(res.CurrentWeather.WeatherCode), observed),
		WindSpeed:   roundInt(res.CurrentWeather.WindSpeed),
		ObservedAt:  observed,
	}
	o.fillHourly(&current, res)

	forecast, err := o.normalizeDaily(res)
	if err != nil {
		return nil, err
	}

	return &weather.Report{
		Current:   current,
		Forecast:  forecast,
		Latitude:  res.Latitude,
		Longitude: res.Longitude,
		Timezone:  res.Timezone,
	}, nil
}

// fillHourly looks up humidity, apparent temperature and UV index from the
// hourly series by matching the calendar date and hour of the observation.
// Without an exact match the fields stay nil; values are never interpolated.
func (o *OpenMeteo) fillHourly(current *weather.Snapshot, res *response) {
	if res.Hourly == nil {
		return
	}

	idx := -1
	for i, ht := range res.Hourly.Time {
		if sameDateAndHour(ht.Time, current.ObservedAt) {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}

	if idx < len(res.Hourly.RelativeHumidity) {
		humidity := roundInt(res.Hourly.RelativeHumidity[idx])
		current.Humidity = &humidity
	}
	if idx < len(res.Hourly.ApparentTemperature) {
		feelsLike := roundInt(res.Hourly.ApparentTemperature[idx])
		current.FeelsLike = &feelsLike
	}
	if idx < len(res.Hourly.UVIndex) {
		uv := math.Round(res.Hourly.UVIndex[idx]*10) / 10
		current.UVIndex = &uv
	}
}

// normalizeDaily turns the daily block into at most 7 forecast entries. The
// day/night reference of a forecast icon is fixed at local noon of its day.
func (o *OpenMeteo) normalizeDaily(res *response) ([]weather.ForecastDay, error) {
	if res.Daily == nil {
		return nil, &http.ParseError{Err: fmt.Errorf("response is missing the daily block")}
	}

	days := len(res.Daily.Time)
	if len(res.Daily.TemperatureMax) < days || len(res.Daily.TemperatureMin) < days ||
		len(res.Daily.WeatherCode) < days {
		return nil, &http.ParseError{Err: fmt.Errorf("daily series have mismatched lengths")}
	}
	if days > forecastDays {
		days = forecastDays
	}

	forecast := make([]weather.ForecastDay, 0, days)
	for i := 0; i < days; i++ {
		code := weather.Code(res.Daily.WeatherCode[i])
		date := res.Daily.Time[i].Time
		forecast = append(forecast, weather.ForecastDay{
			Date:        date,
			High:        roundInt(res.Daily.TemperatureMax[i]),
			Low:         roundInt(res.Daily.TemperatureMin[i]),
			WeatherCode: code,
			Description: code.Condition().Description,
			IconName:    weather.IconName(code, weather.NoonOf(date)),
		})
	}

	return forecast, nil
}

func roundInt(val float64) int {
	return int(math.Round(val))
}

func sameDateAndHour(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day() && a.Hour() == b.Hour()
}

func (r *resTime) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' {
		return fmt.Errorf("invalid time format: %s", string(b))
	}

	apiTime, err := time.ParseInLocation("2006-01-02T15:04", string(b[1:len(b)-1]), time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse time: %w", err)
	}
	r.Time = apiTime

	return nil
}

func (r *resDate) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' {
		return fmt.Errorf("invalid date format: %s", string(b))
	}

	apiDate, err := time.ParseInLocation("2006-01-02", string(b[1:len(b)-1]), time.Local)
	if err != nil {
		return fmt.Errorf("failed to parse date: %w", err)
	}
	r.Time = apiDate

	return nil
}
