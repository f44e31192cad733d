// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

package weather

import "time"

// Code is a WMO weather interpretation code as reported by the forecast provider.
type Code int

// WMO weather interpretation codes covered by the taxonomy.
const (
	CodeClearSky           Code = 0
	CodeMainlyClear        Code = 1
	CodePartlyCloudy       Code = 2
	CodeOvercast           Code = 3
	CodeFog                Code = 45
	CodeRimeFog            Code = 48
	CodeLightDrizzle       Code = 51
	CodeModerateDrizzle    Code = 53
	CodeDenseDrizzle       Code = 55
	CodeSlightRain         Code = 61
	CodeModerateRain       Code = 63
	CodeHeavyRain          Code = 65
	CodeSlightSnow         Code = 71
	CodeModerateSnow       Code = 73
	CodeHeavySnow          Code = 75
	CodeSnowGrains         Code = 77
	CodeSlightRainShowers  Code = 80
	CodeModerateShowers    Code = 81
	CodeViolentShowers     Code = 82
	CodeSlightSnowShowers  Code = 85
	CodeHeavySnowShowers   Code = 86
	CodeThunderstorm       Code = 95
	CodeThunderstormSlHail Code = 96
	CodeThunderstormHvHail Code = 99
)

// Condition pairs a human-readable description with an icon base name. The icon
// base name is resolved against the asset set in icons.go after the day/night
// suffix has been applied.
type Condition struct {
	Description string
	Icon        string
}

// Unavailable is the sentinel condition for weather codes outside the taxonomy.
// Its icon takes no day/night suffix so that it always resolves in the asset set.
var Unavailable = Condition{Description: "Unknown", Icon: iconNotAvailable}

// conditions is the exhaustive Code-keyed taxonomy. Codes outside this table
// fall back to Unavailable, never to an empty entry.
var conditions = map[Code]Condition{
	CodeClearSky:           {Description: "Clear sky", Icon: "clear"},
	CodeMainlyClear:        {Description: "Mainly clear", Icon: "partly-cloudy"},
	CodePartlyCloudy:       {Description: "Partly cloudy", Icon: "partly-cloudy"},
	CodeOvercast:           {Description: "Overcast", Icon: "overcast"},
	CodeFog:                {Description: "Foggy", Icon: "fog"},
	CodeRimeFog:            {Description: "Depositing rime fog", Icon: "fog"},
	CodeLightDrizzle:       {Description: "Light drizzle", Icon: "drizzle"},
	CodeModerateDrizzle:    {Description: "Moderate drizzle", Icon: "drizzle"},
	CodeDenseDrizzle:       {Description: "Dense drizzle", Icon: "drizzle"},
	CodeSlightRain:         {Description: "Slight rain", Icon: "rain"},
	CodeModerateRain:       {Description: "Moderate rain", Icon: "rain"},
	CodeHeavyRain:          {Description: "Heavy rain", Icon: "rain"},
	CodeSlightSnow:         {Description: "Slight snow", Icon: "snow"},
	CodeModerateSnow:       {Description: "Moderate snow", Icon: "snow"},
	CodeHeavySnow:          {Description: "Heavy snow", Icon: "snow"},
	CodeSnowGrains:         {Description: "Snow grains", Icon: "snow"},
	CodeSlightRainShowers:  {Description: "Slight rain showers", Icon: "partly-cloudy-rain"},
	CodeModerateShowers:    {Description: "Moderate rain showers", Icon: "rain"},
	CodeViolentShowers:     {Description: "Violent rain showers", Icon: "rain"},
	CodeSlightSnowShowers:  {Description: "Slight snow showers", Icon: "partly-cloudy-snow"},
	CodeHeavySnowShowers:   {Description: "Heavy snow showers", Icon: "snow"},
	CodeThunderstorm:       {Description: "Thunderstorm", Icon: "thunderstorms"},
	CodeThunderstormSlHail: {Description: "Thunderstorm with slight hail", Icon: "thunderstorms-rain"},
	CodeThunderstormHvHail: {Description: "Thunderstorm with heavy hail", Icon: "thunderstorms-rain"},
}

// Condition returns the taxonomy entry for the code, falling back to Unavailable
// for codes outside the table.
func (c Code) Condition() Condition {
	if cond, ok := conditions[c]; ok {
		return cond
	}
	return Unavailable
}

// IsDaytime reports whether the given local time counts as day for icon
// selection. The rule is a fixed local-clock heuristic: hour in [6,20) is day.
func IsDaytime(t time.Time) bool {
	hour := t.Hour()
	return hour >= 6 && hour < 20
}

// IconName returns the icon key for the code at the given reference time. The
// day/night suffix is appended to the icon base name; the sentinel icon is
// returned as-is since the asset set carries no day/night variants for it.
func IconName(c Code, ref time.Time) string {
	cond := c.Condition()
	if cond.Icon == iconNotAvailable {
		return cond.Icon
	}
	if IsDaytime(ref) {
		return cond.Icon + "-day"
	}
	return cond.Icon + "-night"
}

// NoonOf returns local noon of the calendar day of t. Forecast icons use noon
// as their reference instant, so they always come out as day variants.
func NoonOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}
