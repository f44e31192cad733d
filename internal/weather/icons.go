// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

package weather

const iconNotAvailable = "not-available"

// iconAssets is the set of icon keys the widget layer can render. It mirrors
// the basmilius weather-icons subset shipped with the frontend; every key the
// taxonomy can produce must be present here.
var iconAssets = map[string]struct{}{
	"clear-day":                {},
	"clear-night":              {},
	"partly-cloudy-day":        {},
	"partly-cloudy-night":      {},
	"overcast":                 {},
	"overcast-day":             {},
	"overcast-night":           {},
	"fog":                      {},
	"fog-day":                  {},
	"fog-night":                {},
	"drizzle":                  {},
	"drizzle-day":              {},
	"drizzle-night":            {},
	"rain":                     {},
	"rain-day":                 {},
	"rain-night":               {},
	"snow":                     {},
	"snow-day":                 {},
	"snow-night":               {},
	"partly-cloudy-rain-day":   {},
	"partly-cloudy-rain-night": {},
	"partly-cloudy-snow-day":   {},
	"partly-cloudy-snow-night": {},
	"thunderstorms":            {},
	"thunderstorms-day":        {},
	"thunderstorms-night":      {},
	"thunderstorms-rain":       {},
	"thunderstorms-rain-day":   {},
	"thunderstorms-rain-night": {},
	iconNotAvailable:           {},
}

// IconResolvable reports whether name maps to a renderable icon asset.
func IconResolvable(name string) bool {
	_, ok := iconAssets[name]
	return ok
}
