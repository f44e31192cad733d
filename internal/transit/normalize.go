// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

package transit

import (
	"math"
	"strings"
	"time"
)

// DelayMinutes converts a provider delay in seconds into whole minutes. A zero
// delay means "on time" and yields nil, matching an absent delay field; early
// departures come out negative.
func DelayMinutes(delaySeconds *int) *int {
	if delaySeconds == nil || *delaySeconds == 0 {
		return nil
	}
	minutes := int(math.Round(float64(*delaySeconds) / 60))
	return &minutes
}

// MinutesUntil returns the rounded distance from now to the departure instant
// in minutes. Departures already passed within the lookahead window come out
// negative.
func MinutesUntil(now, departure time.Time) int {
	return int(math.Round(departure.Sub(now).Minutes()))
}

// IsLocalRail reports whether a departure belongs in the local-rail view:
// suburban or regional product, excluding the ICE/IC long-distance tariff
// classes by line-name prefix.
func IsLocalRail(d Departure) bool {
	if d.Category != CategorySuburban && d.Category != CategoryRegional {
		return false
	}
	if strings.HasPrefix(d.Line, "ICE") || strings.HasPrefix(d.Line, "IC") {
		return false
	}
	return true
}

// FilterLocalRail keeps only local-rail departures and truncates the result to
// at most limit entries, preserving provider order.
func FilterLocalRail(departures []Departure, limit int) []Departure {
	kept := make([]Departure, 0, limit)
	for _, d := range departures {
		if !IsLocalRail(d) {
			continue
		}
		kept = append(kept, d)
		if len(kept) == limit {
			break
		}
	}
	return kept
}
