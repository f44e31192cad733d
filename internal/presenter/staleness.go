// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

package presenter

import (
	"fmt"
	"time"
)

// Staleness renders the elapsed time since the last successful refresh. One
// canonical phrasing table: "Just now" under a minute, singular at exactly one
// minute, "N minutes ago" under an hour, and the absolute local time-of-day
// beyond that. Long-stale data deliberately shows a clock time instead of a
// drifting "N hours ago" count.
func Staleness(now, lastUpdated time.Time) string {
	if lastUpdated.IsZero() {
		return ""
	}

	minutes := int(now.Sub(lastUpdated).Minutes())
	switch {
	case minutes < 1:
		return "Just now"
	case minutes == 1:
		return "1 minute ago"
	case minutes < 60:
		return fmt.Sprintf("%d minutes ago", minutes)
	default:
		return "At " + lastUpdated.Local().Format("15:04")
	}
}
