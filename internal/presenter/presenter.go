// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

// Package presenter turns synchronization state into the JSON views served to
// the widget layer.
package presenter

import (
	"time"

	"github.com/lifeboard/widgetsync/internal/source"
)

// Envelope wraps a source's data with its synchronization metadata. Data stays
// at the last known good value across failed refreshes; Error marks the state
// visibly stale without blanking the widget.
type Envelope[T any] struct {
	Data            *T         `json:"data"`
	Loading         bool       `json:"loading"`
	Error           string     `json:"error,omitempty"`
	LastUpdated     *time.Time `json:"lastUpdated"`
	LastUpdatedText string     `json:"lastUpdatedText"`
}

// Envelop builds the view envelope for a source state at the given instant.
func Envelop[T any](state source.State[T], now time.Time) Envelope[T] {
	env := Envelope[T]{
		Data:            state.Data,
		Loading:         state.Loading,
		Error:           state.Err,
		LastUpdatedText: Staleness(now, state.LastUpdated),
	}
	if !state.LastUpdated.IsZero() {
		lastUpdated := state.LastUpdated
		env.LastUpdated = &lastUpdated
	}
	return env
}
