// SPDX-FileCopyrightText: The widgetsync authors
//
// SPDX-License-Identifier: MIT

package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lifeboard/widgetsync/internal/presenter"
	"github.com/lifeboard/widgetsync/internal/transit"
	"github.com/lifeboard/widgetsync/internal/weather"
)

// transitView bundles the two independent transit boards. They share the
// refresh cadence but fail independently, so each carries its own envelope.
type transitView struct {
	Buses  presenter.Envelope[[]transit.Departure] `json:"buses"`
	Trains presenter.Envelope[[]transit.Departure] `json:"trains"`
}

func (s *Server) handleWeather(c *gin.Context) {
	env := presenter.Envelop[weather.Report](s.service.Weather.State(), time.Now())
	c.JSON(http.StatusOK, env)
}

func (s *Server) handleTransit(c *gin.Context) {
	now := time.Now()
	c.JSON(http.StatusOK, transitView{
		Buses:  presenter.Envelop[[]transit.Departure](s.service.Bus.State(), now),
		Trains: presenter.Envelop[[]transit.Departure](s.service.Rail.State(), now),
	})
}

func (s *Server) handleBusDepartures(c *gin.Context) {
	env := presenter.Envelop[[]transit.Departure](s.service.Bus.State(), time.Now())
	c.JSON(http.StatusOK, env)
}

func (s *Server) handleRailDepartures(c *gin.Context) {
	env := presenter.Envelop[[]transit.Departure](s.service.Rail.State(), time.Now())
	c.JSON(http.StatusOK, env)
}

func (s *Server) handleCitySearch(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}
	c.JSON(http.StatusOK, s.service.SearchCities(c.Request.Context(), query))
}

func (s *Server) handleStopSearch(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}
	c.JSON(http.StatusOK, s.service.SearchStops(c.Request.Context(), query))
}
