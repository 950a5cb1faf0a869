package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/neexbeast/amadeus/internal/normalize"
	"github.com/neexbeast/amadeus/internal/service"
)

const defaultHistoryDays = 7

// GetWeather handles GET /api/v1/weather/{regionName}.
// Regions without readings get the default reading, never a 404.
func (h *Handlers) GetWeather(w http.ResponseWriter, r *http.Request) {
	current, err := h.weather.Current(r.Context(), chi.URLParam(r, "regionName"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, current)
}

// GetForecast handles GET /api/v1/weather/forecast/{regionName}?day=N.
func (h *Handlers) GetForecast(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "day", 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	forecast, err := h.weather.Forecast(r.Context(), chi.URLParam(r, "regionName"), days)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, forecast)
}

// GetHistory handles GET /api/v1/weather/history/{regionName}?days=N.
func (h *Handlers) GetHistory(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", defaultHistoryDays)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	history, err := h.weather.History(r.Context(), chi.URLParam(r, "regionName"), days)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, history)
}

// RecordReading handles POST /api/v1/weather.
func (h *Handlers) RecordReading(w http.ResponseWriter, r *http.Request) {
	var in normalize.ReadingInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}

	reading, err := h.weather.RecordReading(r.Context(), in.NewReading())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, reading)
}

// RecordForecast handles POST /api/v1/weather/forecast.
func (h *Handlers) RecordForecast(w http.ResponseWriter, r *http.Request) {
	var in normalize.ForecastInput
	if err := decodeJSON(w, r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}

	nf, err := in.NewForecast()
	if err != nil {
		h.writeError(w, r, &service.ValidationError{Field: "forecast_date", Message: "must be a YYYY-MM-DD date"})
		return
	}

	entry, err := h.weather.RecordForecast(r.Context(), nf)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, entry)
}
