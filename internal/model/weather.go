package model

import "time"

// DateLayout is the wire format of forecast dates.
const DateLayout = "2006-01-02"

// Reading is a single recorded weather observation.
type Reading struct {
	ID            int64
	RegionName    string
	Temperature   float64
	Condition     string
	Humidity      int
	Pressure      *float64
	WindSpeed     *float64
	WindDirection *string
	RecordedAt    time.Time
	IsForecast    bool
	ForecastDay   int
}

// NewReading is the input for appending a reading.
type NewReading struct {
	RegionName    string   `validate:"required"`
	Temperature   float64
	Condition     string   `validate:"required"`
	Humidity      int      `validate:"min=0,max=100"`
	Pressure      *float64
	WindSpeed     *float64 `validate:"omitempty,min=0"`
	WindDirection *string  `validate:"omitempty,max=3"`
	IsForecast    bool
	ForecastDay   int `validate:"min=0"`
}

// ForecastEntry is one forecast day for a region.
type ForecastEntry struct {
	ID                       int64
	RegionName               string
	Date                     time.Time
	DayName                  string
	TemperatureMin           *float64
	TemperatureMax           *float64
	TemperatureAvg           *float64
	Condition                string
	Humidity                 int
	Pressure                 *float64
	WindSpeed                *float64
	WindDirection            *string
	PrecipitationProbability int
	CreatedAt                *time.Time
}

// NewForecast is the input for appending a forecast entry.
type NewForecast struct {
	RegionName               string    `validate:"required"`
	Date                     time.Time `validate:"required"`
	DayName                  string
	TemperatureMin           *float64
	TemperatureMax           *float64
	TemperatureAvg           *float64
	Condition                string   `validate:"required"`
	Humidity                 int      `validate:"min=0,max=100"`
	Pressure                 *float64
	WindSpeed                *float64 `validate:"omitempty,min=0"`
	WindDirection            *string  `validate:"omitempty,max=3"`
	PrecipitationProbability int      `validate:"min=0,max=100"`
}

// WeatherResponse is the current-weather shape exposed over HTTP.
type WeatherResponse struct {
	Region        string    `json:"region"`
	Temperature   float64   `json:"temperature"`
	Condition     string    `json:"condition"`
	Humidity      int       `json:"humidity"`
	Pressure      *float64  `json:"pressure,omitempty"`
	WindSpeed     *float64  `json:"wind_speed,omitempty"`
	WindDirection *string   `json:"wind_direction,omitempty"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// ForecastResponse is the forecast-day shape exposed over HTTP.
type ForecastResponse struct {
	Region                   string   `json:"region"`
	Date                     string   `json:"forecast_date"`
	Day                      string   `json:"day"`
	Temperature              float64  `json:"temperature"`
	TemperatureMin           *float64 `json:"temperature_min,omitempty"`
	TemperatureMax           *float64 `json:"temperature_max,omitempty"`
	Condition                string   `json:"condition"`
	Humidity                 int      `json:"humidity"`
	Pressure                 *float64 `json:"pressure,omitempty"`
	WindSpeed                *float64 `json:"wind_speed,omitempty"`
	WindDirection            *string  `json:"wind_direction,omitempty"`
	PrecipitationProbability int      `json:"precipitation_probability"`
}
