package normalize

import (
	"fmt"
	"strings"
	"time"

	"github.com/neexbeast/amadeus/internal/model"
)

// Weather defaults used when a record is missing a value.
const (
	DefaultTemperature         = 20.0
	DefaultCondition           = "Unknown"
	DefaultHumidity            = 50
	DefaultForecastTemperature = 22.0
	DefaultForecastCondition   = "Partly Cloudy"
	DefaultForecastHumidity    = 60
)

var dayNames = [...]string{"Dimanche", "Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi"}

// DayName returns the French weekday label of t.
func DayName(t time.Time) string {
	return dayNames[t.Weekday()]
}

// ReadingInput is the permissive JSON body accepted when recording a reading.
type ReadingInput struct {
	RegionName    string     `json:"region_name"`
	Region        string     `json:"region"`
	Temperature   *FlexFloat `json:"temperature"`
	Condition     string     `json:"condition"`
	Humidity      *FlexInt   `json:"humidity"`
	Pressure      *FlexFloat `json:"pressure"`
	WindSpeed     *FlexFloat `json:"wind_speed"`
	WindDirection *string    `json:"wind_direction"`
	IsForecast    bool       `json:"is_forecast"`
	ForecastDay   *FlexInt   `json:"forecast_day"`
}

// NewReading maps the input, defaulting temperature, condition and humidity when absent.
func (in ReadingInput) NewReading() model.NewReading {
	nr := model.NewReading{
		RegionName:    firstNonBlank(in.RegionName, in.Region),
		Temperature:   DefaultTemperature,
		Condition:     firstNonBlank(in.Condition, DefaultCondition),
		Humidity:      DefaultHumidity,
		Pressure:      floatPtr(in.Pressure),
		WindSpeed:     floatPtr(in.WindSpeed),
		WindDirection: upper(in.WindDirection),
		IsForecast:    in.IsForecast,
	}
	if in.Temperature != nil {
		nr.Temperature = float64(*in.Temperature)
	}
	if in.Humidity != nil {
		nr.Humidity = int(*in.Humidity)
	}
	if in.ForecastDay != nil {
		nr.ForecastDay = int(*in.ForecastDay)
	}
	return nr
}

// ForecastInput is the permissive JSON body accepted when recording a forecast entry.
// "temperature" is an alias of temperature_avg and "day" of day_name.
type ForecastInput struct {
	RegionName               string     `json:"region_name"`
	Region                   string     `json:"region"`
	ForecastDate             string     `json:"forecast_date"`
	DayName                  string     `json:"day_name"`
	Day                      string     `json:"day"`
	TemperatureMin           *FlexFloat `json:"temperature_min"`
	TemperatureMax           *FlexFloat `json:"temperature_max"`
	TemperatureAvg           *FlexFloat `json:"temperature_avg"`
	Temperature              *FlexFloat `json:"temperature"`
	Condition                string     `json:"condition"`
	Humidity                 *FlexInt   `json:"humidity"`
	Pressure                 *FlexFloat `json:"pressure"`
	WindSpeed                *FlexFloat `json:"wind_speed"`
	WindDirection            *string    `json:"wind_direction"`
	PrecipitationProbability *FlexInt   `json:"precipitation_probability"`
}

// NewForecast maps the input. It fails only when forecast_date is present but unparseable.
func (in ForecastInput) NewForecast() (model.NewForecast, error) {
	nf := model.NewForecast{
		RegionName:     firstNonBlank(in.RegionName, in.Region),
		DayName:        firstNonBlank(in.DayName, in.Day),
		TemperatureMin: floatPtr(in.TemperatureMin),
		TemperatureMax: floatPtr(in.TemperatureMax),
		TemperatureAvg: floatPtr(in.TemperatureAvg),
		Condition:      firstNonBlank(in.Condition, DefaultForecastCondition),
		Humidity:       DefaultForecastHumidity,
		Pressure:       floatPtr(in.Pressure),
		WindSpeed:      floatPtr(in.WindSpeed),
		WindDirection:  upper(in.WindDirection),
	}
	if nf.TemperatureAvg == nil {
		nf.TemperatureAvg = floatPtr(in.Temperature)
	}
	if in.Humidity != nil {
		nf.Humidity = int(*in.Humidity)
	}
	if in.PrecipitationProbability != nil {
		nf.PrecipitationProbability = int(*in.PrecipitationProbability)
	}

	if s := strings.TrimSpace(in.ForecastDate); s != "" {
		d, err := time.Parse(model.DateLayout, s)
		if err != nil {
			return model.NewForecast{}, fmt.Errorf("parsing forecast_date %q: %w", s, err)
		}
		nf.Date = d
	}
	if nf.DayName == "" && !nf.Date.IsZero() {
		nf.DayName = DayName(nf.Date)
	}
	return nf, nil
}

// Reading maps a stored reading to the current-weather response.
func Reading(r model.Reading) model.WeatherResponse {
	resp := model.WeatherResponse{
		Region:        r.RegionName,
		Temperature:   round2(r.Temperature),
		Condition:     firstNonBlank(r.Condition, DefaultCondition),
		Humidity:      clampPercent(r.Humidity),
		Pressure:      r.Pressure,
		WindSpeed:     r.WindSpeed,
		WindDirection: r.WindDirection,
		RecordedAt:    r.RecordedAt,
	}
	return resp
}

// Readings maps a slice of readings. The result is never nil.
func Readings(rs []model.Reading) []model.WeatherResponse {
	out := make([]model.WeatherResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, Reading(r))
	}
	return out
}

// Forecast maps a stored forecast entry to its response. The average temperature falls
// back to the min/max midpoint, then to the default.
func Forecast(f model.ForecastEntry) model.ForecastResponse {
	resp := model.ForecastResponse{
		Region:                   f.RegionName,
		Day:                      f.DayName,
		Temperature:              DefaultForecastTemperature,
		TemperatureMin:           f.TemperatureMin,
		TemperatureMax:           f.TemperatureMax,
		Condition:                firstNonBlank(f.Condition, DefaultForecastCondition),
		Humidity:                 clampPercent(f.Humidity),
		Pressure:                 f.Pressure,
		WindSpeed:                f.WindSpeed,
		WindDirection:            f.WindDirection,
		PrecipitationProbability: clampPercent(f.PrecipitationProbability),
	}

	switch {
	case f.TemperatureAvg != nil:
		resp.Temperature = *f.TemperatureAvg
	case f.TemperatureMin != nil && f.TemperatureMax != nil:
		resp.Temperature = (*f.TemperatureMin + *f.TemperatureMax) / 2
	}
	resp.Temperature = round2(resp.Temperature)

	if !f.Date.IsZero() {
		resp.Date = f.Date.Format(model.DateLayout)
		if resp.Day == "" {
			resp.Day = DayName(f.Date)
		}
	}
	return resp
}

// Forecasts maps a slice of forecast entries. The result is never nil.
func Forecasts(fs []model.ForecastEntry) []model.ForecastResponse {
	out := make([]model.ForecastResponse, 0, len(fs))
	for _, f := range fs {
		out = append(out, Forecast(f))
	}
	return out
}

func clampPercent(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

func firstNonBlank(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func upper(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToUpper(strings.TrimSpace(*s))
	return &v
}
