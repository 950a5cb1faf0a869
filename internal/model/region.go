package model

import "time"

// Region is the canonical region record shared by every adapter.
type Region struct {
	ID         int64
	Name       string
	Population int
	Language   string
	Country    string
	Latitude   *float64
	Longitude  *float64
	CreatedAt  *time.Time
	UpdatedAt  *time.Time
}

// RegionPatch carries optional region fields. A nil field was not supplied.
type RegionPatch struct {
	Name       *string  `validate:"omitempty,max=100"`
	Population *int     `validate:"omitempty,min=0"`
	Language   *string  `validate:"omitempty,max=50"`
	Country    *string  `validate:"omitempty,max=100"`
	Latitude   *float64 `validate:"omitempty,min=-90,max=90"`
	Longitude  *float64 `validate:"omitempty,min=-180,max=180"`
}

// RegionResponse is the region shape exposed over HTTP.
type RegionResponse struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	Population int      `json:"nb_habitants"`
	Language   string   `json:"language"`
	Country    string   `json:"country"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}
