package repository

import (
	"time"

	"github.com/neexbeast/amadeus/internal/model"
)

// FixtureRegions is the development data set served by the mock backend.
func FixtureRegions() []model.Region {
	return []model.Region{
		{ID: 1, Name: "Paris", Population: 2165423, Language: "français", Country: "France"},
		{ID: 2, Name: "Lyon", Population: 515695, Language: "français", Country: "France"},
		{ID: 3, Name: "Marseille", Population: 863310, Language: "français", Country: "France"},
		{ID: 4, Name: "Toulouse", Population: 479553, Language: "français", Country: "France"},
		{ID: 5, Name: "Nice", Population: 342295, Language: "français", Country: "France"},
		{ID: 10, Name: "Normandie", Population: 3320000, Language: "français", Country: "France"},
	}
}

// FixtureReadings returns current readings for the fixture cities, recorded at now.
func FixtureReadings(now time.Time) []model.Reading {
	reading := func(id int64, name string, temp float64, cond string, hum int, pressure, wind float64, dir string) model.Reading {
		return model.Reading{
			ID:            id,
			RegionName:    name,
			Temperature:   temp,
			Condition:     cond,
			Humidity:      hum,
			Pressure:      &pressure,
			WindSpeed:     &wind,
			WindDirection: &dir,
			RecordedAt:    now,
		}
	}
	return []model.Reading{
		reading(1, "Paris", 22.5, "Partly Cloudy", 65, 1013.25, 15.2, "NW"),
		reading(2, "Lyon", 25.1, "Sunny", 58, 1015.80, 8.7, "S"),
		reading(3, "Marseille", 28.3, "Sunny", 52, 1016.90, 12.3, "SE"),
	}
}
