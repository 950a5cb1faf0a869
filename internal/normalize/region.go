package normalize

import (
	"strings"

	"github.com/neexbeast/amadeus/internal/model"
)

// Region defaults applied on create and when a stored record is missing a value.
const (
	DefaultLanguage = "français"
	DefaultCountry  = "France"
)

// RegionInput is the permissive JSON body accepted for region create and update.
// Legacy clients send nb_habitants and lat/lon; newer ones population and latitude/longitude.
type RegionInput struct {
	Name        *string    `json:"name"`
	Population  *FlexInt   `json:"population"`
	NbHabitants *FlexInt   `json:"nb_habitants"`
	Language    *string    `json:"language"`
	Country     *string    `json:"country"`
	Lat         *FlexFloat `json:"lat"`
	Latitude    *FlexFloat `json:"latitude"`
	Lon         *FlexFloat `json:"lon"`
	Longitude   *FlexFloat `json:"longitude"`
}

// Patch maps the input to a RegionPatch, preferring the newer key when both are sent.
func (in RegionInput) Patch() model.RegionPatch {
	var p model.RegionPatch

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		p.Name = &name
	}

	pop := in.Population
	if pop == nil {
		pop = in.NbHabitants
	}
	if pop != nil {
		v := int(*pop)
		p.Population = &v
	}

	p.Language = trimmed(in.Language)
	p.Country = trimmed(in.Country)

	lat := in.Latitude
	if lat == nil {
		lat = in.Lat
	}
	p.Latitude = floatPtr(lat)

	lon := in.Longitude
	if lon == nil {
		lon = in.Lon
	}
	p.Longitude = floatPtr(lon)

	return p
}

// NewRegion builds a region from a create patch, filling every unspecified field with its default.
func NewRegion(p model.RegionPatch) model.Region {
	r := model.Region{
		Language:  DefaultLanguage,
		Country:   DefaultCountry,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Population != nil && *p.Population > 0 {
		r.Population = *p.Population
	}
	if p.Language != nil && *p.Language != "" {
		r.Language = *p.Language
	}
	if p.Country != nil && *p.Country != "" {
		r.Country = *p.Country
	}
	return r
}

// ApplyPatch overwrites the fields of r that are set in p.
func ApplyPatch(r *model.Region, p model.RegionPatch) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Population != nil {
		r.Population = *p.Population
	}
	if p.Language != nil {
		r.Language = *p.Language
	}
	if p.Country != nil {
		r.Country = *p.Country
	}
	if p.Latitude != nil {
		r.Latitude = p.Latitude
	}
	if p.Longitude != nil {
		r.Longitude = p.Longitude
	}
}

// Region maps a stored region to its response shape. Audit fields are dropped.
func Region(r model.Region) model.RegionResponse {
	resp := model.RegionResponse{
		ID:         r.ID,
		Name:       r.Name,
		Population: r.Population,
		Language:   r.Language,
		Country:    r.Country,
		Latitude:   r.Latitude,
		Longitude:  r.Longitude,
	}
	if resp.Population < 0 {
		resp.Population = 0
	}
	if resp.Language == "" {
		resp.Language = DefaultLanguage
	}
	if resp.Country == "" {
		resp.Country = DefaultCountry
	}
	return resp
}

// Regions maps a slice of stored regions. The result is never nil.
func Regions(rs []model.Region) []model.RegionResponse {
	out := make([]model.RegionResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, Region(r))
	}
	return out
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
