package catalog

import "strings"

// City is a supported Indonesian city, loaded once at startup.
type City struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Province string  `json:"province"`

	// BMKGCode is the adm4 code used by the BMKG forecast feed.
	BMKGCode string `json:"-"`
}

// RiskZone is a known hazard area owned by a city.
type RiskZone struct {
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Radius      int     `json:"radius"`
	Risk        string  `json:"risk"` // "medium" or "high"
	City        string  `json:"city"`
	Type        string  `json:"type"` // flood, landslide, tsunami
	Description string  `json:"description"`
}

// EvacuationPoint is a shelter location owned by a city.
type EvacuationPoint struct {
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	City     string  `json:"city"`
	Type     string  `json:"type"`
	Capacity int     `json:"capacity"`
}

// Catalog holds the immutable reference datasets. Safe for unsynchronized
// concurrent reads; never mutated after Load.
type Catalog struct {
	cities []City
	zones  []RiskZone
	points []EvacuationPoint

	byID map[string]City
}

// Load builds the catalog from the static tables.
func Load() *Catalog {
	c := &Catalog{
		cities: cities,
		zones:  riskZones,
		points: evacuationPoints,
		byID:   make(map[string]City, len(cities)),
	}
	for _, city := range cities {
		c.byID[city.ID] = city
	}
	return c
}

// Cities returns the full city catalog.
func (c *Catalog) Cities() []City {
	return c.cities
}

// CityByID looks up a city by identifier, case-insensitively.
func (c *Catalog) CityByID(id string) (City, bool) {
	city, ok := c.byID[strings.ToLower(id)]
	return city, ok
}

// DefaultCity is used when a request names no city or an unknown one.
func (c *Catalog) DefaultCity() City {
	return c.cities[0]
}

// Zones returns the full risk-zone catalog.
func (c *Catalog) Zones() []RiskZone {
	return c.zones
}

// ZonesByCity returns the risk zones owned by a city. Unknown city yields
// an empty slice, never an error.
func (c *Catalog) ZonesByCity(cityID string) []RiskZone {
	id := strings.ToLower(cityID)
	out := []RiskZone{}
	for _, z := range c.zones {
		if z.City == id {
			out = append(out, z)
		}
	}
	return out
}

// Points returns the full evacuation-point catalog.
func (c *Catalog) Points() []EvacuationPoint {
	return c.points
}

// PointsByCity returns the evacuation points owned by a city. Unknown city
// yields an empty slice.
func (c *Catalog) PointsByCity(cityID string) []EvacuationPoint {
	id := strings.ToLower(cityID)
	out := []EvacuationPoint{}
	for _, p := range c.points {
		if p.City == id {
			out = append(out, p)
		}
	}
	return out
}
