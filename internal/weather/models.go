package weather

import "context"

// Source tags distinguish genuine observations from synthetic substitutes.
const (
	SourceBMKG     = "BMKG"
	SourceFallback = "Fallback"
)

// WeatherRecord is the canonical weather shape callers can depend on,
// regardless of upstream payload variations. Every field carries a value
// or a defined sentinel; none is ever absent.
type WeatherRecord struct {
	Source        string          `json:"source"`
	City          string          `json:"city"`
	Temperature   float64         `json:"temperature"`
	Humidity      float64         `json:"humidity"`
	WindSpeed     float64         `json:"wind_speed"`
	WindDirection string          `json:"wind_direction"`
	WeatherCode   int             `json:"weather_code"`
	Description   string          `json:"weather_desc"`
	LocalDatetime string          `json:"local_datetime"`
	Visibility    string          `json:"visibility"`
	UVIndex       string          `json:"uv_index"`
	Forecast      []ForecastEntry `json:"forecast"`
}

// ForecastEntry is one normalized hourly forecast slot.
type ForecastEntry struct {
	LocalDatetime string  `json:"local_datetime"`
	Temperature   float64 `json:"temperature"`
	Humidity      float64 `json:"humidity"`
	WindSpeed     float64 `json:"wind_speed"`
	WindDirection string  `json:"wind_direction"`
	WeatherCode   int     `json:"weather_code"`
	Description   string  `json:"weather_desc"`
}

// EarthquakeEvent is a normalized seismic event. Produced fresh per
// request; never persisted, never synthesized.
type EarthquakeEvent struct {
	Source    string `json:"source,omitempty"`
	DateTime  string `json:"datetime"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Magnitude string `json:"magnitude"`
	Depth     string `json:"depth"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Location  string `json:"location"`
	Potential string `json:"potential,omitempty"`
	Felt      string `json:"felt"`
	Shakemap  string `json:"shakemap,omitempty"`
}

// Warning is one early-warning alert item from the nowcast feed.
type Warning struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PubDate     string `json:"pubDate"`
	Link        string `json:"link"`
}

// Feed abstracts the upstream meteorological/seismic source. Implementations
// issue a single bounded-timeout attempt per call; resilience policy
// (fallback or empty result) lives in the Service.
type Feed interface {
	Forecast(ctx context.Context, admCode string) (map[string]any, error)
	LatestQuake(ctx context.Context) (map[string]any, error)
	FeltQuakes(ctx context.Context) (map[string]any, error)
	Nowcast(ctx context.Context) ([]byte, error)
}
