package weather

import (
	"context"
	"log"

	"github.com/siagaid/siaga-api/internal/catalog"
)

// defaultAdmCode is used for cities without a feed code of their own.
const defaultAdmCode = "31.71.01.1001"

// Service orchestrates upstream fetches and applies the per-feed resilience
// policy: weather falls back to a synthetic record, seismic and warning
// feeds degrade to empty results.
type Service struct {
	feed Feed
}

// NewService creates a new Service over the given upstream feed.
func NewService(feed Feed) *Service {
	return &Service{feed: feed}
}

// Weather returns the canonical weather record for a city. It never fails:
// an unreachable or unusable upstream yields a synthetic record tagged as
// such.
func (s *Service) Weather(ctx context.Context, city catalog.City) WeatherRecord {
	code := city.BMKGCode
	if code == "" {
		code = defaultAdmCode
	}

	payload, err := s.feed.Forecast(ctx, code)
	if err != nil {
		log.Printf("weather: forecast fetch failed for %s: %v", city.ID, err)
		return fallbackRecord(city.Name)
	}

	rec := normalizeWeather(payload)
	if rec == nil {
		log.Printf("weather: unusable forecast payload for %s", city.ID)
		return fallbackRecord(city.Name)
	}

	rec.City = city.Name
	return *rec
}

// LatestEarthquake returns the most recent seismic event, or nil when the
// feed is unavailable or unusable.
func (s *Service) LatestEarthquake(ctx context.Context) *EarthquakeEvent {
	payload, err := s.feed.LatestQuake(ctx)
	if err != nil {
		log.Printf("weather: earthquake fetch failed: %v", err)
		return nil
	}
	return normalizeQuake(payload)
}

// FeltEarthquakes returns up to 15 recent felt events. Failures yield an
// empty slice.
func (s *Service) FeltEarthquakes(ctx context.Context) []EarthquakeEvent {
	payload, err := s.feed.FeltQuakes(ctx)
	if err != nil {
		log.Printf("weather: felt earthquakes fetch failed: %v", err)
		return []EarthquakeEvent{}
	}
	return normalizeFeltQuakes(payload)
}

// EarlyWarnings returns the parsed alert list. Failures yield an empty
// slice.
func (s *Service) EarlyWarnings(ctx context.Context) []Warning {
	data, err := s.feed.Nowcast(ctx)
	if err != nil {
		log.Printf("weather: early warnings fetch failed: %v", err)
		return []Warning{}
	}
	return parseNowcast(data)
}
