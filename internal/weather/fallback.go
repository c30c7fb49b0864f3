package weather

import (
	"math/rand"
	"strconv"
	"time"
)

// Plausible-range pools for synthetic weather. Values mirror typical
// conditions for the covered region.
var (
	fallbackTemperatures = []float64{26, 27, 28, 29, 30, 31, 32}
	fallbackHumidities   = []float64{70, 75, 80, 85, 90}
	fallbackWindSpeeds   = []float64{5, 10, 15, 20}
)

// fallbackRecord synthesizes a plausible weather record for a city when the
// upstream feed is unavailable. The Source tag marks it as synthetic so
// callers can tell it apart from genuine observations. Seismic and warning
// feeds deliberately have no equivalent: fabricated earthquake data would
// mislead, so those degrade to empty results instead.
func fallbackRecord(cityName string) WeatherRecord {
	return WeatherRecord{
		Source:        SourceFallback,
		City:          cityName,
		Temperature:   fallbackTemperatures[rand.Intn(len(fallbackTemperatures))],
		Humidity:      fallbackHumidities[rand.Intn(len(fallbackHumidities))],
		WindSpeed:     fallbackWindSpeeds[rand.Intn(len(fallbackWindSpeeds))],
		WindDirection: "SE",
		WeatherCode:   rand.Intn(4),
		Description:   "Cerah berawan",
		LocalDatetime: time.Now().Format(time.RFC3339),
		Visibility:    "10",
		UVIndex:       strconv.Itoa(3 + rand.Intn(6)),
		Forecast:      []ForecastEntry{},
	}
}
