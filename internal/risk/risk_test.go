package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siagaid/siaga-api/internal/catalog"
	"github.com/siagaid/siaga-api/internal/weather"
)

var testCity = catalog.City{ID: "jakarta", Name: "Jakarta", Province: "DKI Jakarta"}

func TestEvaluateRedOnHighZone(t *testing.T) {
	zones := []catalog.RiskZone{
		{Name: "Kampung Melayu", Risk: "high", City: "jakarta", Type: "flood"},
		{Name: "Cipinang", Risk: "medium", City: "jakarta", Type: "flood"},
	}

	a := Evaluate(testCity, zones, weather.WeatherRecord{})

	assert.Equal(t, LevelRed, a.AlertLevel)
	assert.Equal(t, "high", a.FloodRisk)
	assert.Equal(t, "high", a.LandslideRisk)
	assert.Equal(t, "Jakarta", a.City)
	assert.Equal(t, "DKI Jakarta", a.Province)
	assert.Contains(t, a.Description, "Jakarta")
	assert.Len(t, a.Recommendations, 5)
}

func TestEvaluateOrangeOnMediumZonesOnly(t *testing.T) {
	zones := []catalog.RiskZone{
		{Name: "Cipinang", Risk: "medium", City: "jakarta", Type: "flood"},
	}

	a := Evaluate(testCity, zones, weather.WeatherRecord{})

	assert.Equal(t, LevelOrange, a.AlertLevel)
	assert.Equal(t, "medium", a.FloodRisk)
	assert.NotEmpty(t, a.Recommendations)
}

func TestEvaluateGreenWithoutZones(t *testing.T) {
	a := Evaluate(testCity, nil, weather.WeatherRecord{})

	assert.Equal(t, LevelGreen, a.AlertLevel)
	assert.Equal(t, "low", a.FloodRisk)
	assert.NotEmpty(t, a.Recommendations)
}

func TestEvaluateCarriesWeather(t *testing.T) {
	rec := weather.WeatherRecord{Source: weather.SourceBMKG, Temperature: 30}

	a := Evaluate(testCity, nil, rec)

	require.NotNil(t, a.Weather)
	assert.Equal(t, weather.SourceBMKG, a.Weather.Source)
	assert.Equal(t, 30.0, a.Weather.Temperature)
}
