package weather

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackRecord(t *testing.T) {
	for i := 0; i < 50; i++ {
		rec := fallbackRecord("Jakarta")

		assert.Equal(t, SourceFallback, rec.Source)
		assert.Equal(t, "Jakarta", rec.City)
		assert.GreaterOrEqual(t, rec.Temperature, 26.0)
		assert.LessOrEqual(t, rec.Temperature, 32.0)
		assert.GreaterOrEqual(t, rec.Humidity, 70.0)
		assert.LessOrEqual(t, rec.Humidity, 90.0)
		assert.GreaterOrEqual(t, rec.WindSpeed, 5.0)
		assert.LessOrEqual(t, rec.WindSpeed, 20.0)
		assert.Equal(t, "SE", rec.WindDirection)
		assert.GreaterOrEqual(t, rec.WeatherCode, 0)
		assert.LessOrEqual(t, rec.WeatherCode, 3)
		assert.Equal(t, "Cerah berawan", rec.Description)
		assert.Equal(t, "10", rec.Visibility)

		uv, err := strconv.Atoi(rec.UVIndex)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, uv, 3)
		assert.LessOrEqual(t, uv, 8)

		require.NotNil(t, rec.Forecast)
		assert.Empty(t, rec.Forecast)
	}
}
