package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(temp float64, code any, desc string) map[string]any {
	return map[string]any{
		"t":              temp,
		"hu":             float64(80),
		"ws":             float64(10),
		"wd":             "SE",
		"weather_code":   code,
		"weather_desc":   desc,
		"local_datetime": "2026-01-15 13:00:00",
		"vs":             "8",
		"uv":             "6",
	}
}

func TestNormalizeWeatherDictShape(t *testing.T) {
	payload := map[string]any{
		"data": []any{
			map[string]any{
				"cuaca": []any{entry(29, float64(1), "Cerah Berawan"), entry(30, float64(3), "Berawan")},
			},
		},
	}

	rec := normalizeWeather(payload)
	require.NotNil(t, rec)

	assert.Equal(t, SourceBMKG, rec.Source)
	assert.Equal(t, 29.0, rec.Temperature)
	assert.Equal(t, 80.0, rec.Humidity)
	assert.Equal(t, 1, rec.WeatherCode)
	assert.Equal(t, "Cerah Berawan", rec.Description)
	assert.Equal(t, "8", rec.Visibility)
	assert.Equal(t, "6", rec.UVIndex)
	assert.Len(t, rec.Forecast, 2)
}

func TestNormalizeWeatherListOfLists(t *testing.T) {
	// The upstream sometimes groups forecast entries per day.
	payload := map[string]any{
		"data": []any{
			[]any{
				[]any{entry(27, float64(0), "Cerah"), entry(28, float64(1), "Cerah Berawan")},
				[]any{entry(26, float64(60), "Hujan Ringan")},
			},
		},
	}

	rec := normalizeWeather(payload)
	require.NotNil(t, rec)

	assert.Equal(t, 27.0, rec.Temperature)
	assert.Len(t, rec.Forecast, 3)
	assert.Equal(t, "Hujan Ringan", rec.Forecast[2].Description)
}

func TestNormalizeWeatherMissingFieldsUseSentinels(t *testing.T) {
	payload := map[string]any{
		"data": []any{
			map[string]any{"cuaca": []any{map[string]any{}}},
		},
	}

	rec := normalizeWeather(payload)
	require.NotNil(t, rec)

	assert.Equal(t, 0.0, rec.Temperature)
	assert.Equal(t, "N/A", rec.WindDirection)
	assert.Equal(t, 0, rec.WeatherCode)
	assert.Equal(t, "Unknown", rec.Description)
	assert.Equal(t, "10", rec.Visibility)
	assert.Equal(t, "5", rec.UVIndex)
}

func TestNormalizeWeatherCodeCoercion(t *testing.T) {
	// Non-numeric weather codes default to 0.
	payload := map[string]any{
		"data": []any{
			map[string]any{"cuaca": []any{entry(30, "N/A", "Berawan")}},
		},
	}

	rec := normalizeWeather(payload)
	require.NotNil(t, rec)
	assert.Equal(t, 0, rec.WeatherCode)
}

func TestNormalizeWeatherForecastCappedAtEight(t *testing.T) {
	entries := make([]any, 0, 12)
	for i := 0; i < 12; i++ {
		entries = append(entries, entry(float64(25+i), float64(i), "Cerah"))
	}
	payload := map[string]any{
		"data": []any{map[string]any{"cuaca": entries}},
	}

	rec := normalizeWeather(payload)
	require.NotNil(t, rec)
	require.Len(t, rec.Forecast, 8)

	// Upstream order preserved.
	assert.Equal(t, 25.0, rec.Forecast[0].Temperature)
	assert.Equal(t, 32.0, rec.Forecast[7].Temperature)
}

func TestNormalizeWeatherUnusablePayload(t *testing.T) {
	assert.Nil(t, normalizeWeather(nil))
	assert.Nil(t, normalizeWeather(map[string]any{}))
	assert.Nil(t, normalizeWeather(map[string]any{"data": []any{}}))
	assert.Nil(t, normalizeWeather(map[string]any{"data": []any{"bogus"}}))
	assert.Nil(t, normalizeWeather(map[string]any{"data": []any{map[string]any{"cuaca": []any{}}}}))
}

func TestSplitCoordinates(t *testing.T) {
	lat, lng := splitCoordinates("-6.21,106.85")
	assert.Equal(t, "-6.21", lat)
	assert.Equal(t, "106.85", lng)

	lat, lng = splitCoordinates("")
	assert.Equal(t, "0", lat)
	assert.Equal(t, "0", lng)

	lat, lng = splitCoordinates("3.14")
	assert.Equal(t, "0", lat)
	assert.Equal(t, "0", lng)
}

func TestNormalizeQuake(t *testing.T) {
	payload := map[string]any{
		"Gempa": map[string]any{
			"DateTime":  "2026-01-15T06:12:00+00:00",
			"Tanggal":   "15 Jan 2026",
			"Jam":       "13:12:00 WIB",
			"Magnitude": "5.4",
			"Kedalaman": "10 km",
			"point":     map[string]any{"coordinates": "-7.55,110.82"},
			"Wilayah":   "Pusat gempa berada di darat",
			"Potensi":   "Tidak berpotensi tsunami",
			"Dirasakan": "III Solo",
		},
	}

	ev := normalizeQuake(payload)
	require.NotNil(t, ev)

	assert.Equal(t, "5.4", ev.Magnitude)
	assert.Equal(t, "-7.55", ev.Latitude)
	assert.Equal(t, "110.82", ev.Longitude)
	assert.Equal(t, "Tidak berpotensi tsunami", ev.Potential)

	assert.Nil(t, normalizeQuake(map[string]any{}))
}

func TestNormalizeFeltQuakesCappedAtFifteen(t *testing.T) {
	quakes := make([]any, 0, 20)
	for i := 0; i < 20; i++ {
		quakes = append(quakes, map[string]any{
			"Magnitude": "4.0",
			"point":     map[string]any{"coordinates": "-6.0,106.0"},
		})
	}

	got := normalizeFeltQuakes(map[string]any{"gempa": quakes})
	assert.Len(t, got, 15)

	got = normalizeFeltQuakes(map[string]any{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseNowcast(t *testing.T) {
	feed := []byte(`<?xml version="1.0"?>
<rss><channel>
  <item><title>Peringatan Dini Hujan Lebat</title><description>Jabodetabek</description><pubDate>Thu, 15 Jan 2026</pubDate><link>https://example.org/1</link></item>
  <item><title>Gelombang Tinggi</title></item>
</channel></rss>`)

	warnings := parseNowcast(feed)
	require.Len(t, warnings, 2)

	assert.Equal(t, "Peringatan Dini Hujan Lebat", warnings[0].Title)
	assert.Equal(t, "https://example.org/1", warnings[0].Link)

	// Missing elements default to empty strings.
	assert.Equal(t, "Gelombang Tinggi", warnings[1].Title)
	assert.Equal(t, "", warnings[1].Description)
	assert.Equal(t, "", warnings[1].Link)
}

func TestParseNowcastMalformed(t *testing.T) {
	warnings := parseNowcast([]byte("<rss><channel><item>"))
	assert.NotNil(t, warnings)
	assert.Empty(t, warnings)
}
