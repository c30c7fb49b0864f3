package weather

import (
	"encoding/xml"
	"strings"
)

const (
	maxForecastEntries = 8
	maxFeltQuakes      = 15
)

// normalizeWeather translates the forecast payload into a canonical record.
// The upstream wraps forecast entries in several shapes: data[0] may be the
// entry list itself or an object holding it under "cuaca", and the list may
// be flat or grouped per day. Returns nil when no usable entry exists.
func normalizeWeather(payload map[string]any) *WeatherRecord {
	items := listField(payload, "data")
	if len(items) == 0 {
		return nil
	}

	var raw any
	switch first := items[0].(type) {
	case []any:
		raw = first
	case map[string]any:
		raw = first["cuaca"]
	default:
		return nil
	}

	entries := flattenEntries(raw)
	if len(entries) == 0 {
		return nil
	}

	current := entries[0]
	rec := &WeatherRecord{
		Source:        SourceBMKG,
		Temperature:   floatField(current, "t", 0),
		Humidity:      floatField(current, "hu", 0),
		WindSpeed:     floatField(current, "ws", 0),
		WindDirection: stringField(current, "wd", "N/A"),
		WeatherCode:   intField(current, "weather_code", 0),
		Description:   stringField(current, "weather_desc", "Unknown"),
		LocalDatetime: stringField(current, "local_datetime", ""),
		Visibility:    stringField(current, "vs", "10"),
		UVIndex:       stringField(current, "uv", "5"),
		Forecast:      []ForecastEntry{},
	}

	if len(entries) > maxForecastEntries {
		entries = entries[:maxForecastEntries]
	}
	for _, e := range entries {
		rec.Forecast = append(rec.Forecast, normalizeForecastEntry(e))
	}

	return rec
}

// flattenEntries accepts a flat entry list or a list of per-day lists and
// returns the entries in upstream order.
func flattenEntries(raw any) []map[string]any {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	var out []map[string]any
	for _, item := range list {
		switch v := item.(type) {
		case map[string]any:
			out = append(out, v)
		case []any:
			for _, inner := range v {
				if m, ok := inner.(map[string]any); ok {
					out = append(out, m)
				}
			}
		}
	}
	return out
}

func normalizeForecastEntry(m map[string]any) ForecastEntry {
	return ForecastEntry{
		LocalDatetime: stringField(m, "local_datetime", ""),
		Temperature:   floatField(m, "t", 0),
		Humidity:      floatField(m, "hu", 0),
		WindSpeed:     floatField(m, "ws", 0),
		WindDirection: stringField(m, "wd", "N/A"),
		WeatherCode:   intField(m, "weather_code", 0),
		Description:   stringField(m, "weather_desc", "Unknown"),
	}
}

// normalizeQuake translates the latest-earthquake payload. Returns nil when
// the expected envelope is missing.
func normalizeQuake(payload map[string]any) *EarthquakeEvent {
	g := mapField(payload, "Gempa")
	if g == nil {
		return nil
	}

	ev := quakeFromFields(g)
	ev.Source = SourceBMKG
	ev.Potential = stringField(g, "Potensi", "")
	ev.Shakemap = stringField(g, "Shakemap", "")
	return &ev
}

// normalizeFeltQuakes translates the felt-earthquakes payload, capped to the
// most recent entries. Always returns a non-nil slice.
func normalizeFeltQuakes(payload map[string]any) []EarthquakeEvent {
	quakes := []EarthquakeEvent{}
	for _, item := range listField(payload, "gempa") {
		g, ok := item.(map[string]any)
		if !ok {
			continue
		}
		quakes = append(quakes, quakeFromFields(g))
		if len(quakes) >= maxFeltQuakes {
			break
		}
	}
	return quakes
}

func quakeFromFields(g map[string]any) EarthquakeEvent {
	lat, lng := splitCoordinates(stringField(mapField(g, "point"), "coordinates", "0,0"))
	return EarthquakeEvent{
		DateTime:  stringField(g, "DateTime", ""),
		Date:      stringField(g, "Tanggal", ""),
		Time:      stringField(g, "Jam", ""),
		Magnitude: stringField(g, "Magnitude", "N/A"),
		Depth:     stringField(g, "Kedalaman", "N/A"),
		Latitude:  lat,
		Longitude: lng,
		Location:  stringField(g, "Wilayah", "Unknown"),
		Felt:      stringField(g, "Dirasakan", ""),
	}
}

// splitCoordinates splits a combined "lat,lng" string. Fewer than two parts
// defaults both axes to "0".
func splitCoordinates(s string) (lat, lng string) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 {
		return "0", "0"
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

type nowcastItem struct {
	Title       string `xml:"title"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	Link        string `xml:"link"`
}

type nowcastFeed struct {
	Items []nowcastItem `xml:"channel>item"`
}

// parseNowcast parses the early-warning RSS feed. Malformed XML yields an
// empty list rather than an error; missing elements decode to empty strings.
func parseNowcast(data []byte) []Warning {
	var feed nowcastFeed
	if err := xml.Unmarshal(data, &feed); err != nil {
		return []Warning{}
	}

	warnings := make([]Warning, 0, len(feed.Items))
	for _, item := range feed.Items {
		warnings = append(warnings, Warning{
			Title:       item.Title,
			Description: item.Description,
			PubDate:     item.PubDate,
			Link:        item.Link,
		})
	}
	return warnings
}
