// Package chat implements the rule-based emergency assistant. Replies are
// templated from reference data and live feeds, keyed on message keywords.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/siagaid/siaga-api/internal/catalog"
	"github.com/siagaid/siaga-api/internal/common"
	"github.com/siagaid/siaga-api/internal/weather"
)

// Responder answers emergency questions for a city.
type Responder struct {
	catalog *catalog.Catalog
	weather *weather.Service
}

// NewResponder creates a Responder over the reference catalog and feed
// service.
func NewResponder(cat *catalog.Catalog, svc *weather.Service) *Responder {
	return &Responder{catalog: cat, weather: svc}
}

// Reply generates a contextual reply for a message. Unmatched intents get
// the capability menu.
func (r *Responder) Reply(ctx context.Context, message, cityID string) string {
	msg := strings.ToLower(message)

	city, ok := r.catalog.CityByID(cityID)
	if !ok {
		city = r.catalog.DefaultCity()
	}

	switch {
	case common.HasAny(msg, "evakuasi", "rute", "keluar", "lari"):
		return r.evacuationReply(city)
	case common.HasAny(msg, "banjir", "air", "genangan"):
		return r.zoneReply(city, "flood", "Banjir")
	case common.HasAny(msg, "gempa", "quake"):
		return r.earthquakeReply(ctx)
	case common.HasAny(msg, "cuaca", "hujan", "weather"):
		return r.weatherReply(ctx, city)
	case common.HasAny(msg, "longsor", "gunung", "lereng"):
		return r.zoneReply(city, "landslide", "Longsor")
	case common.HasAny(msg, "bantuan", "help", "darurat"):
		return fmt.Sprintf("Kontak Darurat %s:\n\nAmbulans: 118\nPemadam: 113\nRS Terdekat: Hubungi dinas kesehatan kota\n\nTetap tenang dan ikuti instruksi petugas!", city.Name)
	}

	return fmt.Sprintf(`Halo! Saya asisten tanggap darurat untuk %s.

Saya bisa membantu Anda dengan:
- Info cuaca terkini
- Gempa terbaru
- Zona risiko banjir & longsor
- Titik evakuasi
- Kontak darurat

Silakan tanyakan sesuatu!`, city.Name)
}

func (r *Responder) evacuationReply(city catalog.City) string {
	points := r.catalog.PointsByCity(city.ID)
	if len(points) == 0 {
		return fmt.Sprintf("Belum ada data titik evakuasi untuk %s", city.Name)
	}

	if len(points) > 5 {
		points = points[:5]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Titik evakuasi di %s:\n", city.Name)
	for _, p := range points {
		fmt.Fprintf(&b, "- %s (Kapasitas: %d)\n", p.Name, p.Capacity)
	}
	b.WriteString("\nSegera evakuasi menggunakan jalur teraman!")
	return b.String()
}

func (r *Responder) zoneReply(city catalog.City, zoneType, label string) string {
	var zones []catalog.RiskZone
	for _, z := range r.catalog.ZonesByCity(city.ID) {
		if z.Type == zoneType {
			zones = append(zones, z)
		}
	}
	if len(zones) == 0 {
		return fmt.Sprintf("Tidak ada informasi %s khusus untuk %s", strings.ToLower(label), city.Name)
	}

	var high []catalog.RiskZone
	for _, z := range zones {
		if z.Risk == "high" {
			high = append(high, z)
		}
	}
	if len(high) == 0 {
		return fmt.Sprintf("Ada %d zona %s di %s. Tetap waspadai perubahan cuaca!", len(zones), strings.ToLower(label), city.Name)
	}

	if len(high) > 3 {
		high = high[:3]
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Peringatan %s!\n\nZona %s berbahaya di %s:\n", label, strings.ToLower(label), city.Name)
	for _, z := range high {
		fmt.Fprintf(&b, "- %s: %s\n", z.Name, z.Description)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Responder) earthquakeReply(ctx context.Context) string {
	quake := r.weather.LatestEarthquake(ctx)
	if quake == nil {
		return "Tidak ada informasi gempa terkini"
	}
	return fmt.Sprintf("Info Gempa Terbaru:\n\nLokasi: %s\nMagnitude: %s\nKedalaman: %s\nWaktu: %s\n\n%s",
		quake.Location, quake.Magnitude, quake.Depth, quake.Time, quake.Potential)
}

func (r *Responder) weatherReply(ctx context.Context, city catalog.City) string {
	rec := r.weather.Weather(ctx, city)
	return fmt.Sprintf("Cuaca di %s:\n\nSuhu: %.0f°C\nKelembaban: %.0f%%\nAngin: %.0f km/j\n\n%s",
		city.Name, rec.Temperature, rec.Humidity, rec.WindSpeed, rec.Description)
}
