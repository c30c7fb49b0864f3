// Package risk derives a deterministic alert level for a city from its
// known risk zones.
package risk

import (
	"fmt"
	"time"

	"github.com/siagaid/siaga-api/internal/catalog"
	"github.com/siagaid/siaga-api/internal/weather"
)

// Alert levels ordered by severity.
const (
	LevelGreen  = "green"
	LevelOrange = "orange"
	LevelRed    = "red"
)

// Assessment is the evaluated risk picture for a city.
type Assessment struct {
	City            string                 `json:"city"`
	Province        string                 `json:"province"`
	AlertLevel      string                 `json:"alert_level"`
	FloodRisk       string                 `json:"flood_risk"`
	LandslideRisk   string                 `json:"landslide_risk"`
	Description     string                 `json:"description"`
	Recommendations []string               `json:"recommendations"`
	Weather         *weather.WeatherRecord `json:"weather,omitempty"`
	Timestamp       time.Time              `json:"timestamp"`
}

var recommendations = map[string][]string{
	LevelRed: {
		"Segera evakuasi ke titik pengungsian terdekat",
		"Siapkan dokumen penting dan obat-obatan",
		"Ikuti instruksi dari petugas setempat",
		"Hindari daerah aliran sungai dan lereng gunung",
		"Matikan listrik dan gas jika memungkinkan",
	},
	LevelOrange: {
		"Waspada terhadap perubahan cuaca",
		"Siapkan tas darurat",
		"Pantau informasi dari BMKG dan pemerintah daerah",
		"Hindari aktivitas di luar ruangan",
		"Jauhi daerah rentan bencana",
	},
	LevelGreen: {
		"Tetap pantau kondisi cuaca",
		"Simpan nomor darurat terdekat",
		"Ketahui lokasi titik evakuasi",
		"Siapkan rencana keluarga jika terjadi bencana",
	},
}

// Evaluate combines a city's risk zones with the current weather record.
// Deterministic given (zones, weather): any high-severity zone forces red,
// any zone at all forces orange, otherwise green.
func Evaluate(city catalog.City, zones []catalog.RiskZone, rec weather.WeatherRecord) Assessment {
	highCount := 0
	for _, z := range zones {
		if z.Risk == "high" {
			highCount++
		}
	}

	var level, severity, description string
	switch {
	case highCount > 0:
		level = LevelRed
		severity = "high"
		description = fmt.Sprintf(
			"Peringatan! Tingkat risiko tinggi untuk kota %s. Terdapat %d zona risiko tinggi. Segera lakukan evakuasi jika diperlukan.",
			city.Name, highCount)
	case len(zones) > 0:
		level = LevelOrange
		severity = "medium"
		description = fmt.Sprintf(
			"Peringatan waspada untuk kota %s. Terdapat %d zona risiko. Tetap waspada.",
			city.Name, len(zones))
	default:
		level = LevelGreen
		severity = "low"
		description = fmt.Sprintf(
			"Kondisi aman untuk kota %s. Tidak ada zona risiko tinggi.", city.Name)
	}

	return Assessment{
		City:            city.Name,
		Province:        city.Province,
		AlertLevel:      level,
		FloodRisk:       severity,
		LandslideRisk:   severity,
		Description:     description,
		Recommendations: recommendations[level],
		Weather:         &rec,
		Timestamp:       time.Now().UTC(),
	}
}
