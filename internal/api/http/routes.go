package httpapi

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/siagaid/siaga-api/internal/assess"
	"github.com/siagaid/siaga-api/internal/catalog"
	"github.com/siagaid/siaga-api/internal/risk"
	"github.com/siagaid/siaga-api/internal/store"
	"github.com/siagaid/siaga-api/internal/weather"
)

const (
	defaultCityID   = "jakarta"
	reportListLimit = 50
)

func (s *Server) handleIndex(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"name":    "siaga-api",
		"version": "1.0.0",
		"status":  "active",
		"endpoints": fiber.Map{
			"cities":           "/api/cities",
			"weather":          "/api/weather?city={city_id}",
			"earthquake":       "/api/earthquake",
			"earthquakes_felt": "/api/earthquakes-felt",
			"early_warnings":   "/api/early-warnings",
			"risk":             "/api/risk?city={city_id}",
			"evacuation":       "/api/evacuation?city={city_id}",
			"risk_zones":       "/api/risk-zones?city={city_id}",
		},
	})
}

func (s *Server) handleCities(c *fiber.Ctx) error {
	cities := s.Catalog.Cities()
	return c.JSON(fiber.Map{
		"cities": cities,
		"count":  len(cities),
	})
}

// cityFromQuery resolves the city query parameter, falling back to the
// default city on absence or unknown id.
func (s *Server) cityFromQuery(c *fiber.Ctx) catalog.City {
	city, ok := s.Catalog.CityByID(c.Query("city", defaultCityID))
	if !ok {
		return s.Catalog.DefaultCity()
	}
	return city
}

func (s *Server) handleWeather(c *fiber.Ctx) error {
	rec := s.Weather.Weather(c.Context(), s.cityFromQuery(c))
	return c.JSON(rec)
}

func (s *Server) handleEarthquake(c *fiber.Ctx) error {
	quake := s.Weather.LatestEarthquake(c.Context())
	if quake == nil {
		return c.JSON(fiber.Map{
			"error":  "earthquake data not available",
			"source": weather.SourceBMKG,
		})
	}
	return c.JSON(quake)
}

func (s *Server) handleFeltEarthquakes(c *fiber.Ctx) error {
	quakes := s.Weather.FeltEarthquakes(c.Context())
	return c.JSON(fiber.Map{
		"earthquakes": quakes,
		"count":       len(quakes),
	})
}

func (s *Server) handleEarlyWarnings(c *fiber.Ctx) error {
	warnings := s.Weather.EarlyWarnings(c.Context())
	return c.JSON(fiber.Map{
		"warnings": warnings,
		"count":    len(warnings),
	})
}

func (s *Server) handleRisk(c *fiber.Ctx) error {
	city := s.cityFromQuery(c)
	zones := s.Catalog.ZonesByCity(city.ID)
	rec := s.Weather.Weather(c.Context(), city)
	return c.JSON(risk.Evaluate(city, zones, rec))
}

func (s *Server) handleEvacuation(c *fiber.Ctx) error {
	var points []catalog.EvacuationPoint
	if cityID := c.Query("city"); cityID != "" {
		points = s.Catalog.PointsByCity(cityID)
	} else {
		points = s.Catalog.Points()
	}
	return c.JSON(fiber.Map{
		"points": points,
		"count":  len(points),
	})
}

func (s *Server) handleRiskZones(c *fiber.Ctx) error {
	cityID := c.Query("city")

	var zones []catalog.RiskZone
	var rec *weather.WeatherRecord

	if cityID != "" {
		zones = s.Catalog.ZonesByCity(cityID)
		if city, ok := s.Catalog.CityByID(cityID); ok {
			w := s.Weather.Weather(c.Context(), city)
			rec = &w
		}
	} else {
		zones = s.Catalog.Zones()
	}

	return c.JSON(fiber.Map{
		"zones":   zones,
		"count":   len(zones),
		"weather": rec,
	})
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
	City    string `json:"city"`
}

func (s *Server) handleChat(c *fiber.Ctx) error {
	var req chatRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "message is required")
	}
	if req.City == "" {
		req.City = defaultCityID
	}

	return c.JSON(fiber.Map{
		"response":  s.Chat.Reply(c.Context(), req.Message, req.City),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleStats(c *fiber.Ctx) error {
	return c.JSON(s.platformStats(c))
}

// platformStats aggregates catalog sizes and store counts, degrading store
// failures to zero counts.
func (s *Server) platformStats(c *fiber.Ctx) fiber.Map {
	userCount, err := s.Users.Count(c.Context())
	if err != nil {
		userCount = 0
	}
	reportCount, err := s.Reports.Count(c.Context(), "")
	if err != nil {
		reportCount = 0
	}

	return fiber.Map{
		"cities":            len(s.Catalog.Cities()),
		"risk_zones":        len(s.Catalog.Zones()),
		"evacuation_points": len(s.Catalog.Points()),
		"users":             userCount + 1, // the built-in operator account
		"reports":           reportCount,
	}
}

func (s *Server) handleListReports(c *fiber.Ctx) error {
	reports, err := s.Reports.List(c.Context(), "", reportListLimit)
	if err != nil {
		// Store unavailable: degrade to an empty result, not a failure.
		reports = []store.Report{}
	}

	return c.JSON(fiber.Map{
		"reports": reports,
		"count":   len(reports),
		"stats":   s.platformStats(c),
	})
}

type createReportRequest struct {
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	City          string  `json:"city"`
	Location      string  `json:"location"`
	Type          string  `json:"type"`
	Severity      string  `json:"severity"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"image_url"`
	ReporterName  string  `json:"reporter_name"`
	ReporterPhone string  `json:"reporter_phone"`
}

func (s *Server) handleCreateReport(c *fiber.Ctx) error {
	var req createReportRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if req.Type == "" {
		req.Type = "damage"
	}
	if req.Severity == "" {
		req.Severity = "medium"
	}
	if req.ReporterName == "" {
		req.ReporterName = "Anonim"
	}

	report := &store.Report{
		Lat:           req.Lat,
		Lng:           req.Lng,
		City:          req.City,
		Location:      req.Location,
		Type:          req.Type,
		Severity:      req.Severity,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		ReporterName:  req.ReporterName,
		ReporterPhone: req.ReporterPhone,
		Status:        store.StatusPending,
		CreatedAt:     time.Now().UTC(),
	}

	if _, err := s.Reports.Insert(c.Context(), report); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to save report")
	}

	// Submissions may be anonymous; a valid bearer token credits the
	// reporter's account.
	if header := c.Get("Authorization"); len(header) > 7 {
		if claims, err := s.Auth.VerifyToken(header[7:]); err == nil {
			_ = s.Users.IncrementReports(c.Context(), claims.UserID, 1)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"report":  report,
	})
}

type assessRequest struct {
	Image string `json:"image" validate:"required"`
}

func (s *Server) handleAssessDamage(c *fiber.Ctx) error {
	var req assessRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "no image provided")
	}

	result, err := s.Assess.Assess(c.Context(), req.Image)
	if errors.Is(err, assess.ErrNotDisaster) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success":     false,
			"is_disaster": false,
			"error":       "uploaded image is not a disaster photo",
		})
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to analyze image")
	}

	return c.JSON(fiber.Map{
		"success":             true,
		"is_disaster":         true,
		"disaster_type":       result.DisasterType,
		"confidence":          result.Confidence,
		"severity":            result.Severity,
		"damage_description":  result.DamageDescription,
		"affected_areas":      result.AffectedAreas,
		"recommended_actions": result.RecommendedActions,
		"estimated_impact":    result.EstimatedImpact,
	})
}
