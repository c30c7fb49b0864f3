package httpapi

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/siagaid/siaga-api/internal/assess"
	"github.com/siagaid/siaga-api/internal/auth"
	"github.com/siagaid/siaga-api/internal/catalog"
	"github.com/siagaid/siaga-api/internal/chat"
	"github.com/siagaid/siaga-api/internal/store"
	"github.com/siagaid/siaga-api/internal/weather"
)

var validate = validator.New()

// Server bundles the dependencies the HTTP handlers need. All fields are
// read-only after startup.
type Server struct {
	Catalog   *catalog.Catalog
	Weather   *weather.Service
	Auth      *auth.Service
	Operators *auth.OperatorTable
	Reports   store.ReportStore
	Users     store.UserStore
	Chat      *chat.Responder
	Assess    assess.Classifier

	AdminSecret string
}

// ErrorHandler is the centralized fiber error response.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, s *Server) {
	app.Get("/", s.handleIndex)

	api := app.Group("/api")

	api.Get("/cities", s.handleCities)
	api.Get("/weather", s.handleWeather)
	api.Get("/earthquake", s.handleEarthquake)
	api.Get("/earthquakes-felt", s.handleFeltEarthquakes)
	api.Get("/early-warnings", s.handleEarlyWarnings)
	api.Get("/risk", s.handleRisk)
	api.Get("/evacuation", s.handleEvacuation)
	api.Get("/risk-zones", s.handleRiskZones)
	api.Post("/chat", s.handleChat)
	api.Get("/stats", s.handleStats)

	api.Get("/reports", s.handleListReports)
	api.Post("/reports", s.handleCreateReport)
	api.Post("/assess-damage", s.handleAssessDamage)

	api.Post("/auth/google", s.handleGoogleLogin)
	api.Get("/auth/me", s.requireUser, s.handleCurrentUser)
	api.Post("/auth/logout", s.requireUser, s.handleLogout)
	api.Post("/auth/verify", s.handleVerifyToken)

	api.Post("/admin/login", s.handleOperatorLogin)

	admin := api.Group("/admin", s.requireAdmin)
	admin.Get("/reports", s.handleAdminReports)
	admin.Get("/reports/:id", s.handleAdminReport)
	admin.Post("/reports/:id/approve", s.handleApproveReport)
	admin.Post("/reports/:id/reject", s.handleRejectReport)
	admin.Delete("/reports/:id", s.handleDeleteReport)
	admin.Get("/users", s.handleAdminUsers)
	admin.Get("/stats", s.handleAdminStats)
}
