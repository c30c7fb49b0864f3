package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/siagaid/siaga-api/internal/store"
)

const adminListLimit = 100

func (s *Server) handleAdminReports(c *fiber.Ctx) error {
	status := c.Query("status")

	reports, err := s.Reports.List(c.Context(), status, adminListLimit)
	if err != nil {
		reports = []store.Report{}
	}

	return c.JSON(fiber.Map{
		"reports":        reports,
		"pending_count":  s.countOrZero(c, store.StatusPending),
		"approved_count": s.countOrZero(c, store.StatusApproved),
		"rejected_count": s.countOrZero(c, store.StatusRejected),
	})
}

func (s *Server) countOrZero(c *fiber.Ctx, status string) int64 {
	n, err := s.Reports.Count(c.Context(), status)
	if err != nil {
		return 0
	}
	return n
}

func (s *Server) handleAdminReport(c *fiber.Ctx) error {
	report, err := s.Reports.Get(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "report not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to load report")
	}
	return c.JSON(fiber.Map{"report": report})
}

func (s *Server) handleApproveReport(c *fiber.Ctx) error {
	return s.transitionReport(c, store.StatusApproved, "report approved")
}

func (s *Server) handleRejectReport(c *fiber.Ctx) error {
	return s.transitionReport(c, store.StatusRejected, "report rejected")
}

func (s *Server) transitionReport(c *fiber.Ctx, status, message string) error {
	err := s.Reports.SetStatus(c.Context(), c.Params("id"), status)
	if errors.Is(err, store.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "report not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to update report")
	}
	return c.JSON(fiber.Map{"success": true, "message": message})
}

func (s *Server) handleDeleteReport(c *fiber.Ctx) error {
	err := s.Reports.Delete(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "report not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "failed to delete report")
	}
	return c.JSON(fiber.Map{"success": true, "message": "report deleted"})
}

func (s *Server) handleAdminUsers(c *fiber.Ctx) error {
	users, err := s.Users.List(c.Context(), adminListLimit)
	if err != nil {
		users = []store.User{}
	}

	total, err := s.Users.Count(c.Context())
	if err != nil {
		total = 0
	}

	return c.JSON(fiber.Map{
		"users":       users,
		"total_count": total,
	})
}

func (s *Server) handleAdminStats(c *fiber.Ctx) error {
	totalUsers, err := s.Users.Count(c.Context())
	if err != nil {
		totalUsers = 0
	}

	return c.JSON(fiber.Map{
		"total_reports":    s.countOrZero(c, ""),
		"pending_reports":  s.countOrZero(c, store.StatusPending),
		"approved_reports": s.countOrZero(c, store.StatusApproved),
		"rejected_reports": s.countOrZero(c, store.StatusRejected),
		"total_users":      totalUsers,
	})
}
