package handlers

import (
	"strconv"

	"spendwatch/internal/dto"
	"spendwatch/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	insightService   *service.InsightService
	logger           *zap.Logger
}

// NewDashboardHandler accepts a nil insightService when no LLM credentials
// are configured; the report endpoint then serves deterministic output only.
func NewDashboardHandler(dashboardService *service.DashboardService, insightService *service.InsightService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		insightService:   insightService,
		logger:           logger,
	}
}

// householdSize reads the household_size query parameter, clamped to at
// least one person.
func householdSize(c *fiber.Ctx) int {
	size, err := strconv.Atoi(c.Query("household_size", "1"))
	if err != nil || size < 1 {
		return 1
	}
	return size
}

// Monthly godoc
// @Summary Monthly spending
// @Description Monthly totals with per-currency and per-category breakdowns
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.MonthlyResponse
// @Security Bearer
// @Router /api/v1/dashboard/monthly [get]
func (h *DashboardHandler) Monthly(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	resp, err := h.dashboardService.Monthly(c.Context(), uid)
	if err != nil {
		h.logger.Error("Monthly aggregation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Monthly aggregation failed"})
	}

	return c.JSON(resp)
}

// OpportunityCost godoc
// @Summary Savings potential
// @Description Category overspend analysis with investment projections
// @Tags dashboard
// @Produce json
// @Param household_size query int false "Household size" default(1)
// @Success 200 {object} dto.OpportunityCostResponse
// @Security Bearer
// @Router /api/v1/dashboard/opportunity-cost [get]
func (h *DashboardHandler) OpportunityCost(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	resp, err := h.dashboardService.OpportunityCost(c.Context(), uid, householdSize(c))
	if err != nil {
		h.logger.Error("Opportunity cost analysis failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Opportunity cost analysis failed"})
	}

	return c.JSON(resp)
}

// Advisory godoc
// @Summary Sustainability advisory
// @Description Fuel and parking spending checks over recent windows
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.AdvisoryResponse
// @Security Bearer
// @Router /api/v1/dashboard/advisory [get]
func (h *DashboardHandler) Advisory(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	resp, err := h.dashboardService.Advisory(c.Context(), uid)
	if err != nil {
		h.logger.Error("Advisory check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Advisory check failed"})
	}

	return c.JSON(resp)
}

// Report godoc
// @Summary Full spending report
// @Description Combined report, optionally with an LLM-written narrative
// @Tags dashboard
// @Produce json
// @Param household_size query int false "Household size" default(1)
// @Param narrative query bool false "Include LLM narrative"
// @Success 200 {object} dto.ReportResponse
// @Security Bearer
// @Router /api/v1/dashboard/report [get]
func (h *DashboardHandler) Report(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	report, err := h.dashboardService.Report(c.Context(), uid, householdSize(c))
	if err != nil {
		h.logger.Error("Report generation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Report generation failed"})
	}

	resp := dto.ReportResponse{SpendingReport: report}
	if c.QueryBool("narrative") && h.insightService != nil {
		narrative, err := h.insightService.Narrate(c.Context(), report)
		if err != nil {
			h.logger.Warn("Narrative generation failed, serving report without it", zap.Error(err))
		} else {
			resp.Narrative = narrative
		}
	}

	return c.JSON(resp)
}
