package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-portal-api/internal/dto"
	"github.com/noah-isme/campus-portal-api/internal/models"
	"github.com/noah-isme/campus-portal-api/internal/service"
	"github.com/noah-isme/campus-portal-api/internal/utils"
)

// SeedHandler exposes admin-only tooling endpoints for loading demo data.
// The route guard already requires the ADMIN role before these run.
type SeedHandler struct {
	service service.SeedService
	logger  zerolog.Logger
}

// NewSeedHandler constructs a seed handler.
func NewSeedHandler(service service.SeedService, logger zerolog.Logger) *SeedHandler {
	return &SeedHandler{
		service: service,
		logger:  logger.With().Str("component", "seed_handler").Logger(),
	}
}

// Register wires seed routes.
func (h *SeedHandler) Register(router fiber.Router) {
	router.Post("/courses", h.courses)
	router.Post("/accounts", h.accounts)
}

type seedCoursesRequest struct {
	Items []models.Course `json:"items"`
}

type seedAccountsRequest struct {
	Items []dto.SeedAccount `json:"items"`
}

func (h *SeedHandler) courses(c *fiber.Ctx) error {
	var payload seedCoursesRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	affected, err := h.service.SeedCourses(c.Context(), payload.Items)
	if err != nil {
		return h.seedError(c, err)
	}

	return utils.SendSuccess(c, "courses seeded", fiber.Map{"affected": affected})
}

func (h *SeedHandler) accounts(c *fiber.Ctx) error {
	var payload seedAccountsRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	affected, err := h.service.SeedAccounts(c.Context(), payload.Items)
	if err != nil {
		return h.seedError(c, err)
	}

	return utils.SendSuccess(c, "accounts seeded", fiber.Map{"affected": affected})
}

func (h *SeedHandler) seedError(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrSeedDisabled) {
		return utils.SendError(c, fiber.StatusForbidden, "seeding disabled")
	}
	h.logger.Error().Err(err).Msg("seed operation failed")
	return utils.SendError(c, fiber.StatusInternalServerError, "seed operation failed")
}
