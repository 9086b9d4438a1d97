package handlers

import (
	"spendwatch/internal/dto"
	"spendwatch/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CardHandler struct {
	cardService *service.CardService
	logger      *zap.Logger
}

func NewCardHandler(cardService *service.CardService, logger *zap.Logger) *CardHandler {
	return &CardHandler{
		cardService: cardService,
		logger:      logger,
	}
}

// userID extracts the authenticated user id stored by the auth middleware.
func userID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("userID").(string)
	return uuid.Parse(raw)
}

// CreateCard godoc
// @Summary Register a card
// @Description Attach a new card to the authenticated user
// @Tags cards
// @Accept json
// @Produce json
// @Param request body dto.CreateCardRequest true "Card"
// @Success 201 {object} dto.CardResponse
// @Failure 400 {object} map[string]string
// @Security Bearer
// @Router /api/v1/cards [post]
func (h *CardHandler) CreateCard(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	var req dto.CreateCardRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Label == "" || len(req.LastFour) != 4 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Label and 4-digit last_four are required"})
	}

	resp, err := h.cardService.Create(c.Context(), uid, &req)
	if err != nil {
		h.logger.Error("Card creation failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Card creation failed"})
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// ListCards godoc
// @Summary List cards
// @Description List the authenticated user's cards
// @Tags cards
// @Produce json
// @Success 200 {array} dto.CardResponse
// @Security Bearer
// @Router /api/v1/cards [get]
func (h *CardHandler) ListCards(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	resp, err := h.cardService.List(c.Context(), uid)
	if err != nil {
		h.logger.Error("Card listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Card listing failed"})
	}

	return c.JSON(resp)
}

// DeleteCard godoc
// @Summary Delete a card
// @Description Delete one of the authenticated user's cards
// @Tags cards
// @Param id path string true "Card ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /api/v1/cards/{id} [delete]
func (h *CardHandler) DeleteCard(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	cardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid card id"})
	}

	if err := h.cardService.Delete(c.Context(), cardID, uid); err != nil {
		if err == service.ErrCardNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Card not found"})
		}
		h.logger.Error("Card deletion failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Card deletion failed"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
