package handlers

import (
	"spendwatch/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StatementHandler struct {
	statementService *service.StatementService
	cardService      *service.CardService
	logger           *zap.Logger
}

func NewStatementHandler(statementService *service.StatementService, cardService *service.CardService, logger *zap.Logger) *StatementHandler {
	return &StatementHandler{
		statementService: statementService,
		cardService:      cardService,
		logger:           logger,
	}
}

// UploadStatement godoc
// @Summary Upload a card statement
// @Description Import a CSV card statement for one of the user's cards
// @Tags statements
// @Accept mpfd
// @Produce json
// @Param card_id query string true "Card ID"
// @Param file formData file true "Statement CSV"
// @Success 200 {object} dto.ImportResultResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /api/v1/statements/upload [post]
func (h *StatementHandler) UploadStatement(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	cardID, err := uuid.Parse(c.Query("card_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "card_id query parameter is required"})
	}
	if _, err := h.cardService.Owned(c.Context(), cardID, uid); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Card not found"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "failed to open uploaded file"})
	}
	defer file.Close()

	result, err := h.statementService.Import(c.Context(), uid, cardID, file)
	if err != nil {
		h.logger.Error("Statement import failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Statement import failed: " + err.Error()})
	}

	return c.JSON(result)
}

// ListTransactions godoc
// @Summary List card transactions
// @Description List a card's transactions with derived categories
// @Tags statements
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {array} dto.TransactionResponse
// @Failure 404 {object} map[string]string
// @Security Bearer
// @Router /api/v1/cards/{id}/transactions [get]
func (h *StatementHandler) ListTransactions(c *fiber.Ctx) error {
	uid, err := userID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user"})
	}

	cardID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid card id"})
	}
	if _, err := h.cardService.Owned(c.Context(), cardID, uid); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Card not found"})
	}

	resp, err := h.statementService.ListByCard(c.Context(), cardID)
	if err != nil {
		h.logger.Error("Transaction listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Transaction listing failed"})
	}

	return c.JSON(resp)
}
