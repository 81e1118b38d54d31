package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/smartpark/sims-api/internal/application/dto"
	"github.com/smartpark/sims-api/internal/application/ledger"
	"github.com/smartpark/sims-api/internal/domain"
	"github.com/smartpark/sims-api/pkg/logger"
)

// StockInHandler handles the stock-in ledger endpoints (protected).
// Stock-in entries are append-only, so there is no update or delete.
type StockInHandler struct {
	uc  *ledger.StockInUseCase
	log *logger.Logger
}

// NewStockInHandler builds the handler.
func NewStockInHandler(uc *ledger.StockInUseCase, log *logger.Logger) *StockInHandler {
	return &StockInHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Record stock-in
// @Tags         stock-in
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockInRequest  true  "Stock-in data"
// @Success      201   {object}  dto.StockInResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-in [post]
func (h *StockInHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Record(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Spare part not found"})
		}
		return h.serverError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List stock-in entries
// @Tags         stock-in
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockInResponse
// @Router       /api/stock-in [get]
func (h *StockInHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return h.serverError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get stock-in entry by ID
// @Tags         stock-in
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Entry ID"
// @Success      200  {object}  dto.StockInResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-in/{id} [get]
func (h *StockInHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Stock-in entry not found"})
		}
		return h.serverError(c, err)
	}
	return c.JSON(out)
}

func (h *StockInHandler) serverError(c *fiber.Ctx, err error) error {
	h.log.Error().Err(err).Str("path", c.Path()).Msg("stock-in handler failed")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Server error"})
}
