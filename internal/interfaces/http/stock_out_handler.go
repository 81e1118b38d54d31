package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/smartpark/sims-api/internal/application/dto"
	"github.com/smartpark/sims-api/internal/application/ledger"
	"github.com/smartpark/sims-api/internal/domain"
	"github.com/smartpark/sims-api/pkg/logger"
)

// StockOutHandler handles the stock-out ledger endpoints (protected).
type StockOutHandler struct {
	uc  *ledger.StockOutUseCase
	log *logger.Logger
}

// NewStockOutHandler builds the handler.
func NewStockOutHandler(uc *ledger.StockOutUseCase, log *logger.Logger) *StockOutHandler {
	return &StockOutHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Record stock-out
// @Tags         stock-out
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOutRequest  true  "Stock-out data"
// @Success      201   {object}  dto.StockOutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-out [post]
func (h *StockOutHandler) Create(c *fiber.Ctx) error {
	var in dto.StockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Spare part not found"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "Not enough quantity in stock"})
		}
		return h.serverError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Update stock-out entry
// @Tags         stock-out
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Entry ID"
// @Param        body  body  dto.StockOutRequest  true  "New entry data"
// @Success      200   {object}  dto.StockOutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock-out/{id} [put]
func (h *StockOutHandler) Update(c *fiber.Ctx) error {
	var in dto.StockOutRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Stock-out entry or spare part not found"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "Not enough quantity in stock for the update"})
		}
		return h.serverError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete stock-out entry
// @Tags         stock-out
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Entry ID"
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/stock-out/{id} [delete]
func (h *StockOutHandler) Delete(c *fiber.Ctx) error {
	// Idempotent: deleting an entry that no longer exists still returns 200,
	// so clients can retry safely.
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return h.serverError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Stock-out entry deleted successfully"})
}

// List godoc
// @Summary      List stock-out entries
// @Tags         stock-out
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockOutResponse
// @Router       /api/stock-out [get]
func (h *StockOutHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return h.serverError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get stock-out entry by ID
// @Tags         stock-out
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Entry ID"
// @Success      200  {object}  dto.StockOutResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock-out/{id} [get]
func (h *StockOutHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Stock-out entry not found"})
		}
		return h.serverError(c, err)
	}
	return c.JSON(out)
}

// ListByDate godoc
// @Summary      List stock-out entries of one day
// @Tags         stock-out
// @Security     Bearer
// @Produce      json
// @Param        date  path  string  true  "Calendar day (YYYY-MM-DD)"
// @Success      200   {array}  dto.StockOutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock-out/date/{date} [get]
func (h *StockOutHandler) ListByDate(c *fiber.Ctx) error {
	out, err := h.uc.ListByDate(c.Context(), c.Params("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "Invalid date format. Use YYYY-MM-DD"})
		}
		return h.serverError(c, err)
	}
	return c.JSON(out)
}

func (h *StockOutHandler) serverError(c *fiber.Ctx, err error) error {
	h.log.Error().Err(err).Str("path", c.Path()).Msg("stock-out handler failed")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Server error"})
}
