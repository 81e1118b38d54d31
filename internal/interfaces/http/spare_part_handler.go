package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/smartpark/sims-api/internal/application/catalog"
	"github.com/smartpark/sims-api/internal/application/dto"
	"github.com/smartpark/sims-api/internal/domain"
	"github.com/smartpark/sims-api/pkg/logger"
)

// SparePartHandler handles the catalog endpoints (protected).
type SparePartHandler struct {
	uc  *catalog.SparePartUseCase
	log *logger.Logger
}

// NewSparePartHandler builds the handler.
func NewSparePartHandler(uc *catalog.SparePartUseCase, log *logger.Logger) *SparePartHandler {
	return &SparePartHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Create spare part
// @Tags         spare-parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSparePartRequest  true  "Spare part data"
// @Success      201   {object}  dto.SparePartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/spare-parts [post]
func (h *SparePartHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSparePartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return h.serverError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      List spare parts
// @Tags         spare-parts
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SparePartResponse
// @Router       /api/spare-parts [get]
func (h *SparePartHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return h.serverError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Get spare part by ID
// @Tags         spare-parts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Spare part ID"
// @Success      200  {object}  dto.SparePartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/spare-parts/{id} [get]
func (h *SparePartHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Spare part not found"})
		}
		return h.serverError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Update spare part
// @Tags         spare-parts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Spare part ID"
// @Param        body  body  dto.UpdateSparePartRequest  true  "Fields to update"
// @Success      200   {object}  dto.SparePartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/spare-parts/{id} [put]
func (h *SparePartHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSparePartRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid request body"})
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Spare part not found"})
		}
		return h.serverError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Delete spare part
// @Tags         spare-parts
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "Spare part ID"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/spare-parts/{id} [delete]
func (h *SparePartHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Spare part not found"})
		}
		return h.serverError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Spare part deleted successfully"})
}

func (h *SparePartHandler) serverError(c *fiber.Ctx, err error) error {
	h.log.Error().Err(err).Str("path", c.Path()).Msg("spare part handler failed")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Server error"})
}
