package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/smartpark/sims-api/internal/application/dto"
	"github.com/smartpark/sims-api/internal/application/report"
	"github.com/smartpark/sims-api/internal/domain"
	"github.com/smartpark/sims-api/pkg/logger"
)

// ReportHandler handles the aggregate report endpoints (protected).
type ReportHandler struct {
	uc  *report.UseCase
	log *logger.Logger
}

// NewReportHandler builds the handler.
func NewReportHandler(uc *report.UseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// StockStatus godoc
// @Summary      Stock status report
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockStatusRow
// @Router       /api/reports/stock-status [get]
func (h *ReportHandler) StockStatus(c *fiber.Ctx) error {
	out, err := h.uc.StockStatus(c.Context())
	if err != nil {
		return h.serverError(c, err)
	}
	return c.JSON(out)
}

// DailyStockOut godoc
// @Summary      Daily stock-out report
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        date  path  string  true  "Calendar day (YYYY-MM-DD)"
// @Success      200   {object}  dto.DailyStockOutReport
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/daily-stock-out/{date} [get]
func (h *ReportHandler) DailyStockOut(c *fiber.Ctx) error {
	out, err := h.uc.DailyStockOut(c.Context(), c.Params("date"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "Invalid date format. Use YYYY-MM-DD"})
		}
		return h.serverError(c, err)
	}
	return c.JSON(out)
}

// DailyStockOutPDF godoc
// @Summary      Daily stock-out report as PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        date  path  string  true  "Calendar day (YYYY-MM-DD)"
// @Success      200   {file}  binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/reports/daily-stock-out/{date}/pdf [get]
func (h *ReportHandler) DailyStockOutPDF(c *fiber.Ctx) error {
	date := c.Params("date")
	pdfBytes, err := h.uc.DailyStockOutPDF(c.Context(), date)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "Invalid date format. Use YYYY-MM-DD"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "PDF export is not available"})
		}
		return h.serverError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "daily-stock-out-"+date+".pdf"))
	return c.Send(pdfBytes)
}

func (h *ReportHandler) serverError(c *fiber.Ctx, err error) error {
	h.log.Error().Err(err).Str("path", c.Path()).Msg("report handler failed")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "Server error"})
}
