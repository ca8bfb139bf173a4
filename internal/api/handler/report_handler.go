package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/orderboard/orderboard/internal/api/metrics"
	"github.com/orderboard/orderboard/internal/core/ports"
)

// ReportHandler handles order report downloads.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Download handles GET /v1/report — renders the current roster into a PDF
// and returns it as an attachment named orders-YYYY-MM-DD.pdf.
//
// @Summary      Download the order report
// @Tags         report
// @Produce      application/pdf
// @Success      200  {file}    file
// @Failure      500  {object}  errorResponse
// @Router       /v1/report [get]
func (h *ReportHandler) Download(c echo.Context) error {
	start := time.Now()
	result, err := h.service.Generate(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.ReportsGeneratedTotal.Inc()
	metrics.ReportGenerationDuration.Observe(time.Since(start).Seconds())

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, result.Filename))
	return c.Blob(http.StatusOK, result.ContentType, result.Data)
}
