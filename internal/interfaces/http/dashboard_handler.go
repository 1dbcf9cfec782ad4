package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
)

// DashboardHandler maneja la vista de inventario y sus reportes.
type DashboardHandler struct {
	view    *dashboard.ViewUseCase
	reports *dashboard.ReportUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(view *dashboard.ViewUseCase, reports *dashboard.ReportUseCase) *DashboardHandler {
	return &DashboardHandler{view: view, reports: reports}
}

// Get godoc
// @Summary      Vista de inventario
// @Description  Filas filtradas y ordenadas con su clasificación de stock. Las métricas se
//
//	calculan siempre sobre el catálogo completo.
//
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        search     query  string  false  "Subcadena de nombre o SKU"
// @Param        category   query  string  false  "Categoría exacta o all"
// @Param        low_stock  query  bool    false  "Solo stock bajo"
// @Param        sort       query  string  false  "Columna de orden"
// @Param        dir        query  string  false  "asc | desc"
// @Param        toggle     query  string  false  "Columna clicada: invierte o reinicia el orden"
// @Success      200  {object}  dto.DashboardResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	var q dto.DashboardQuery
	if err := parseQuery(c, &q); err != nil {
		return writeError(c, err)
	}
	v, err := h.view.Build(c.UserContext(), dashboard.QueryFromDTO(q))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dashboard.ToResponse(v))
}

// ReportPDF GET /api/dashboard/report.pdf
func (h *DashboardHandler) ReportPDF(c *fiber.Ctx) error {
	return h.report(c, dashboard.FormatPDF)
}

// ReportXLSX GET /api/dashboard/report.xlsx
func (h *DashboardHandler) ReportXLSX(c *fiber.Ctx) error {
	return h.report(c, dashboard.FormatXLSX)
}

func (h *DashboardHandler) report(c *fiber.Ctx, format string) error {
	var q dto.DashboardQuery
	if err := parseQuery(c, &q); err != nil {
		return writeError(c, err)
	}
	rep, err := h.reports.Generate(c.UserContext(), format, dashboard.QueryFromDTO(q))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, rep.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, rep.Filename))
	return c.Send(rep.Data)
}
