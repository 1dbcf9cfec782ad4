package dashboard

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
)

// Formatos de reporte soportados.
const (
	FormatPDF  = "pdf"
	FormatXLSX = "xlsx"
)

// ReportRenderer genera el archivo de una vista. Implementado en infraestructura.
type ReportRenderer interface {
	Render(ctx context.Context, view *View, generatedAt time.Time) ([]byte, error)
	ContentType() string
}

// Report archivo listo para descargar.
type Report struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReportUseCase exporta la vista actual del inventario.
type ReportUseCase struct {
	view      *ViewUseCase
	renderers map[string]ReportRenderer
	now       func() time.Time
}

// NewReportUseCase recibe los renderers por formato ("pdf", "xlsx").
func NewReportUseCase(view *ViewUseCase, renderers map[string]ReportRenderer) *ReportUseCase {
	return &ReportUseCase{view: view, renderers: renderers, now: time.Now}
}

// Generate arma la vista con la misma consulta del dashboard y la renderiza.
func (uc *ReportUseCase) Generate(ctx context.Context, format string, q ViewQuery) (*Report, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	r, ok := uc.renderers[format]
	if !ok {
		return nil, fmt.Errorf("reporte: formato %q no soportado: %w", format, domain.ErrInvalidInput)
	}
	v, err := uc.view.Build(ctx, q)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	data, err := r.Render(ctx, v, now)
	if err != nil {
		return nil, fmt.Errorf("reporte: generar %s: %w", format, err)
	}
	return &Report{
		Filename:    fmt.Sprintf("inventario_%s.%s", now.Format("20060102_1504"), format),
		ContentType: r.ContentType(),
		Data:        data,
	}, nil
}
