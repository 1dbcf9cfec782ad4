package report

//	Layout de la página A4 (horizontal):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: título + fecha de generación                        │
//	│  MÉTRICAS: productos | stock bajo | valor total | categorías │
//	│  FILTRO aplicado                                             │
//	│  TABLA: Producto | SKU | Categoría | Stock | Reorden | ...   │
//	│  FOOTER: filas mostradas / total                             │
//	└─────────────────────────────────────────────────────────────┘

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorLow     = &props.Color{Red: 190, Green: 30, Blue: 45}
)

// ── Renderer ──────────────────────────────────────────────────────────────────

// PDFRenderer implementa dashboard.ReportRenderer usando Maroto v2.
type PDFRenderer struct {
	title string
}

// NewPDFRenderer construye el renderer; title encabeza el documento.
func NewPDFRenderer(title string) *PDFRenderer {
	if title == "" {
		title = "Reporte de inventario"
	}
	return &PDFRenderer{title: title}
}

// ContentType tipo MIME del PDF.
func (r *PDFRenderer) ContentType() string { return "application/pdf" }

// Render genera el PDF y devuelve sus bytes.
func (r *PDFRenderer) Render(ctx context.Context, v *dashboard.View, generatedAt time.Time) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(r.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(r.headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(metricsRow(v.Metrics))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New(filterSummary(v), props.Text{Size: 8, Color: colorGray, Top: 1}),
	)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(v.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Mostrando %d de %d productos", v.Shown, v.Total), props.Text{
			Size: 8, Align: align.Right, Color: colorGray, Top: 1,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (r *PDFRenderer) headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(r.title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Color: colorGray, Top: 5,
			}),
		),
	)
}

func metricsRow(m dashboard.Metrics) core.Row {
	card := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5, Align: align.Center}),
		)
	}
	return row.New(14).Add(
		card("PRODUCTOS", strconv.Itoa(m.TotalProducts)),
		card("STOCK BAJO", strconv.Itoa(m.LowStockCount)),
		card("VALOR TOTAL", formatMoney(m.TotalValue)),
		card("CATEGORÍAS", strconv.Itoa(m.CategoryCount)),
	)
}

// columnas: suman 12.
var pdfColumns = []struct {
	label string
	size  int
	align align.Type
}{
	{"Producto", 3, align.Left},
	{"SKU", 2, align.Left},
	{"Categoría", 2, align.Left},
	{"Stock", 1, align.Right},
	{"Reorden", 1, align.Right},
	{"Precio", 1, align.Right},
	{"Valor", 1, align.Right},
	{"Estado", 1, align.Center},
}

func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(pdfColumns))
	for _, c := range pdfColumns {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...)
}

func tableRows(items []dashboard.Item) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, it := range items {
		p := it.Product
		values := []string{
			p.Name,
			p.SKU,
			nonEmpty(p.Category, "-"),
			strconv.Itoa(p.CurrentStock),
			strconv.Itoa(p.ReorderPoint),
			formatMoney(p.UnitPrice),
			formatMoney(it.Value),
			statusLabel(it.Status),
		}
		cols := make([]core.Col, 0, len(values))
		for i, val := range values {
			tp := props.Text{Size: 8, Align: pdfColumns[i].align, Top: 1, Left: 1, Right: 1}
			if i == len(values)-1 && it.Status == dashboard.StatusLow {
				tp.Color = colorLow
				tp.Style = fontstyle.Bold
			}
			cols = append(cols, col.New(pdfColumns[i].size).Add(text.New(val, tp)))
		}
		rows = append(rows, row.New(7).Add(cols...))
	}
	return rows
}
