package report

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
)

const (
	xlsxSheet   = "Inventario"
	xlsxSummary = "Resumen"
)

var xlsxHeader = []interface{}{
	"id", "Producto", "SKU", "Código de barras", "Categoría",
	"Stock", "Punto de reorden", "Precio unitario", "Valor en stock", "Estado",
}

// XLSXRenderer implementa dashboard.ReportRenderer con Excelize: una hoja con las
// filas visibles y otra con las métricas.
type XLSXRenderer struct{}

// NewXLSXRenderer construye el renderer.
func NewXLSXRenderer() *XLSXRenderer { return &XLSXRenderer{} }

// ContentType tipo MIME de un libro OOXML.
func (r *XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Render escribe el libro en memoria.
func (r *XLSXRenderer) Render(ctx context.Context, v *dashboard.View, generatedAt time.Time) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), xlsxSheet); err != nil {
		return nil, fmt.Errorf("xlsx: hoja: %w", err)
	}
	header := xlsxHeader
	if err := f.SetSheetRow(xlsxSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(xlsxHeader), 1)
	if err := f.SetCellStyle(xlsxSheet, "A1", last, bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	for i, it := range v.Items {
		p := it.Product
		// Montos como float para que la hoja los trate como números.
		price, _ := p.UnitPrice.Float64()
		value, _ := it.Value.Float64()
		excelRow := []interface{}{
			p.ID, p.Name, p.SKU, p.Barcode, p.Category,
			p.CurrentStock, p.ReorderPoint, price, value, statusLabel(it.Status),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("xlsx: celda: %w", err)
		}
		if err := f.SetSheetRow(xlsxSheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}

	if _, err := f.NewSheet(xlsxSummary); err != nil {
		return nil, fmt.Errorf("xlsx: hoja resumen: %w", err)
	}
	total, _ := v.Metrics.TotalValue.Float64()
	summary := [][]interface{}{
		{"Generado", generatedAt.Format(time.RFC3339)},
		{"Productos", v.Metrics.TotalProducts},
		{"Stock bajo", v.Metrics.LowStockCount},
		{"Valor total", total},
		{"Categorías", v.Metrics.CategoryCount},
		{"Filas mostradas", v.Shown},
		{"Filtro", filterSummary(v)},
	}
	for i := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(xlsxSummary, cell, &summary[i]); err != nil {
			return nil, fmt.Errorf("xlsx: resumen: %w", err)
		}
	}

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
