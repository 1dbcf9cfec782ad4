// Package report renderiza la vista de inventario como PDF (Maroto) o XLSX (Excelize).
package report

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
)

var statusLabels = map[dashboard.StockStatus]string{
	dashboard.StatusLow:    "Bajo",
	dashboard.StatusMedium: "Medio",
	dashboard.StatusHigh:   "Alto",
}

func statusLabel(s dashboard.StockStatus) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// formatMoney formatea con dos decimales, puntos de miles y coma decimal.
// Ej: 1234567.5 → "$1.234.567,50"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + "$" + groupThousands(intPart) + "," + frac
}

func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// filterSummary describe en una línea el filtro y el orden aplicados.
func filterSummary(v *dashboard.View) string {
	f := v.Filter
	parts := []string{"Orden: " + string(v.Sort.Field) + " " + string(v.Sort.Direction)}
	if f.Search != "" {
		parts = append(parts, "Búsqueda: "+f.Search)
	}
	if f.Category != "" && f.Category != dashboard.AllCategories {
		parts = append(parts, "Categoría: "+f.Category)
	}
	if f.LowStockOnly {
		parts = append(parts, "Solo stock bajo")
	}
	return strings.Join(parts, "  |  ")
}
