package recordstore

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
)

// IDValue devuelve el id en la forma que espera el backend: numérico si son solo dígitos.
func IDValue(id string) any {
	if id == "" {
		return nil
	}
	if _, err := strconv.ParseInt(id, 10, 64); err == nil {
		return json.Number(id)
	}
	return id
}

// asString convierte cualquier valor escalar a texto. Los campos lookup llegan
// como objeto {Id, Name}; se toma el Id.
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case map[string]any:
		return asString(t["Id"])
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			if s := asString(e); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(t)
	}
}

// asInt acepta números JSON o cadenas numéricas. Vacío o ausente vale 0.
// Un valor no numérico es domain.ErrInvalidInput.
func asInt(field string, v any) (int, error) {
	var s string
	switch t := v.(type) {
	case nil:
		return 0, nil
	case int:
		return t, nil
	case int64:
		return integral(field, float64(t))
	case float64:
		return integral(field, t)
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	default:
		return 0, fmt.Errorf("%s: tipo %T no numérico: %w", field, v, domain.ErrInvalidInput)
	}
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return integral(field, float64(n))
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s: %q no es numérico: %w", field, s, domain.ErrInvalidInput)
	}
	return integral(field, f)
}

// integral acepta 5 o 5.0; rechaza fracciones y valores fuera del rango de int32.
func integral(field string, f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("%s: %v no es entero: %w", field, f, domain.ErrInvalidInput)
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, fmt.Errorf("%s: %v fuera de rango: %w", field, f, domain.ErrInvalidInput)
	}
	return int(f), nil
}

// asDecimal igual que asInt pero conserva decimales.
func asDecimal(field string, v any) (decimal.Decimal, error) {
	var s string
	switch t := v.(type) {
	case nil:
		return decimal.Zero, nil
	case float64:
		return decimal.NewFromFloat(t), nil
	case int:
		return decimal.NewFromInt(int64(t)), nil
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	default:
		return decimal.Zero, fmt.Errorf("%s: tipo %T no numérico: %w", field, v, domain.ErrInvalidInput)
	}
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %q no es numérico: %w", field, s, domain.ErrInvalidInput)
	}
	return d, nil
}

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02"}

// asTime acepta RFC 3339 y algunas variantes sin zona (se asume UTC).
func asTime(field string, v any) (time.Time, error) {
	s := strings.TrimSpace(asString(v))
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%s: fecha %q inválida: %w", field, s, domain.ErrInvalidInput)
}

func formatTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC().Format(time.RFC3339)
}

// decimalNumber serializa un decimal como número JSON sin pasar por float64.
func decimalNumber(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}
