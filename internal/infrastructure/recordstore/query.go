package recordstore

// Operadores de filtro aceptados por la API de tablas.
const (
	OpExactMatch           = "ExactMatch"
	OpContains             = "Contains"
	OpGreaterThanOrEqualTo = "GreaterThanOrEqualTo"
	OpLessThanOrEqualTo    = "LessThanOrEqualTo"
)

// Record es un registro tal como viaja por la red: nombres de campo snake_case
// más los genéricos de la plataforma (Id, Name, Tags, Owner).
type Record map[string]any

// Filter predicado campo/operador/valores. Varios filtros se combinan con AND.
type Filter struct {
	FieldName string `json:"fieldName"`
	Operator  string `json:"operator"`
	Values    []any  `json:"values"`
}

// Eq construye un filtro ExactMatch.
func Eq(field string, value any) Filter {
	return Filter{FieldName: field, Operator: OpExactMatch, Values: []any{value}}
}

// Gte construye un filtro GreaterThanOrEqualTo.
func Gte(field string, value any) Filter {
	return Filter{FieldName: field, Operator: OpGreaterThanOrEqualTo, Values: []any{value}}
}

// Lte construye un filtro LessThanOrEqualTo.
func Lte(field string, value any) Filter {
	return Filter{FieldName: field, Operator: OpLessThanOrEqualTo, Values: []any{value}}
}

// OrderBy orden solicitado al backend.
type OrderBy struct {
	FieldName string `json:"fieldName"`
	SortType  string `json:"sorttype"` // ASC | DESC
}

// FetchParams parámetros de fetchRecords.
type FetchParams struct {
	Fields  []string  `json:"fields,omitempty"`
	Where   []Filter  `json:"where,omitempty"`
	OrderBy []OrderBy `json:"orderBy,omitempty"`
	Limit   int       `json:"-"`
	Offset  int       `json:"-"`
}
