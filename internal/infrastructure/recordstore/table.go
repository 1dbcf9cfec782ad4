package recordstore

// Campos de sistema que el backend agrega a todas las tablas.
var systemFields = []string{"Id", "Name", "Tags", "Owner", "CreatedOn", "CreatedBy", "ModifiedOn", "ModifiedBy"}

// TableSpec describe una tabla remota: campos que se leen y campos que se pueden escribir.
type TableSpec struct {
	Name     string
	Fields   []string
	Writable []string
}

func newTableSpec(name string, writable, extra []string) TableSpec {
	fields := make([]string, 0, len(systemFields)+len(extra))
	fields = append(fields, systemFields...)
	fields = append(fields, extra...)
	return TableSpec{Name: name, Fields: fields, Writable: writable}
}

// Tablas conocidas.
var (
	ProductTable = newTableSpec("product",
		[]string{"Name", "Tags", "Owner", "sku", "barcode", "category", "current_stock", "reorder_point", "unit_price", "supplier", "description"},
		[]string{"sku", "barcode", "category", "current_stock", "reorder_point", "unit_price", "supplier", "description"},
	)
	MovementTable = newTableSpec("stock_movement",
		[]string{"Name", "Tags", "Owner", "type", "quantity", "reason", "timestamp", "notes", "user_id", "product_id"},
		[]string{"type", "quantity", "reason", "timestamp", "notes", "user_id", "product_id"},
	)
	SupplierTable = newTableSpec("supplier",
		[]string{"Name", "Tags", "Owner", "contact_name", "email", "phone"},
		[]string{"contact_name", "email", "phone"},
	)
	CustomerTable = newTableSpec("Customer",
		[]string{"Name", "Tags", "Owner"},
		nil,
	)
	UserTable = newTableSpec("User",
		[]string{"Name", "Tags", "Owner", "FirstName", "LastName", "AvatarUrl", "ProfileId"},
		[]string{"FirstName", "LastName", "AvatarUrl", "ProfileId"},
	)
)

// Sanitize devuelve una copia de rec con solo los campos escribibles.
func (t TableSpec) Sanitize(rec Record) Record {
	out := make(Record, len(t.Writable))
	for _, f := range t.Writable {
		if v, ok := rec[f]; ok {
			out[f] = v
		}
	}
	return out
}

// SanitizeForUpdate igual que Sanitize pero conserva Id.
func (t TableSpec) SanitizeForUpdate(rec Record) Record {
	out := t.Sanitize(rec)
	if id, ok := rec["Id"]; ok {
		out["Id"] = id
	}
	return out
}
