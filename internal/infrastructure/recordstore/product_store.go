package recordstore

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductStore)(nil)

// ProductStore implementa ProductRepository sobre la tabla product.
type ProductStore struct {
	tableStore[entity.Product]
}

// NewProductStore construye el store.
func NewProductStore(c *Client) *ProductStore {
	return &ProductStore{tableStore[entity.Product]{client: c, codec: codec[entity.Product]{
		spec:   ProductTable,
		label:  "producto",
		decode: productFromRecord,
		encode: productToRecord,
		id:     func(p *entity.Product) string { return p.ID },
	}}}
}

// List filtra por categoría en el backend. El bajo stock compara dos columnas,
// cosa que la API no soporta, así que se filtra aquí.
func (s *ProductStore) List(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	var params FetchParams
	if filter.Category != "" {
		params.Where = append(params.Where, Eq("category", filter.Category))
	}
	products, err := s.fetch(ctx, params)
	if err != nil {
		return nil, err
	}
	if !filter.LowStockOnly {
		return products, nil
	}
	low := products[:0]
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}

func (s *ProductStore) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return s.get(ctx, id)
}

func (s *ProductStore) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	return s.create(ctx, p)
}

func (s *ProductStore) Update(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	return s.update(ctx, p)
}

func (s *ProductStore) Delete(ctx context.Context, ids ...string) error {
	return s.delete(ctx, ids)
}

func productFromRecord(r Record) (*entity.Product, error) {
	stock, err := asInt("current_stock", r["current_stock"])
	if err != nil {
		return nil, err
	}
	reorder, err := asInt("reorder_point", r["reorder_point"])
	if err != nil {
		return nil, err
	}
	price, err := asDecimal("unit_price", r["unit_price"])
	if err != nil {
		return nil, err
	}
	created, modified, err := auditTimes(r)
	if err != nil {
		return nil, err
	}
	p := &entity.Product{
		ID:           asString(r["Id"]),
		Name:         asString(r["Name"]),
		SKU:          asString(r["sku"]),
		Barcode:      asString(r["barcode"]),
		Category:     asString(r["category"]),
		CurrentStock: stock,
		ReorderPoint: reorder,
		UnitPrice:    price,
		Supplier:     asString(r["supplier"]),
		Description:  asString(r["description"]),
		Tags:         asString(r["Tags"]),
		Owner:        asString(r["Owner"]),
		CreatedAt:    created,
		UpdatedAt:    modified,
	}
	p.Normalize()
	return p, nil
}

func productToRecord(p *entity.Product) Record {
	return Record{
		"Name":          p.Name,
		"Tags":          p.Tags,
		"Owner":         IDValue(p.Owner),
		"sku":           p.SKU,
		"barcode":       p.Barcode,
		"category":      p.Category,
		"current_stock": p.CurrentStock,
		"reorder_point": p.ReorderPoint,
		"unit_price":    decimalNumber(p.UnitPrice),
		"supplier":      IDValue(p.Supplier),
		"description":   p.Description,
	}
}
