package recordstore

import (
	"context"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*MovementStore)(nil)

// MovementStore implementa StockMovementRepository sobre la tabla stock_movement.
type MovementStore struct {
	tableStore[entity.StockMovement]
}

// NewMovementStore construye el store.
func NewMovementStore(c *Client) *MovementStore {
	return &MovementStore{tableStore[entity.StockMovement]{client: c, codec: codec[entity.StockMovement]{
		spec:   MovementTable,
		label:  "movimiento",
		decode: movementFromRecord,
		encode: movementToRecord,
		id:     func(m *entity.StockMovement) string { return m.ID },
	}}}
}

// List filtra por producto y rango de fechas en el backend, más recientes primero.
func (s *MovementStore) List(ctx context.Context, filter repository.MovementFilter) ([]*entity.StockMovement, error) {
	params := FetchParams{OrderBy: []OrderBy{{FieldName: "timestamp", SortType: "DESC"}}}
	if filter.ProductID != "" {
		params.Where = append(params.Where, Eq("product_id", IDValue(filter.ProductID)))
	}
	if filter.From != nil {
		params.Where = append(params.Where, Gte("timestamp", formatTime(*filter.From)))
	}
	if filter.To != nil {
		params.Where = append(params.Where, Lte("timestamp", formatTime(*filter.To)))
	}
	return s.fetch(ctx, params)
}

func (s *MovementStore) GetByID(ctx context.Context, id string) (*entity.StockMovement, error) {
	return s.get(ctx, id)
}

func (s *MovementStore) Create(ctx context.Context, m *entity.StockMovement) (*entity.StockMovement, error) {
	return s.create(ctx, m)
}

func (s *MovementStore) Update(ctx context.Context, m *entity.StockMovement) (*entity.StockMovement, error) {
	return s.update(ctx, m)
}

func (s *MovementStore) Delete(ctx context.Context, ids ...string) error {
	return s.delete(ctx, ids)
}

func movementFromRecord(r Record) (*entity.StockMovement, error) {
	qty, err := asInt("quantity", r["quantity"])
	if err != nil {
		return nil, err
	}
	if qty < 0 {
		qty = -qty
	}
	ts, err := asTime("timestamp", r["timestamp"])
	if err != nil {
		return nil, err
	}
	return &entity.StockMovement{
		ID:        asString(r["Id"]),
		ProductID: asString(r["product_id"]),
		Type:      asString(r["type"]),
		Quantity:  qty,
		Reason:    asString(r["reason"]),
		Notes:     asString(r["notes"]),
		Timestamp: ts,
		UserID:    asString(r["user_id"]),
		Name:      asString(r["Name"]),
		Tags:      asString(r["Tags"]),
		Owner:     asString(r["Owner"]),
	}, nil
}

func movementToRecord(m *entity.StockMovement) Record {
	return Record{
		"Name":       m.Name,
		"Tags":       m.Tags,
		"Owner":      IDValue(m.Owner),
		"type":       m.Type,
		"quantity":   m.Quantity,
		"reason":     m.Reason,
		"timestamp":  formatTime(m.Timestamp),
		"notes":      m.Notes,
		"user_id":    IDValue(m.UserID),
		"product_id": IDValue(m.ProductID),
	}
}
