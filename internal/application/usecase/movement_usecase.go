package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

// MovementUseCase consulta y corrección administrativa del historial de movimientos.
// Los movimientos del flujo normal los crea el motor de ajustes, no este caso de uso.
type MovementUseCase struct {
	repo repository.StockMovementRepository
}

func NewMovementUseCase(repo repository.StockMovementRepository) *MovementUseCase {
	return &MovementUseCase{repo: repo}
}

// List aplica el filtro tal cual.
func (uc *MovementUseCase) List(ctx context.Context, filter repository.MovementFilter) (*dto.MovementListResponse, error) {
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, fmt.Errorf("movimiento: rango de fechas invertido: %w", domain.ErrInvalidInput)
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *ToMovementResponse(m))
	}
	return &dto.MovementListResponse{Items: items, Total: len(items)}, nil
}

// ListByProduct historial de un producto.
func (uc *MovementUseCase) ListByProduct(ctx context.Context, productID string) (*dto.MovementListResponse, error) {
	if productID == "" {
		return nil, fmt.Errorf("movimiento: product_id vacío: %w", domain.ErrInvalidInput)
	}
	return uc.List(ctx, repository.MovementFilter{ProductID: productID})
}

// ListByDateRange movimientos con timestamp en [from, to].
func (uc *MovementUseCase) ListByDateRange(ctx context.Context, from, to time.Time) (*dto.MovementListResponse, error) {
	return uc.List(ctx, repository.MovementFilter{From: &from, To: &to})
}

func (uc *MovementUseCase) GetByID(ctx context.Context, id string) (*dto.MovementResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToMovementResponse(m), nil
}

// Create alta manual; si falta user_id se usa el del token.
func (uc *MovementUseCase) Create(ctx context.Context, userID string, in dto.CreateMovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || !entity.ValidMovementType(in.Type) || in.Quantity < 0 {
		return nil, fmt.Errorf("movimiento: datos inválidos: %w", domain.ErrInvalidInput)
	}
	m := &entity.StockMovement{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
		Notes:     in.Notes,
		UserID:    in.UserID,
		Timestamp: time.Now().UTC(),
	}
	if m.UserID == "" {
		m.UserID = userID
	}
	if in.Timestamp != nil {
		m.Timestamp = in.Timestamp.UTC()
	}
	created, err := uc.repo.Create(ctx, m)
	if err != nil {
		return nil, err
	}
	return ToMovementResponse(created), nil
}

// Update corrige campos de un movimiento existente.
func (uc *MovementUseCase) Update(ctx context.Context, id string, in dto.UpdateMovementRequest) (*dto.MovementResponse, error) {
	m, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Type != nil {
		if !entity.ValidMovementType(*in.Type) {
			return nil, fmt.Errorf("movimiento: tipo %q: %w", *in.Type, domain.ErrInvalidInput)
		}
		m.Type = *in.Type
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, fmt.Errorf("movimiento: cantidad negativa: %w", domain.ErrInvalidInput)
		}
		m.Quantity = *in.Quantity
	}
	if in.Reason != nil {
		m.Reason = *in.Reason
	}
	if in.Notes != nil {
		m.Notes = *in.Notes
	}
	if in.Timestamp != nil {
		m.Timestamp = in.Timestamp.UTC()
	}
	updated, err := uc.repo.Update(ctx, m)
	if err != nil {
		return nil, err
	}
	return ToMovementResponse(updated), nil
}

func (uc *MovementUseCase) Delete(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return fmt.Errorf("movimiento: sin ids: %w", domain.ErrInvalidInput)
	}
	return uc.repo.Delete(ctx, ids...)
}

// ToMovementResponse convierte la entidad en su DTO de salida.
func ToMovementResponse(m *entity.StockMovement) *dto.MovementResponse {
	if m == nil {
		return nil
	}
	return &dto.MovementResponse{
		ID:        m.ID,
		ProductID: m.ProductID,
		Type:      m.Type,
		Quantity:  m.Quantity,
		Reason:    m.Reason,
		Notes:     m.Notes,
		Timestamp: m.Timestamp,
		UserID:    m.UserID,
	}
}
