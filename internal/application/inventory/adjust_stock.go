package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
	"github.com/jhoicas/Inventario-dashboard/pkg/logger"
	"github.com/jhoicas/Inventario-dashboard/pkg/metrics"
)

// Mode origen del ajuste; determina el tipo de movimiento registrado.
type Mode int

const (
	ModeDetailed Mode = iota // formulario con motivo y notas -> tipo adjustment
	ModeQuick                // botones +1/-1 -> tipo in/out
)

// Motivos de ajuste.
const (
	ReasonCountAdjustment = "Count Adjustment"
	ReasonDamage          = "Damage"
	ReasonLoss            = "Loss"
	ReasonReturn          = "Return"
	ReasonTransfer        = "Transfer"
	ReasonOther           = "Other"
	ReasonQuickAdd        = "Quick Add"
	ReasonQuickRemove     = "Quick Remove"
)

// DetailedReasons motivos aceptados por el formulario detallado, en el orden en que se ofrecen.
var DetailedReasons = []string{
	ReasonCountAdjustment, ReasonDamage, ReasonLoss, ReasonReturn, ReasonTransfer, ReasonOther,
}

// ErrZeroDelta un ajuste de cero se rechaza antes de cualquier escritura.
var ErrZeroDelta = fmt.Errorf("la cantidad del ajuste no puede ser cero: %w", domain.ErrInvalidInput)

// AdjustStockInput datos de un ajuste sobre un producto ya cargado.
type AdjustStockInput struct {
	Product *entity.Product
	Delta   int
	Reason  string
	Notes   string
	UserID  string
	Mode    Mode
}

// AdjustStockUseCase registra el movimiento de auditoría y luego escribe el nuevo stock.
// Las dos escrituras no son atómicas: si la segunda falla se devuelve *domain.StockDriftError.
// Ajustes concurrentes sobre el mismo producto: gana la última escritura.
type AdjustStockUseCase struct {
	products  repository.ProductRepository
	movements repository.StockMovementRepository
	log       *logger.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewAdjustStockUseCase construye el caso de uso. log y m pueden ser nil.
func NewAdjustStockUseCase(
	products repository.ProductRepository,
	movements repository.StockMovementRepository,
	log *logger.Logger,
	m *metrics.Metrics,
) *AdjustStockUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AdjustStockUseCase{
		products:  products,
		movements: movements,
		log:       log.Named("adjust_stock"),
		metrics:   m,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// AdjustStock aplica delta al stock del producto.
//  1. newStock = max(0, stock + delta)
//  2. persiste el movimiento con Quantity = |delta|
//  3. escribe la copia del producto con el nuevo stock
func (uc *AdjustStockUseCase) AdjustStock(ctx context.Context, in AdjustStockInput) (*entity.Product, error) {
	if in.Product == nil || in.Product.ID == "" {
		uc.metrics.IncAdjustment("", metrics.OutcomeRejected)
		return nil, fmt.Errorf("ajuste: producto requerido: %w", domain.ErrInvalidInput)
	}
	if in.Delta == 0 {
		uc.metrics.IncAdjustment("", metrics.OutcomeRejected)
		return nil, ErrZeroDelta
	}
	movementType, reason, err := classify(in)
	if err != nil {
		uc.metrics.IncAdjustment("", metrics.OutcomeRejected)
		return nil, err
	}

	previous := in.Product.CurrentStock
	newStock := max(0, previous+in.Delta)

	movement, err := uc.movements.Create(ctx, &entity.StockMovement{
		ProductID: in.Product.ID,
		Type:      movementType,
		Quantity:  abs(in.Delta),
		Reason:    reason,
		Notes:     in.Notes,
		Timestamp: uc.now(),
		UserID:    in.UserID,
		Name:      fmt.Sprintf("%s %+d", movementLabel(in.Product), in.Delta),
	})
	if err != nil {
		uc.metrics.IncAdjustment(movementType, metrics.OutcomeMovementError)
		return nil, fmt.Errorf("ajuste: registrar movimiento: %w", err)
	}

	updated := *in.Product
	updated.CurrentStock = newStock
	stored, err := uc.products.Update(ctx, &updated)
	if err != nil {
		drift := &domain.StockDriftError{
			ProductID:     in.Product.ID,
			MovementID:    movement.ID,
			PreviousStock: previous,
			ExpectedStock: newStock,
			Err:           err,
		}
		uc.metrics.IncAdjustment(movementType, metrics.OutcomeDrift)
		uc.metrics.IncDrift()
		uc.log.Error().
			Err(err).
			Str("product_id", drift.ProductID).
			Str("movement_id", drift.MovementID).
			Int("previous_stock", previous).
			Int("expected_stock", newStock).
			Msg("movimiento registrado pero el stock no se actualizó")
		return nil, drift
	}

	uc.metrics.IncAdjustment(movementType, metrics.OutcomeOK)
	uc.log.Debug().
		Str("product_id", stored.ID).
		Str("type", movementType).
		Int("delta", in.Delta).
		Int("stock", stored.CurrentStock).
		Msg("stock ajustado")
	return stored, nil
}

// QuickAdjust suma o resta una unidad. step debe ser +1 o -1.
func (uc *AdjustStockUseCase) QuickAdjust(ctx context.Context, product *entity.Product, step int, userID string) (*entity.Product, error) {
	if step != 1 && step != -1 {
		uc.metrics.IncAdjustment("", metrics.OutcomeRejected)
		return nil, fmt.Errorf("ajuste rápido: paso %d, se espera 1 o -1: %w", step, domain.ErrInvalidInput)
	}
	return uc.AdjustStock(ctx, AdjustStockInput{Product: product, Delta: step, UserID: userID, Mode: ModeQuick})
}

// Result producto ajustado y el stock que tenía antes.
type Result struct {
	Product       *entity.Product
	PreviousStock int
}

// AdjustStockByID carga el producto y aplica el ajuste. in.Product se ignora.
func (uc *AdjustStockUseCase) AdjustStockByID(ctx context.Context, productID string, in AdjustStockInput) (*Result, error) {
	if in.Delta == 0 {
		uc.metrics.IncAdjustment("", metrics.OutcomeRejected)
		return nil, ErrZeroDelta
	}
	p, err := uc.load(ctx, productID)
	if err != nil {
		return nil, err
	}
	in.Product = p
	stored, err := uc.AdjustStock(ctx, in)
	if err != nil {
		return nil, err
	}
	return &Result{Product: stored, PreviousStock: p.CurrentStock}, nil
}

// QuickAdjustByID variante de QuickAdjust que carga el producto.
func (uc *AdjustStockUseCase) QuickAdjustByID(ctx context.Context, productID string, step int, userID string) (*Result, error) {
	if step != 1 && step != -1 {
		_, err := uc.QuickAdjust(ctx, nil, step, userID)
		return nil, err
	}
	p, err := uc.load(ctx, productID)
	if err != nil {
		return nil, err
	}
	stored, err := uc.QuickAdjust(ctx, p, step, userID)
	if err != nil {
		return nil, err
	}
	return &Result{Product: stored, PreviousStock: p.CurrentStock}, nil
}

func (uc *AdjustStockUseCase) load(ctx context.Context, productID string) (*entity.Product, error) {
	if productID == "" {
		return nil, fmt.Errorf("ajuste: product_id vacío: %w", domain.ErrInvalidInput)
	}
	p, err := uc.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("ajuste: cargar producto: %w", err)
	}
	return p, nil
}

// classify decide tipo de movimiento y motivo según el modo.
func classify(in AdjustStockInput) (movementType, reason string, err error) {
	switch in.Mode {
	case ModeQuick:
		if in.Delta > 0 {
			return entity.MovementTypeIn, ReasonQuickAdd, nil
		}
		return entity.MovementTypeOut, ReasonQuickRemove, nil
	case ModeDetailed:
		reason = in.Reason
		if reason == "" {
			reason = ReasonCountAdjustment
		}
		if !validDetailedReason(reason) {
			return "", "", fmt.Errorf("ajuste: motivo %q no reconocido: %w", reason, domain.ErrInvalidInput)
		}
		return entity.MovementTypeAdjustment, reason, nil
	default:
		return "", "", fmt.Errorf("ajuste: modo %d: %w", in.Mode, domain.ErrInvalidInput)
	}
}

func validDetailedReason(r string) bool {
	for _, known := range DetailedReasons {
		if r == known {
			return true
		}
	}
	return false
}

func movementLabel(p *entity.Product) string {
	if p.SKU != "" {
		return p.SKU
	}
	return p.Name
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
