package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock solo cambia vía ajustes.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un nuevo producto. Nombre y SKU son obligatorios.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name, sku := strings.TrimSpace(in.Name), strings.TrimSpace(in.SKU)
	if name == "" || sku == "" {
		return nil, fmt.Errorf("producto: nombre y sku obligatorios: %w", domain.ErrInvalidInput)
	}
	if in.CurrentStock < 0 || in.ReorderPoint < 0 || in.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("producto: cantidades y precio no pueden ser negativos: %w", domain.ErrInvalidInput)
	}
	created, err := uc.repo.Create(ctx, &entity.Product{
		Name:         name,
		SKU:          sku,
		Barcode:      in.Barcode,
		Category:     strings.TrimSpace(in.Category),
		CurrentStock: in.CurrentStock,
		ReorderPoint: in.ReorderPoint,
		UnitPrice:    in.UnitPrice,
		Supplier:     in.Supplier,
		Description:  in.Description,
		Tags:         in.Tags,
	})
	if err != nil {
		return nil, err
	}
	return ToProductResponse(created), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(p), nil
}

// Update aplica los campos presentes sobre el producto actual y escribe la copia completa.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("producto: nombre vacío: %w", domain.ErrInvalidInput)
		}
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.SKU != nil {
		if strings.TrimSpace(*in.SKU) == "" {
			return nil, fmt.Errorf("producto: sku vacío: %w", domain.ErrInvalidInput)
		}
		p.SKU = strings.TrimSpace(*in.SKU)
	}
	if in.Barcode != nil {
		p.Barcode = *in.Barcode
	}
	if in.Category != nil {
		p.Category = strings.TrimSpace(*in.Category)
	}
	if in.ReorderPoint != nil {
		if *in.ReorderPoint < 0 {
			return nil, fmt.Errorf("producto: punto de reorden negativo: %w", domain.ErrInvalidInput)
		}
		p.ReorderPoint = *in.ReorderPoint
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("producto: precio negativo: %w", domain.ErrInvalidInput)
		}
		p.UnitPrice = *in.UnitPrice
	}
	if in.Supplier != nil {
		p.Supplier = *in.Supplier
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Tags != nil {
		p.Tags = *in.Tags
	}
	updated, err := uc.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	return ToProductResponse(updated), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	return uc.list(ctx, repository.ProductFilter{})
}

// ListByCategory lista los productos de una categoría.
func (uc *ProductUseCase) ListByCategory(ctx context.Context, category string) (*dto.ProductListResponse, error) {
	return uc.list(ctx, repository.ProductFilter{Category: category})
}

// ListLowStock lista los productos con stock en o bajo el punto de reorden.
func (uc *ProductUseCase) ListLowStock(ctx context.Context) (*dto.ProductListResponse, error) {
	return uc.list(ctx, repository.ProductFilter{LowStockOnly: true})
}

// Search combina categoría y bajo stock.
func (uc *ProductUseCase) Search(ctx context.Context, filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	return uc.list(ctx, filter)
}

func (uc *ProductUseCase) list(ctx context.Context, filter repository.ProductFilter) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *ToProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// Delete elimina uno o varios productos.
func (uc *ProductUseCase) Delete(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return fmt.Errorf("producto: sin ids: %w", domain.ErrInvalidInput)
	}
	return uc.repo.Delete(ctx, ids...)
}

// ToProductResponse convierte la entidad en su DTO de salida.
func ToProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		SKU:          p.SKU,
		Barcode:      p.Barcode,
		Category:     p.Category,
		CurrentStock: p.CurrentStock,
		ReorderPoint: p.ReorderPoint,
		UnitPrice:    p.UnitPrice,
		Supplier:     p.Supplier,
		Description:  p.Description,
		Tags:         p.Tags,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
