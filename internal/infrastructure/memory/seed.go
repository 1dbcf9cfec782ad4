package memory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// Seed carga un catálogo de ejemplo para el modo demostración.
func Seed(ctx context.Context, s *Store) error {
	acme, err := s.Suppliers.Create(ctx, &entity.Supplier{
		Name: "ACME Industrial", ContactName: "Laura Gómez", Email: "ventas@acme.test", Phone: "+57 300 000 0000",
	})
	if err != nil {
		return fmt.Errorf("seed: proveedor: %w", err)
	}
	products := []entity.Product{
		{Name: "Tornillo hexagonal 1/4", SKU: "TOR-014", Barcode: "7701234000011", Category: "Ferretería", CurrentStock: 120, ReorderPoint: 50, UnitPrice: decimal.RequireFromString("0.35")},
		{Name: "Taladro percutor 650W", SKU: "TAL-650", Barcode: "7701234000028", Category: "Herramientas", CurrentStock: 4, ReorderPoint: 5, UnitPrice: decimal.RequireFromString("89.90")},
		{Name: "Cinta métrica 5m", SKU: "CIN-005", Barcode: "7701234000035", Category: "Herramientas", CurrentStock: 18, ReorderPoint: 10, UnitPrice: decimal.RequireFromString("7.50")},
		{Name: "Guantes de nitrilo", SKU: "GUA-NIT", Barcode: "7701234000042", Category: "Seguridad", CurrentStock: 0, ReorderPoint: 20, UnitPrice: decimal.RequireFromString("2.10")},
	}
	for i := range products {
		products[i].Supplier = acme.ID
		if _, err := s.Products.Create(ctx, &products[i]); err != nil {
			return fmt.Errorf("seed: producto %s: %w", products[i].SKU, err)
		}
	}
	return nil
}
