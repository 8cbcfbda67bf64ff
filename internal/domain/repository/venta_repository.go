package repository

import (
	"context"

	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/ventas"
)

// VentaOrder orden de los listados de ventas.
type VentaOrder int

const (
	// OrderList fecha DESC, id DESC (vista de listado).
	OrderList VentaOrder = iota
	// OrderReport fecha DESC (reportes y exportaciones).
	OrderReport
)

// VentaRepository define el puerto de persistencia para Venta (DIP).
//
// Create y Update deben dejar los campos derivados consistentes (ventas.Recompute)
// antes de escribir; es parte del contrato, no responsabilidad del caller.
type VentaRepository interface {
	Create(ctx context.Context, v *entity.Venta) error
	// Update devuelve domain.ErrNotFound si el ID no existe.
	Update(ctx context.Context, v *entity.Venta) error
	// Delete devuelve domain.ErrNotFound si el ID no existe.
	Delete(ctx context.Context, id int64) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Venta, error)
	List(ctx context.Context, c ventas.Criteria, order VentaOrder) ([]*entity.Venta, error)
}
