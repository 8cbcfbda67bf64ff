package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/internal/domain/ventas"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

const ventaColumns = `id, fecha, periodo, sector, nombre_consultor, nombre_cliente, origen_venta,
	n_cotizacion_odoo, n_licitacion, tipo_servicio, plazo_contrato, tipo_venta,
	fcv_nuevo, mrc_nuevo, fcv_renovado, mrc_inicial, mrc_final, variacion, pago_unico,
	creado_en, actualizado_en`

// VentaRepo implementación del puerto VentaRepository sobre PostgreSQL (usable con pool o tx).
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador de persistencia para ventas. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

// Create recalcula los derivados y persiste la venta; asigna ID y marcas de tiempo.
func (r *VentaRepo) Create(ctx context.Context, v *entity.Venta) error {
	ventas.Recompute(v)
	query := `
		INSERT INTO ventas (fecha, periodo, sector, nombre_consultor, nombre_cliente, origen_venta,
			n_cotizacion_odoo, n_licitacion, tipo_servicio, plazo_contrato, tipo_venta,
			fcv_nuevo, mrc_nuevo, fcv_renovado, mrc_inicial, mrc_final, variacion, pago_unico)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id, creado_en, actualizado_en`
	err := r.q.QueryRow(ctx, query,
		v.Fecha, v.Periodo, v.Sector, v.NombreConsultor, v.NombreCliente, v.OrigenVenta,
		v.NCotizacionOdoo, v.NLicitacion, v.TipoServicio, v.PlazoContrato, v.TipoVenta,
		v.FCVNuevo, v.MRCNuevo, v.FCVRenovado, v.MRCInicial, v.MRCFinal, v.Variacion, v.PagoUnico,
	).Scan(&v.ID, &v.CreadoEn, &v.ActualizadoEn)
	if err != nil {
		return fmt.Errorf("insert venta: %w", err)
	}
	return nil
}

// Update recalcula los derivados y reemplaza todos los campos editables.
// Refresca CreadoEn y ActualizadoEn desde la fila guardada.
func (r *VentaRepo) Update(ctx context.Context, v *entity.Venta) error {
	ventas.Recompute(v)
	query := `
		UPDATE ventas SET fecha = $1, periodo = $2, sector = $3, nombre_consultor = $4,
			nombre_cliente = $5, origen_venta = $6, n_cotizacion_odoo = $7, n_licitacion = $8,
			tipo_servicio = $9, plazo_contrato = $10, tipo_venta = $11,
			fcv_nuevo = $12, mrc_nuevo = $13, fcv_renovado = $14, mrc_inicial = $15,
			mrc_final = $16, variacion = $17, pago_unico = $18, actualizado_en = NOW()
		WHERE id = $19
		RETURNING creado_en, actualizado_en`
	err := r.q.QueryRow(ctx, query,
		v.Fecha, v.Periodo, v.Sector, v.NombreConsultor, v.NombreCliente, v.OrigenVenta,
		v.NCotizacionOdoo, v.NLicitacion, v.TipoServicio, v.PlazoContrato, v.TipoVenta,
		v.FCVNuevo, v.MRCNuevo, v.FCVRenovado, v.MRCInicial, v.MRCFinal, v.Variacion, v.PagoUnico,
		v.ID,
	).Scan(&v.CreadoEn, &v.ActualizadoEn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("update venta: %w", err)
	}
	return nil
}

// Delete elimina la venta por ID.
func (r *VentaRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM ventas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete venta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *VentaRepo) GetByID(ctx context.Context, id int64) (*entity.Venta, error) {
	v, err := scanVenta(r.q.QueryRow(ctx, `SELECT `+ventaColumns+` FROM ventas WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return v, nil
}

// List devuelve las ventas que cumplen c, en el orden pedido.
func (r *VentaRepo) List(ctx context.Context, c ventas.Criteria, order repository.VentaOrder) ([]*entity.Venta, error) {
	where, args := ventaWhere(c)
	query := `SELECT ` + ventaColumns + ` FROM ventas` + where
	if order == repository.OrderReport {
		query += ` ORDER BY fecha DESC, id ASC`
	} else {
		query += ` ORDER BY fecha DESC, id DESC`
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Venta
	for rows.Next() {
		v, err := scanVenta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	return list, nil
}

// ventaWhere traduce Criteria a una cláusula WHERE con placeholders posicionales.
func ventaWhere(c ventas.Criteria) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if c.DateFrom != nil {
		add("fecha >= $%d", *c.DateFrom)
	}
	if c.DateTo != nil {
		add("fecha <= $%d", *c.DateTo)
	}
	if c.Consultant != "" {
		add(`nombre_consultor ILIKE '%%' || $%d || '%%' ESCAPE '\'`, escapeLike(c.Consultant))
	}
	if c.Year != nil {
		add("EXTRACT(YEAR FROM fecha) = $%d", *c.Year)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func scanVenta(row pgx.Row) (*entity.Venta, error) {
	var v entity.Venta
	err := row.Scan(
		&v.ID, &v.Fecha, &v.Periodo, &v.Sector, &v.NombreConsultor, &v.NombreCliente, &v.OrigenVenta,
		&v.NCotizacionOdoo, &v.NLicitacion, &v.TipoServicio, &v.PlazoContrato, &v.TipoVenta,
		&v.FCVNuevo, &v.MRCNuevo, &v.FCVRenovado, &v.MRCInicial, &v.MRCFinal, &v.Variacion, &v.PagoUnico,
		&v.CreadoEn, &v.ActualizadoEn,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
