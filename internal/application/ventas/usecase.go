package ventas

import (
	"context"
	"strings"
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/access"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/internal/domain/ventas"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// UseCase casos de uso sobre registros de venta: listar, consultar, crear, editar y eliminar.
// Cada operación verifica la política de acceso antes de tocar el repositorio.
type UseCase struct {
	repo repository.VentaRepository
	log  *logger.Logger
}

// NewUseCase construye el caso de uso. log nil equivale a logger.Nop().
func NewUseCase(repo repository.VentaRepository, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{repo: repo, log: log.Component("ventas")}
}

// List devuelve las ventas filtradas, más recientes primero (fecha DESC, id DESC).
func (uc *UseCase) List(ctx context.Context, p access.Principal, q dto.VentaListQuery) (*dto.VentaListResponse, error) {
	if err := access.Authorize(p, access.ActionView).Err(); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx, ventas.ParseCriteria(q.Inicio, q.Fin, q.Consultor, q.Anio), repository.OrderList)
	if err != nil {
		return nil, err
	}

	out := &dto.VentaListResponse{Vista: NormalizeVista(q.Vista), Total: len(list)}
	if out.Vista == dto.VistaCompacta {
		rows := make([]dto.VentaCompactResponse, 0, len(list))
		for _, v := range list {
			rows = append(rows, ToCompactResponse(v))
		}
		out.Ventas = rows
		return out, nil
	}
	out.Ventas = ToResponses(list)
	return out, nil
}

// GetByID obtiene una venta. domain.ErrNotFound si no existe.
func (uc *UseCase) GetByID(ctx context.Context, p access.Principal, id int64) (*dto.VentaResponse, error) {
	if err := access.Authorize(p, access.ActionView).Err(); err != nil {
		return nil, err
	}
	v, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	out := ToResponse(v)
	return &out, nil
}

// Create registra una venta nueva con los derivados recalculados.
func (uc *UseCase) Create(ctx context.Context, p access.Principal, in dto.VentaRequest) (*dto.VentaResponse, error) {
	if err := access.Authorize(p, access.ActionCreate).Err(); err != nil {
		return nil, err
	}
	v, err := fromRequest(in)
	if err != nil {
		return nil, err
	}
	if !ventas.AmountsFit(ventas.Recompute(v)) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("venta_id", v.ID).Str("consultor", v.NombreConsultor).Msg("venta registrada")
	out := ToResponse(v)
	return &out, nil
}

// Update reemplaza los campos editables de la venta id y recalcula los derivados.
func (uc *UseCase) Update(ctx context.Context, p access.Principal, id int64, in dto.VentaRequest) (*dto.VentaResponse, error) {
	if err := access.Authorize(p, access.ActionEdit).Err(); err != nil {
		return nil, err
	}
	v, err := fromRequest(in)
	if err != nil {
		return nil, err
	}
	v.ID = id
	if !ventas.AmountsFit(ventas.Recompute(v)) {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("venta_id", id).Msg("venta actualizada")
	out := ToResponse(v)
	return &out, nil
}

// Delete elimina la venta id. domain.ErrNotFound si no existe.
func (uc *UseCase) Delete(ctx context.Context, p access.Principal, id int64) error {
	if err := access.Authorize(p, access.ActionDelete).Err(); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Int64("venta_id", id).Msg("venta eliminada")
	return nil
}

// NormalizeVista devuelve "compacta" o "completa" (valor por defecto).
func NormalizeVista(s string) string {
	if strings.EqualFold(strings.TrimSpace(s), dto.VistaCompacta) {
		return dto.VistaCompacta
	}
	return dto.VistaCompleta
}

// fromRequest construye la entidad desde la petición: recorta textos, vacío opcional -> NULL
// y montos a 2 decimales.
func fromRequest(in dto.VentaRequest) (*entity.Venta, error) {
	fecha, err := time.Parse(dateLayout, strings.TrimSpace(in.Fecha))
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if in.PlazoContrato < 1 || in.PlazoContrato > 100 {
		return nil, domain.ErrInvalidInput
	}
	return &entity.Venta{
		Fecha:           fecha,
		Periodo:         in.Periodo,
		Sector:          in.Sector,
		NombreConsultor: strings.TrimSpace(in.NombreConsultor),
		NombreCliente:   strings.TrimSpace(in.NombreCliente),
		OrigenVenta:     in.OrigenVenta,
		NCotizacionOdoo: optional(in.NCotizacionOdoo),
		NLicitacion:     optional(in.NLicitacion),
		TipoServicio:    in.TipoServicio,
		PlazoContrato:   in.PlazoContrato,
		TipoVenta:       in.TipoVenta,
		FCVNuevo:        ventas.RoundMoney(in.FCVNuevo),
		FCVRenovado:     ventas.RoundMoney(in.FCVRenovado),
		MRCInicial:      ventas.RoundMoney(in.MRCInicial),
		PagoUnico:       ventas.RoundMoney(in.PagoUnico),
	}, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
