package ventas

import (
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// ToResponse convierte la entidad en la respuesta completa.
func ToResponse(v *entity.Venta) dto.VentaResponse {
	return dto.VentaResponse{
		ID:              v.ID,
		Fecha:           v.Fecha.Format(dateLayout),
		Periodo:         v.Periodo,
		Sector:          v.Sector,
		NombreConsultor: v.NombreConsultor,
		NombreCliente:   v.NombreCliente,
		OrigenVenta:     v.OrigenVenta,
		NCotizacionOdoo: v.NCotizacionOdoo,
		NLicitacion:     v.NLicitacion,
		TipoServicio:    v.TipoServicio,
		PlazoContrato:   v.PlazoContrato,
		TipoVenta:       v.TipoVenta,
		FCVNuevo:        v.FCVNuevo,
		MRCNuevo:        v.MRCNuevo,
		FCVRenovado:     v.FCVRenovado,
		MRCInicial:      v.MRCInicial,
		MRCFinal:        v.MRCFinal,
		Variacion:       v.Variacion,
		PagoUnico:       v.PagoUnico,
		CreadoEn:        v.CreadoEn,
		ActualizadoEn:   v.ActualizadoEn,
	}
}

// ToResponses convierte una lista; nunca devuelve nil (JSON []).
func ToResponses(list []*entity.Venta) []dto.VentaResponse {
	out := make([]dto.VentaResponse, 0, len(list))
	for _, v := range list {
		out = append(out, ToResponse(v))
	}
	return out
}

// ToCompactResponse fila de la vista compacta.
func ToCompactResponse(v *entity.Venta) dto.VentaCompactResponse {
	return dto.VentaCompactResponse{
		ID:              v.ID,
		Fecha:           v.Fecha.Format(dateLayout),
		NombreConsultor: v.NombreConsultor,
		NombreCliente:   v.NombreCliente,
		TipoServicio:    v.TipoServicio,
		TipoVenta:       v.TipoVenta,
		MRCNuevo:        v.MRCNuevo,
		MRCFinal:        v.MRCFinal,
	}
}
