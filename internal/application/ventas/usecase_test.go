package ventas_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	appventas "github.com/jhoicas/Ventas-api/internal/application/ventas"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/access"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/internal/domain/ventas"
)

// fakeVentaRepo repositorio en memoria. No recalcula: así se comprueba que el caso de uso lo hace.
type fakeVentaRepo struct {
	data   map[int64]*entity.Venta
	nextID int64
	err    error
}

func newFakeVentaRepo(seed ...*entity.Venta) *fakeVentaRepo {
	r := &fakeVentaRepo{data: map[int64]*entity.Venta{}}
	for _, v := range seed {
		r.data[v.ID] = v
		if v.ID > r.nextID {
			r.nextID = v.ID
		}
	}
	return r
}

func (r *fakeVentaRepo) Create(_ context.Context, v *entity.Venta) error {
	if r.err != nil {
		return r.err
	}
	r.nextID++
	v.ID = r.nextID
	cp := *v
	r.data[v.ID] = &cp
	return nil
}

func (r *fakeVentaRepo) Update(_ context.Context, v *entity.Venta) error {
	if _, ok := r.data[v.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *v
	r.data[v.ID] = &cp
	return nil
}

func (r *fakeVentaRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.data[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.data, id)
	return nil
}

func (r *fakeVentaRepo) GetByID(_ context.Context, id int64) (*entity.Venta, error) {
	return r.data[id], nil
}

func (r *fakeVentaRepo) List(_ context.Context, c ventas.Criteria, order repository.VentaOrder) ([]*entity.Venta, error) {
	all := make([]*entity.Venta, 0, len(r.data))
	for id := int64(1); id <= r.nextID; id++ {
		if v, ok := r.data[id]; ok {
			all = append(all, v)
		}
	}
	out := ventas.Filter(all, c)
	if order == repository.OrderReport {
		ventas.SortForReport(out)
	} else {
		ventas.SortForList(out)
	}
	return out, nil
}

var (
	admin = access.Principal{Authenticated: true, Role: entity.RoleAdmin}
	user  = access.Principal{Authenticated: true, Role: entity.RoleUser}
	guest = access.Principal{Authenticated: true, Role: entity.RoleGuest}
	anon  = access.Principal{}
)

func validRequest() dto.VentaRequest {
	return dto.VentaRequest{
		Fecha:           "2024-03-15",
		Periodo:         entity.PeriodoQ1,
		Sector:          entity.SectorLima,
		NombreConsultor: "  Ana Torres ",
		NombreCliente:   "ACME",
		OrigenVenta:     entity.OrigenCotizacion,
		NCotizacionOdoo: "  ",
		NLicitacion:     "LIC-7",
		TipoServicio:    entity.ServicioDatos,
		PlazoContrato:   12,
		TipoVenta:       entity.TipoVentaNueva,
		FCVNuevo:        decimal.NewNullDecimal(decimal.RequireFromString("1200")),
	}
}

func seedVenta(id int64, fecha string, consultor string) *entity.Venta {
	f, _ := time.Parse("2006-01-02", fecha)
	return &entity.Venta{ID: id, Fecha: f, NombreConsultor: consultor, PlazoContrato: 12}
}

func TestUseCase_Create(t *testing.T) {
	repo := newFakeVentaRepo()
	uc := appventas.NewUseCase(repo, nil)

	out, err := uc.Create(context.Background(), user, validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	assert.Equal(t, "2024-03-15", out.Fecha)
	assert.Equal(t, "Ana Torres", out.NombreConsultor)
	assert.Nil(t, out.NCotizacionOdoo, "texto opcional vacío se guarda como NULL")
	require.NotNil(t, out.NLicitacion)
	assert.Equal(t, "LIC-7", *out.NLicitacion)
	require.True(t, out.MRCNuevo.Valid)
	assert.True(t, decimal.RequireFromString("100").Equal(out.MRCNuevo.Decimal))
	assert.False(t, out.MRCFinal.Valid)
	assert.True(t, repo.data[1].MRCNuevo.Valid, "lo persistido trae los derivados")
}

func TestUseCase_Create_Permisos(t *testing.T) {
	uc := appventas.NewUseCase(newFakeVentaRepo(), nil)

	_, err := uc.Create(context.Background(), guest, validRequest())
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Create(context.Background(), anon, validRequest())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestUseCase_Create_FechaInvalida(t *testing.T) {
	uc := appventas.NewUseCase(newFakeVentaRepo(), nil)
	in := validRequest()
	in.Fecha = "15/03/2024"

	_, err := uc.Create(context.Background(), admin, in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUseCase_Create_MontoFueraDeRango(t *testing.T) {
	repo := newFakeVentaRepo()
	uc := appventas.NewUseCase(repo, nil)
	in := validRequest()
	in.FCVNuevo = decimal.NewNullDecimal(decimal.RequireFromString("10000000000000"))

	_, err := uc.Create(context.Background(), admin, in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, repo.data, "un monto que no cabe en la columna no se persiste")
}

func TestUseCase_Update_DerivadoFueraDeRango(t *testing.T) {
	repo := newFakeVentaRepo(seedVenta(4, "2024-01-01", "Luis"))
	uc := appventas.NewUseCase(repo, nil)
	in := validRequest()
	in.PlazoContrato = 1
	in.FCVRenovado = decimal.NewNullDecimal(decimal.RequireFromString("900000000000"))
	in.MRCInicial = decimal.NewNullDecimal(decimal.RequireFromString("-900000000000"))

	_, err := uc.Update(context.Background(), admin, 4, in)

	assert.ErrorIs(t, err, domain.ErrInvalidInput, "la variación supera NUMERIC(14,2)")
	assert.Equal(t, "Luis", repo.data[4].NombreConsultor)
}

func TestUseCase_Update(t *testing.T) {
	repo := newFakeVentaRepo(seedVenta(4, "2024-01-01", "Luis"))
	uc := appventas.NewUseCase(repo, nil)
	in := validRequest()
	in.PlazoContrato = 6
	in.FCVRenovado = decimal.NewNullDecimal(decimal.RequireFromString("600"))
	in.MRCInicial = decimal.NewNullDecimal(decimal.RequireFromString("80"))

	out, err := uc.Update(context.Background(), user, 4, in)

	require.NoError(t, err)
	assert.Equal(t, int64(4), out.ID)
	assert.True(t, decimal.RequireFromString("200").Equal(out.MRCNuevo.Decimal))
	assert.True(t, decimal.RequireFromString("100").Equal(out.MRCFinal.Decimal))
	assert.True(t, decimal.RequireFromString("20").Equal(out.Variacion.Decimal))

	_, err = uc.Update(context.Background(), user, 99, in)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Update(context.Background(), guest, 4, in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUseCase_Delete(t *testing.T) {
	repo := newFakeVentaRepo(seedVenta(1, "2024-01-01", "Ana"))
	uc := appventas.NewUseCase(repo, nil)

	assert.ErrorIs(t, uc.Delete(context.Background(), user, 1), domain.ErrForbidden, "user no puede eliminar")
	assert.NoError(t, uc.Delete(context.Background(), admin, 1))
	assert.ErrorIs(t, uc.Delete(context.Background(), admin, 1), domain.ErrNotFound)
}

func TestUseCase_GetByID(t *testing.T) {
	uc := appventas.NewUseCase(newFakeVentaRepo(seedVenta(1, "2024-01-01", "Ana")), nil)

	out, err := uc.GetByID(context.Background(), guest, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.NombreConsultor)

	_, err = uc.GetByID(context.Background(), guest, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUseCase_List(t *testing.T) {
	repo := newFakeVentaRepo(
		seedVenta(1, "2024-01-10", "Ana Pérez"),
		seedVenta(2, "2024-02-10", "Luis Gómez"),
		seedVenta(3, "2024-02-10", "MARIANA Ruiz"),
	)
	uc := appventas.NewUseCase(repo, nil)

	t.Run("completa por defecto, fecha e id descendentes", func(t *testing.T) {
		out, err := uc.List(context.Background(), guest, dto.VentaListQuery{})
		require.NoError(t, err)
		assert.Equal(t, dto.VistaCompleta, out.Vista)
		rows, ok := out.Ventas.([]dto.VentaResponse)
		require.True(t, ok)
		require.Len(t, rows, 3)
		assert.Equal(t, []int64{3, 2, 1}, []int64{rows[0].ID, rows[1].ID, rows[2].ID})
	})

	t.Run("filtro por consultor y vista compacta", func(t *testing.T) {
		out, err := uc.List(context.Background(), guest, dto.VentaListQuery{Consultor: "ana", Vista: "Compacta"})
		require.NoError(t, err)
		assert.Equal(t, dto.VistaCompacta, out.Vista)
		rows, ok := out.Ventas.([]dto.VentaCompactResponse)
		require.True(t, ok)
		require.Len(t, rows, 2)
		assert.Equal(t, int64(3), rows[0].ID)
		assert.Equal(t, int64(1), rows[1].ID)
	})

	t.Run("sin sesión", func(t *testing.T) {
		_, err := uc.List(context.Background(), anon, dto.VentaListQuery{})
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
