package http_test

import (
	"bytes"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/xlsx"
)

func TestDashboard_TotalesYRanking(t *testing.T) {
	s := newTestServer(t, false)
	seedVenta(t, s, "Ana", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	seedVenta(t, s, "Ana", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	seedVenta(t, s, "Luis", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))

	resp := do(t, s.app, http.MethodGet, "/api/reportes?anio=2024", tokenForRole(t, entity.RoleGuest), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.DashboardResponse
	decode(t, resp, &out)
	require.NotNil(t, out.Filtros.Anio)
	assert.Equal(t, 2024, *out.Filtros.Anio)
	assert.Len(t, out.Ventas, 3)
	assert.True(t, out.Totales.FCVNuevo.Equal(decimal.NewFromInt(3600)))
	assert.True(t, out.Totales.MRCNuevo.Equal(decimal.NewFromInt(300)))
	require.Len(t, out.Ranking, 2)
	assert.Equal(t, "Ana", out.Ranking[0].Consultor)
	assert.Equal(t, 2, out.Ranking[0].Ventas)
}

func TestExportExcel_Adjunto(t *testing.T) {
	s := newTestServer(t, false)
	seedVenta(t, s, "Ana", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))

	resp := do(t, s.app, http.MethodGet, "/api/reportes/excel", tokenForRole(t, entity.RoleGuest), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, report.ExcelContentType, resp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="reporte_ventas.xlsx"`, resp.Header.Get("Content-Disposition"))

	content, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows(xlsx.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 2, "encabezado + una venta")
}

func TestExportPDF_Adjunto(t *testing.T) {
	s := newTestServer(t, false)

	resp := do(t, s.app, http.MethodGet, "/api/reportes/pdf?consultor=nadie", tokenForRole(t, entity.RoleGuest), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, report.PDFContentType, resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "reporte_ventas.pdf")

	content, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF-")))
}

func TestExport_SinSesion(t *testing.T) {
	s := newTestServer(t, false)

	resp := do(t, s.app, http.MethodGet, "/api/reportes/excel", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
