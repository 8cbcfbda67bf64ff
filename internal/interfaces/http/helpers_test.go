package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/report"
	appventas "github.com/jhoicas/Ventas-api/internal/application/ventas"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/internal/domain/ventas"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/xlsx"
	apphttp "github.com/jhoicas/Ventas-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Ventas-api/pkg/jwt"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testUsername  = "rlizarbe"
	testIssuer    = "ventas-api-test"
	testExpMin    = 60
)

// ── Repositorios en memoria ──────────────────────────────────────────────────

type memVentaRepo struct {
	mu     sync.Mutex
	data   map[int64]*entity.Venta
	nextID int64
}

func newMemVentaRepo() *memVentaRepo {
	return &memVentaRepo{data: map[int64]*entity.Venta{}}
}

func (r *memVentaRepo) Create(_ context.Context, v *entity.Venta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ventas.Recompute(v)
	r.nextID++
	v.ID = r.nextID
	cp := *v
	r.data[v.ID] = &cp
	return nil
}

func (r *memVentaRepo) Update(_ context.Context, v *entity.Venta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[v.ID]; !ok {
		return domain.ErrNotFound
	}
	ventas.Recompute(v)
	cp := *v
	r.data[v.ID] = &cp
	return nil
}

func (r *memVentaRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.data, id)
	return nil
}

func (r *memVentaRepo) GetByID(_ context.Context, id int64) (*entity.Venta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data[id], nil
}

func (r *memVentaRepo) List(_ context.Context, c ventas.Criteria, order repository.VentaOrder) ([]*entity.Venta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]*entity.Venta, 0, len(r.data))
	for _, v := range r.data {
		all = append(all, v)
	}
	out := ventas.Filter(all, c)
	if order == repository.OrderReport {
		ventas.SortForReport(out)
	} else {
		ventas.SortForList(out)
	}
	return out, nil
}

type memUserRepo struct {
	mu     sync.Mutex
	byName map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byName: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[u.Username]; ok {
		return domain.ErrDuplicate
	}
	r.byName[u.Username] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byName {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byName[username], nil
}

// ── App de prueba ────────────────────────────────────────────────────────────

type testServer struct {
	app    *fiber.App
	ventas *memVentaRepo
	users  *memUserRepo
}

// newTestServer arma el router completo sobre repositorios en memoria.
// Con seed=true crea las cuentas iniciales (bcrypt, algo más lento).
func newTestServer(t *testing.T, seed bool) *testServer {
	t.Helper()
	ventaRepo := newMemVentaRepo()
	userRepo := newMemUserRepo()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}, nil)
	if seed {
		_, err := authUC.SeedDefaultUsers(context.Background(), auth.DefaultSeeds("admin123", "141215", "guest"))
		require.NoError(t, err)
	}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:    authUC,
		VentasUC:  appventas.NewUseCase(ventaRepo, nil),
		ReportUC:  report.NewUseCase(ventaRepo, xlsx.NewExcelizeReportGenerator(), pdf.NewMarotoReportGenerator(), nil),
		JWTSecret: testJWTSecret,
		Session:   apphttp.SessionConfig{ExpMinutes: testExpMin},
	})
	return &testServer{app: app, ventas: ventaRepo, users: userRepo}
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testUsername, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return tok
}

// do lanza la petición; token vacío = sin sesión. body se serializa como JSON si no es nil.
func do(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
}
