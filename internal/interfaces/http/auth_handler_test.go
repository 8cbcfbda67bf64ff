package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Ventas-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Ventas-api/pkg/jwt"
)

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.SessionCookie {
			return c
		}
	}
	return nil
}

func TestLogin_DejaCookieDeSesion(t *testing.T) {
	s := newTestServer(t, true)

	resp := do(t, s.app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "rlizarbe", Password: "141215"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.LoginResponse
	decode(t, resp, &out)
	assert.Equal(t, "Bienvenido, rlizarbe", out.Message)
	assert.Equal(t, entity.RoleUser, out.User.Role)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie, "el login deja la cookie de sesión")
	assert.Equal(t, out.Token, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	claims, err := pkgjwt.Parse(testJWTSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "rlizarbe", claims.Username)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	s := newTestServer(t, true)

	resp := do(t, s.app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "admin", Password: "mala"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, sessionCookie(resp))

	resp = do(t, s.app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Username: "", Password: ""})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestLogout_BorraCookie(t *testing.T) {
	s := newTestServer(t, false)

	resp := do(t, s.app, http.MethodPost, "/api/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
}

func TestCreateUser_SoloAdmin(t *testing.T) {
	s := newTestServer(t, false)
	in := dto.CreateUserRequest{Username: "maria", Password: "secreta", Role: entity.RoleUser}

	resp := do(t, s.app, http.MethodPost, "/api/users", tokenForRole(t, entity.RoleUser), in)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = do(t, s.app, http.MethodPost, "/api/users", "", in)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = do(t, s.app, http.MethodPost, "/api/users", tokenForRole(t, entity.RoleAdmin), in)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out dto.UserResponse
	decode(t, resp, &out)
	assert.Equal(t, "maria", out.Username)

	resp = do(t, s.app, http.MethodPost, "/api/users", tokenForRole(t, entity.RoleAdmin), in)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = do(t, s.app, http.MethodPost, "/api/users", tokenForRole(t, entity.RoleAdmin),
		dto.CreateUserRequest{Username: "pe", Password: "123", Role: "root"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var verr dto.ValidationErrorResponse
	decode(t, resp, &verr)
	assert.Contains(t, verr.Fields, "username")
	assert.Contains(t, verr.Fields, "password")
	assert.Equal(t, "debe ser uno de: admin user guest", verr.Fields["role"])
}

func TestRaiz_RedirigeSegunSesion(t *testing.T) {
	s := newTestServer(t, false)

	resp := do(t, s.app, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, apphttp.LoginPath, resp.Header.Get("Location"))

	resp = do(t, s.app, http.MethodGet, "/", tokenForRole(t, entity.RoleGuest), nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/api/ventas", resp.Header.Get("Location"))

	resp = do(t, s.app, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
