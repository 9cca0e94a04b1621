package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Empleos-api/internal/domain/entity"
	apphttp "github.com/jhoicas/Empleos-api/internal/interfaces/http"
	"github.com/jhoicas/Empleos-api/pkg/session"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testCookieName = "session_id"

// buildTestApp construye una aplicación Fiber mínima con:
//   - SessionMiddleware resolviendo la cookie contra un MemoryStore
//   - RequireRole (o RequireLogin si no se pasan roles)
//   - Un handler dummy que devuelve 200 si pasa los guards
func buildTestApp(store session.Store, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	guard := apphttp.RequireLogin()
	if len(allowedRoles) > 0 {
		guard = apphttp.RequireRole(allowedRoles...)
	}
	app.Get("/protected",
		apphttp.SessionMiddleware(store, testCookieName),
		guard,
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"user_id": apphttp.GetUserID(c),
				"role":    apphttp.GetRole(c),
			})
		},
	)
	return app
}

// sessionFor crea una sesión en el store y devuelve su token.
func sessionFor(t *testing.T, store session.Store, userID int64, name, role string) string {
	t.Helper()
	token := session.NewToken()
	require.NoError(t, store.Set(context.Background(), token, session.Session{UserID: userID, Name: name, Role: role}))
	return token
}

// doRequest lanza GET /protected con la cookie dada (vacía = sin cookie).
func doRequest(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireRole
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: el usuario tiene el rol requerido → debe pasar (HTTP 200).
func TestRequireRole_EmployerAccedeRutaEmployer(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	defer store.Close()
	app := buildTestApp(store, entity.RoleEmployer)

	token := sessionFor(t, store, 7, "Acme", entity.RoleEmployer)
	resp := doRequest(t, app, token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"EMPLOYER debe poder acceder a ruta restringida a EMPLOYER")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, entity.RoleEmployer, body["role"])
	assert.Equal(t, float64(7), body["user_id"], "el user_id de la sesión debe llegar a los locals")
}

// Caso 1b: ruta multi-rol → cualquiera de los roles listados pasa.
func TestRequireRole_UserAccedeRutaUserOAdmin(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	defer store.Close()
	app := buildTestApp(store, entity.RoleUser, entity.RoleAdmin)

	resp := doRequest(t, app, sessionFor(t, store, 1, "Ana", entity.RoleUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Caso 2: rol distinto al requerido → HTTP 403 FORBIDDEN.
func TestRequireRole_UserBloqueadoEnRutaEmployer(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	defer store.Close()
	app := buildTestApp(store, entity.RoleEmployer)

	resp := doRequest(t, app, sessionFor(t, store, 1, "Ana", entity.RoleUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"USER no debe poder acceder a ruta restringida a EMPLOYER")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 3: sin cookie → HTTP 401 NO_SESSION.
func TestRequireRole_SinCookie_Retorna401(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	defer store.Close()
	app := buildTestApp(store, entity.RoleEmployer)

	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NO_SESSION")
}

// Caso 4: token que no existe en el store → HTTP 401.
func TestRequireRole_TokenDesconocido_Retorna401(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	defer store.Close()
	app := buildTestApp(store, entity.RoleEmployer)

	resp := doRequest(t, app, session.NewToken())
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token huérfano debe tratarse como anónimo")
}

// Caso 5: sesión expirada → HTTP 401.
func TestRequireRole_SesionExpirada_Retorna401(t *testing.T) {
	store := session.NewMemoryStore(time.Millisecond)
	defer store.Close()
	app := buildTestApp(store, entity.RoleUser)

	token := sessionFor(t, store, 1, "Ana", entity.RoleUser)
	time.Sleep(5 * time.Millisecond)

	resp := doRequest(t, app, token)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireLogin
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireLogin_ConSesionPasa(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	defer store.Close()
	app := buildTestApp(store) // solo RequireLogin

	resp := doRequest(t, app, sessionFor(t, store, 3, "Luis", entity.RoleUser))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireLogin_SinSesion_Retorna401(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	defer store.Close()
	app := buildTestApp(store)

	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Las rutas anónimas no deben verse afectadas por una cookie huérfana.
func TestSessionMiddleware_RutaAnonimaConTokenHuerfano(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	defer store.Close()

	app := fiber.New()
	app.Get("/public", apphttp.SessionMiddleware(store, testCookieName), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
	})

	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: session.NewToken()})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]int64
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(0), body["user_id"], "sin sesión el user_id debe ser cero")
}
