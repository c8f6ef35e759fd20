package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/tu-usuario/tienda-virtual/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/tienda-virtual/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testEmail     = "test@tienda.local"
	testIssuer    = "tienda-virtual-test"
	testExpMin    = 60
)

// buildAdminApp construye una aplicación Fiber mínima con una ruta que exige
// token válido y rol admin, como las rutas de gestión de la API.
func buildAdminApp() *fiber.App {
	app := fiber.New()
	app.Get("/protegida",
		apphttp.RequireToken(testJWTSecret),
		apphttp.RequireAdmin(),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":  true,
				"rol": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenForRole genera un JWT con el rol indicado.
func tokenForRole(t *testing.T, role string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, role, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequireToken + RequireAdmin
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: admin con token válido → HTTP 200 y rol en la respuesta.
func TestRequireAdmin_AdminAccede(t *testing.T) {
	app := buildAdminApp()
	resp := doRequest(t, app, "/protegida", tokenForRole(t, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin debe poder acceder a ruta restringida a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, "admin", body["rol"], "el rol debe ser admin")
}

// Caso 2: cliente con token válido en ruta admin → HTTP 403.
func TestRequireAdmin_ClienteBloqueado(t *testing.T) {
	app := buildAdminApp()
	resp := doRequest(t, app, "/protegida", tokenForRole(t, "cliente"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"cliente no debe poder acceder a ruta restringida a admin")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "administrador",
		"el mensaje de error debe mencionar el rol requerido")
}

// Caso 3: sin header Authorization → HTTP 403, no 401.
func TestRequireToken_SinToken(t *testing.T) {
	app := buildAdminApp()
	resp := doRequest(t, app, "/protegida", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"sin token la respuesta es 403")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "No hay token")
}

// Caso 4: token corrupto → HTTP 401.
func TestRequireToken_TokenInvalido(t *testing.T) {
	app := buildAdminApp()
	resp := doRequest(t, app, "/protegida", "Bearer no-es-un-jwt")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"token inválido la respuesta es 401")
}

// Caso 5: token firmado con otro secreto → HTTP 401.
func TestRequireToken_FirmaIncorrecta(t *testing.T) {
	tok, err := pkgjwt.Generate("otro-secreto", testUserID, testEmail, "admin", testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildAdminApp()
	resp := doRequest(t, app, "/protegida", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token firmado con otro secreto no debe pasar")
}

// Caso 6: token expirado → HTTP 401.
func TestRequireToken_TokenExpirado(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testEmail, "admin", testIssuer, -10)
	require.NoError(t, err)

	app := buildAdminApp()
	resp := doRequest(t, app, "/protegida", "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token expirado no debe pasar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests OptionalToken
// ──────────────────────────────────────────────────────────────────────────────

func buildOptionalApp() *fiber.App {
	app := fiber.New()
	app.Get("/abierta",
		apphttp.OptionalToken(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"user_id": apphttp.GetUserID(c)})
		},
	)
	return app
}

// Con token válido los claims quedan disponibles.
func TestOptionalToken_ConToken(t *testing.T) {
	app := buildOptionalApp()
	resp := doRequest(t, app, "/abierta", tokenForRole(t, "cliente"))
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"], "el user_id del token debe quedar en locals")
}

// Sin token la petición continúa anónima, nunca se rechaza.
func TestOptionalToken_SinToken(t *testing.T) {
	app := buildOptionalApp()
	resp := doRequest(t, app, "/abierta", "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "", body["user_id"], "sin token no hay identidad en locals")
}

// Token corrupto en ruta opcional: continúa anónimo en lugar de responder 401.
func TestOptionalToken_TokenCorrupto(t *testing.T) {
	app := buildOptionalApp()
	resp := doRequest(t, app, "/abierta", "Bearer basura")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "", body["user_id"])
}
