package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/cartaonline/carta-api/internal/application/usecase"
	apihttp "github.com/cartaonline/carta-api/internal/interfaces/http"
	"github.com/cartaonline/carta-api/internal/testutil"
)

// newTestApp arma una app Fiber con todas las rutas sobre el store en memoria:
// ejercita el stack completo de handlers, casos de uso y contrato de errores
// sin base de datos.
func newTestApp(s *testutil.Store) *fiber.App {
	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		CompanyUC:  usecase.NewCompanyUseCase(s.CompanyRepo(), s.CategoryRepo(), s.ProductRepo()),
		CategoryUC: usecase.NewCategoryUseCase(s.CategoryRepo(), s.CompanyRepo(), s.ProductRepo()),
		ProductUC:  usecase.NewProductUseCase(s.ProductRepo(), s.CategoryRepo(), s.CompanyRepo()),
		MenuUC:     usecase.NewMenuUseCase(s.CompanyRepo(), s.MenuRepo()),
	})
	return app
}

// doJSON ejecuta una petición con cuerpo JSON y decodifica la respuesta en out
// (out nil descarta el cuerpo). Devuelve el código de estado.
func doJSON(t *testing.T, app *fiber.App, method, target string, body any, out any) int {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func get(t *testing.T, app *fiber.App, target string, out any) int {
	t.Helper()
	return doJSON(t, app, http.MethodGet, target, nil, out)
}
