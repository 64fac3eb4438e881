package http_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartaonline/carta-api/internal/application/dto"
	"github.com/cartaonline/carta-api/internal/testutil"
)

func seedMenu(s *testutil.Store) int64 {
	c := s.SeedCompany("Pizza Co", "a@a.com")
	postres := s.SeedCategory(c.ID, "postres")
	bebidas := s.SeedCategory(c.ID, "Bebidas")
	s.SeedProduct(c.ID, postres.ID, "flan", "4.00")
	s.SeedProduct(c.ID, postres.ID, "Brownie", "5.00")
	s.SeedProduct(c.ID, bebidas.ID, "Cola", "2.50")
	return c.ID
}

func TestMenuPorID_OrdenadaYAnidada(t *testing.T) {
	s := testutil.NewStore()
	id := seedMenu(s)
	app := newTestApp(s)

	var out dto.MenuResponse
	code := get(t, app, "/api/Menu/company/1", &out)

	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, id, out.Company.ID)
	assert.Equal(t, "Pizza Co", out.Company.Name)

	require.Len(t, out.Categories, 2)
	assert.Equal(t, "Bebidas", out.Categories[0].Name)
	assert.Equal(t, "postres", out.Categories[1].Name)

	require.Len(t, out.Categories[1].Products, 2)
	assert.Equal(t, "Brownie", out.Categories[1].Products[0].Name)
	assert.Equal(t, "flan", out.Categories[1].Products[1].Name)
}

func TestMenuPorID_EmpresaInexistente(t *testing.T) {
	app := newTestApp(testutil.NewStore())

	var out dto.ErrorResponse
	code := get(t, app, "/api/Menu/company/42", &out)

	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "Empresa no encontrada", out.Message)
}

func TestMenuPorNombre_CaseInsensitive(t *testing.T) {
	s := testutil.NewStore()
	seedMenu(s)
	app := newTestApp(s)

	var out dto.MenuResponse
	code := get(t, app, "/api/Menu/company-name/pizza%20co", &out)

	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Pizza Co", out.Company.Name)
	assert.Len(t, out.Categories, 2)
}

func TestMenuPorNombre_NombreConAcentos(t *testing.T) {
	s := testutil.NewStore()
	s.SeedCompany("Café Aroma", "cafe@aroma.com")
	app := newTestApp(s)

	var out dto.MenuResponse
	code := get(t, app, "/api/Menu/company-name/Caf%C3%A9%20Aroma", &out)

	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Café Aroma", out.Company.Name)
}

func TestMenuPorNombre_SinCoincidenciaExacta(t *testing.T) {
	s := testutil.NewStore()
	seedMenu(s)
	app := newTestApp(s)

	var out dto.ErrorResponse
	code := get(t, app, "/api/Menu/company-name/Pizza", &out)

	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "Empresa no encontrada", out.Message)
}
