package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartaonline/carta-api/internal/domain"
)

// Caso: crear una categoría exige que la empresa exista.
func TestCategoryCreate_EmpresaInexistente(t *testing.T) {
	s := newStore()
	uc := newCategoryUC(s)

	_, err := uc.Create(context.Background(), validCategoryPayload(99))
	var ce domain.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "La empresa especificada no existe", ce.Message)
}

// Caso: el nombre es único dentro de la empresa ignorando mayúsculas, pero el
// mismo nombre vale en otra empresa.
func TestCategoryCreate_NombreUnicoPorEmpresa(t *testing.T) {
	s := newStore()
	uc := newCategoryUC(s)
	c1 := s.SeedCompany("Pizza Co", "a@a.com")
	c2 := s.SeedCompany("Burger Co", "b@b.com")

	out, err := uc.Create(context.Background(), validCategoryPayload(c1.ID))
	require.NoError(t, err)
	assert.Equal(t, "Pizza Co", out.CompanyName, "la respuesta se enriquece con el nombre de la empresa")

	// "drinks" choca con "Drinks" en la misma empresa
	in := validCategoryPayload(c1.ID)
	in.Name = "drinks"
	_, err = uc.Create(context.Background(), in)
	var ce domain.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Ya existe una categoría con este nombre en la empresa especificada", ce.Message)

	// el mismo nombre en otra empresa es válido
	_, err = uc.Create(context.Background(), validCategoryPayload(c2.ID))
	require.NoError(t, err)
}

// Caso: update excluye la propia fila del chequeo de unicidad y permite re-parentar.
func TestCategoryUpdate_ExcluyeAlPropioYReparenta(t *testing.T) {
	s := newStore()
	uc := newCategoryUC(s)
	c1 := s.SeedCompany("Pizza Co", "a@a.com")
	c2 := s.SeedCompany("Burger Co", "b@b.com")
	cat := s.SeedCategory(c1.ID, "Drinks")
	s.SeedCategory(c1.ID, "Food")

	// conservar su propio nombre: permitido
	in := validCategoryPayload(c1.ID)
	in.Name = "DRINKS"
	require.NoError(t, uc.Update(context.Background(), cat.ID, in))

	// tomar el nombre de otra categoría de la misma empresa: rechazado
	in.Name = "food"
	err := uc.Update(context.Background(), cat.ID, in)
	var ce domain.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Ya existe otra categoría con este nombre en la empresa especificada", ce.Message)

	// re-parentar a otra empresa existente: permitido
	in = validCategoryPayload(c2.ID)
	in.Name = "Drinks"
	require.NoError(t, uc.Update(context.Background(), cat.ID, in))

	got, err := uc.GetByID(context.Background(), cat.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, c2.ID, got.CompanyID)
	assert.Equal(t, "Burger Co", got.CompanyName)
}

// Caso: update hacia una empresa inexistente se rechaza como referencia inválida.
func TestCategoryUpdate_EmpresaDestinoInexistente(t *testing.T) {
	s := newStore()
	uc := newCategoryUC(s)
	c := s.SeedCompany("Pizza Co", "a@a.com")
	cat := s.SeedCategory(c.ID, "Drinks")

	err := uc.Update(context.Background(), cat.ID, validCategoryPayload(777))
	var ce domain.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "La empresa especificada no existe", ce.Message)
}

// Caso: no se puede eliminar una categoría con productos; sin productos sí.
func TestCategoryDelete_BloqueoPorProductos(t *testing.T) {
	s := newStore()
	uc := newCategoryUC(s)
	c := s.SeedCompany("Pizza Co", "a@a.com")
	cat := s.SeedCategory(c.ID, "Drinks")
	p := s.SeedProduct(c.ID, cat.ID, "Cola", "2.50")

	err := uc.Delete(context.Background(), cat.ID)
	var ce domain.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "No se puede eliminar la categoría porque tiene productos asociados. Elimine primero los productos.", ce.Message)

	// sin productos, el borrado procede
	require.NoError(t, s.ProductRepo().Delete(context.Background(), p.ID))
	require.NoError(t, uc.Delete(context.Background(), cat.ID))

	got, err := uc.GetByID(context.Background(), cat.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Caso: listar con y sin filtro de empresa.
func TestCategoryList_FiltroOpcional(t *testing.T) {
	s := newStore()
	uc := newCategoryUC(s)
	c1 := s.SeedCompany("Pizza Co", "a@a.com")
	c2 := s.SeedCompany("Burger Co", "b@b.com")
	s.SeedCategory(c1.ID, "Drinks")
	s.SeedCategory(c1.ID, "Food")
	s.SeedCategory(c2.ID, "Sides")

	all, err := uc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	only1, err := uc.List(context.Background(), c1.ID)
	require.NoError(t, err)
	require.Len(t, only1, 2)
	for _, cat := range only1 {
		assert.Equal(t, c1.ID, cat.CompanyID)
		assert.Equal(t, "Pizza Co", cat.CompanyName)
	}
}
