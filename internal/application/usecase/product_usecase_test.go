package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartaonline/carta-api/internal/domain"
)

// Caso: la cadena referencial se corta en el primer eslabón que falla.
func TestProductCreate_CadenaReferencial(t *testing.T) {
	s := newStore()
	uc := newProductUC(s)
	c := s.SeedCompany("Pizza Co", "a@a.com")
	cat := s.SeedCategory(c.ID, "Drinks")

	// categoría inexistente
	_, err := uc.Create(context.Background(), validProductPayload(c.ID, 999))
	var ce domain.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "La categoría especificada no existe", ce.Message)

	// empresa inexistente
	_, err = uc.Create(context.Background(), validProductPayload(999, cat.ID))
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "La empresa especificada no existe", ce.Message)
}

// Caso: ambos existen pero la categoría es de otra empresa: invariante cruzado.
func TestProductCreate_CategoriaDeOtraEmpresa(t *testing.T) {
	s := newStore()
	uc := newProductUC(s)
	c1 := s.SeedCompany("Pizza Co", "a@a.com")
	c2 := s.SeedCompany("Burger Co", "b@b.com")
	catDeC2 := s.SeedCategory(c2.ID, "Drinks")

	_, err := uc.Create(context.Background(), validProductPayload(c1.ID, catDeC2.ID))
	var ce domain.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "La categoría no pertenece a la empresa especificada", ce.Message)
}

// Caso: nombre único por categoría ignorando mayúsculas; el mismo nombre vale
// en otra categoría de la misma empresa.
func TestProductCreate_NombreUnicoPorCategoria(t *testing.T) {
	s := newStore()
	uc := newProductUC(s)
	c := s.SeedCompany("Pizza Co", "a@a.com")
	cat1 := s.SeedCategory(c.ID, "Drinks")
	cat2 := s.SeedCategory(c.ID, "Food")

	out, err := uc.Create(context.Background(), validProductPayload(c.ID, cat1.ID))
	require.NoError(t, err)
	assert.Equal(t, "Drinks", out.CategoryName)
	assert.True(t, out.Price.Equal(dec("2.50")))

	in := validProductPayload(c.ID, cat1.ID)
	in.Name = "COLA"
	_, err = uc.Create(context.Background(), in)
	var ce domain.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Ya existe un producto con este nombre en la categoría especificada", ce.Message)

	// misma empresa, otra categoría: permitido
	_, err = uc.Create(context.Background(), validProductPayload(c.ID, cat2.ID))
	require.NoError(t, err)
}

// Caso: la validación junta todos los errores del payload.
func TestProductCreate_ValidacionAcumulada(t *testing.T) {
	s := newStore()
	uc := newProductUC(s)

	in := validProductPayload(0, 0)
	in.Name = ""
	in.Price = dec("0")

	_, err := uc.Create(context.Background(), in)
	var ve domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Errors, "El nombre es obligatorio")
	assert.Contains(t, ve.Errors, "El precio debe estar entre 0.01 y 999999.99")
	assert.Contains(t, ve.Errors, "El ID de la categoría debe ser mayor a 0")
	assert.Contains(t, ve.Errors, "El ID de la empresa debe ser mayor a 0")
}

// Caso: update excluye la propia fila de la unicidad y reemplaza todos los
// campos, incluida la categoría destino.
func TestProductUpdate_ExcluyeAlPropioYMueveDeCategoria(t *testing.T) {
	s := newStore()
	uc := newProductUC(s)
	c := s.SeedCompany("Pizza Co", "a@a.com")
	cat1 := s.SeedCategory(c.ID, "Drinks")
	cat2 := s.SeedCategory(c.ID, "Food")
	p := s.SeedProduct(c.ID, cat1.ID, "Cola", "2.50")
	s.SeedProduct(c.ID, cat1.ID, "Fanta", "2.00")

	// conservar su propio nombre con otra capitalización: permitido
	in := validProductPayload(c.ID, cat1.ID)
	in.Name = "COLA"
	in.Price = dec("3.00")
	require.NoError(t, uc.Update(context.Background(), p.ID, in))

	got, err := uc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "COLA", got.Name)
	assert.True(t, got.Price.Equal(dec("3.00")))

	// tomar el nombre de otro producto de la misma categoría: rechazado
	in.Name = "fanta"
	err = uc.Update(context.Background(), p.ID, in)
	var ce domain.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Ya existe otro producto con este nombre en la categoría especificada", ce.Message)

	// mover a otra categoría de la misma empresa: permitido
	in.Name = "Cola"
	in.CategoryID = cat2.ID
	require.NoError(t, uc.Update(context.Background(), p.ID, in))

	got, err = uc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, cat2.ID, got.CategoryID)
	assert.Equal(t, "Food", got.CategoryName)
}

// Caso: update de un producto inexistente responde no encontrado.
func TestProductUpdate_NoEncontrado(t *testing.T) {
	s := newStore()
	uc := newProductUC(s)
	c := s.SeedCompany("Pizza Co", "a@a.com")
	cat := s.SeedCategory(c.ID, "Drinks")

	err := uc.Update(context.Background(), 555, validProductPayload(c.ID, cat.ID))
	var nf domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Producto no encontrado", nf.Message)
}

// Caso: el borrado de producto es incondicional una vez que existe.
func TestProductDelete_Incondicional(t *testing.T) {
	s := newStore()
	uc := newProductUC(s)
	c := s.SeedCompany("Pizza Co", "a@a.com")
	cat := s.SeedCategory(c.ID, "Drinks")
	p := s.SeedProduct(c.ID, cat.ID, "Cola", "2.50")

	require.NoError(t, uc.Delete(context.Background(), p.ID))

	got, err := uc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	err = uc.Delete(context.Background(), p.ID)
	var nf domain.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Producto no encontrado", nf.Message)
}

// Caso: listar con filtros combinables de empresa y categoría.
func TestProductList_Filtros(t *testing.T) {
	s := newStore()
	uc := newProductUC(s)
	c1 := s.SeedCompany("Pizza Co", "a@a.com")
	c2 := s.SeedCompany("Burger Co", "b@b.com")
	cat1 := s.SeedCategory(c1.ID, "Drinks")
	cat2 := s.SeedCategory(c1.ID, "Food")
	cat3 := s.SeedCategory(c2.ID, "Drinks")
	s.SeedProduct(c1.ID, cat1.ID, "Cola", "2.50")
	s.SeedProduct(c1.ID, cat2.ID, "Pizza", "10.00")
	s.SeedProduct(c2.ID, cat3.ID, "Fanta", "2.00")

	all, err := uc.List(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	deC1, err := uc.List(context.Background(), c1.ID, 0)
	require.NoError(t, err)
	assert.Len(t, deC1, 2)

	deCat1, err := uc.List(context.Background(), c1.ID, cat1.ID)
	require.NoError(t, err)
	require.Len(t, deCat1, 1)
	assert.Equal(t, "Cola", deCat1[0].Name)
	assert.Equal(t, "Drinks", deCat1[0].CategoryName)
}
