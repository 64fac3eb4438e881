package validate_test

import (
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/cartaonline/carta-api/internal/application/validate"
)

// Collect acumula los mensajes en el orden de declaración de las reglas.
func TestCollect_AcumulaEnOrden(t *testing.T) {
	errs := validate.Collect(
		validate.Required("a", "", "primero"),
		validate.Required("b", "x", "no aparece"),
		validate.PositiveID("c", 0, "segundo"),
	)
	assert.Equal(t, []string{"primero", "segundo"}, errs)

	assert.Nil(t, validate.Collect(validate.Required("a", "x", "m")))
}

func TestLengthBetween_CuentaRunas(t *testing.T) {
	// "ñoño" son 4 runas aunque ocupe más bytes
	assert.Empty(t, validate.Collect(validate.LengthBetween("n", "ñoño", 2, 4, "m")))
	assert.NotEmpty(t, validate.Collect(validate.LengthBetween("n", "ñoñoñ", 2, 4, "m")))
	assert.NotEmpty(t, validate.Collect(validate.LengthBetween("n", "a", 2, 4, "m")))
	// vacío también incumple el mínimo; Required aporta su propio mensaje aparte
	assert.NotEmpty(t, validate.Collect(validate.LengthBetween("n", "", 2, 4, "m")))
}

func TestMaxLength_VacioValido(t *testing.T) {
	assert.Empty(t, validate.Collect(validate.MaxLength("d", "", 5, "m")))
	assert.Empty(t, validate.Collect(validate.MaxLength("d", "abcde", 5, "m")))
	assert.NotEmpty(t, validate.Collect(validate.MaxLength("d", "abcdef", 5, "m")))
}

func TestMatches_VacioValido(t *testing.T) {
	re := regexp.MustCompile(`^[\d\-\+\(\)\s]+$`)
	assert.Empty(t, validate.Collect(validate.Matches("p", "", re, "m")))
	assert.Empty(t, validate.Collect(validate.Matches("p", "+57 (1) 234-5678", re, "m")))
	assert.NotEmpty(t, validate.Collect(validate.Matches("p", "abc", re, "m")))
}

func TestEmail_VacioInvalido(t *testing.T) {
	assert.NotEmpty(t, validate.Collect(validate.Email("e", "", "m")))
	assert.Empty(t, validate.Collect(validate.Email("e", "a@a.com", "m")))
	assert.NotEmpty(t, validate.Collect(validate.Email("e", "no-es-email", "m")))
	// forma con display name no se acepta como dirección pelada
	assert.NotEmpty(t, validate.Collect(validate.Email("e", "Ana <a@a.com>", "m")))
}

func TestURL_EsquemasPermitidos(t *testing.T) {
	assert.Empty(t, validate.Collect(validate.URL("u", "", "m")))
	assert.Empty(t, validate.Collect(validate.URL("u", "https://cdn.example.com/logo.png", "m")))
	assert.Empty(t, validate.Collect(validate.URL("u", "ftp://files.example.com/logo.png", "m")))
	assert.NotEmpty(t, validate.Collect(validate.URL("u", "javascript:alert(1)", "m")))
	assert.NotEmpty(t, validate.Collect(validate.URL("u", "/relativa/logo.png", "m")))
	assert.NotEmpty(t, validate.Collect(validate.URL("u", "no es una url", "m")))
}

func TestDecimalBetween_Inclusivo(t *testing.T) {
	min := decimal.RequireFromString("0.01")
	max := decimal.RequireFromString("999999.99")

	assert.Empty(t, validate.Collect(validate.DecimalBetween("p", min, min, max, "m")))
	assert.Empty(t, validate.Collect(validate.DecimalBetween("p", max, min, max, "m")))
	assert.NotEmpty(t, validate.Collect(validate.DecimalBetween("p", decimal.Zero, min, max, "m")))
	assert.NotEmpty(t, validate.Collect(validate.DecimalBetween("p", decimal.RequireFromString("1000000"), min, max, "m")))
}
