// Package validate implementa las restricciones declarativas de los payloads:
// una lista ordenada de reglas (campo, predicado, mensaje) que se evalúan de
// forma independiente, acumulando todos los mensajes de error en lugar de
// cortar en el primero.
package validate

import (
	"net/mail"
	"net/url"
	"regexp"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Rule es una restricción sobre un campo. Valid devuelve true si se cumple.
type Rule struct {
	Field   string
	Message string
	Valid   func() bool
}

// Collect evalúa todas las reglas en orden y devuelve los mensajes de las que
// fallaron. Vacío o nil significa payload válido.
func Collect(rules ...Rule) []string {
	var errs []string
	for _, r := range rules {
		if !r.Valid() {
			errs = append(errs, r.Message)
		}
	}
	return errs
}

// Required exige un valor no vacío.
func Required(field, value, message string) Rule {
	return Rule{Field: field, Message: message, Valid: func() bool {
		return value != ""
	}}
}

// LengthBetween exige una longitud en runas dentro de [min, max].
// Un valor vacío también falla si min > 0; Required aporta su propio mensaje.
func LengthBetween(field, value string, min, max int, message string) Rule {
	return Rule{Field: field, Message: message, Valid: func() bool {
		n := utf8.RuneCountInString(value)
		return n >= min && n <= max
	}}
}

// MaxLength exige una longitud en runas de a lo sumo max. Vacío es válido.
func MaxLength(field, value string, max int, message string) Rule {
	return Rule{Field: field, Message: message, Valid: func() bool {
		return utf8.RuneCountInString(value) <= max
	}}
}

// Matches exige que el valor cumpla el patrón. Vacío es válido: la presencia
// la exige Required.
func Matches(field, value string, re *regexp.Regexp, message string) Rule {
	return Rule{Field: field, Message: message, Valid: func() bool {
		return value == "" || re.MatchString(value)
	}}
}

// Email exige forma de dirección de correo. Vacío falla (el campo email
// siempre es obligatorio donde se usa).
func Email(field, value, message string) Rule {
	return Rule{Field: field, Message: message, Valid: func() bool {
		addr, err := mail.ParseAddress(value)
		return err == nil && addr.Address == value
	}}
}

// URL exige forma de URL absoluta http/https/ftp. Vacío es válido (campo opcional).
func URL(field, value, message string) Rule {
	return Rule{Field: field, Message: message, Valid: func() bool {
		if value == "" {
			return true
		}
		u, err := url.Parse(value)
		if err != nil || u.Host == "" {
			return false
		}
		switch u.Scheme {
		case "http", "https", "ftp":
			return true
		}
		return false
	}}
}

// PositiveID exige un identificador mayor a cero.
func PositiveID(field string, id int64, message string) Rule {
	return Rule{Field: field, Message: message, Valid: func() bool {
		return id > 0
	}}
}

// DecimalBetween exige un valor dentro de [min, max] inclusive.
func DecimalBetween(field string, value, min, max decimal.Decimal, message string) Rule {
	return Rule{Field: field, Message: message, Valid: func() bool {
		return value.GreaterThanOrEqual(min) && value.LessThanOrEqual(max)
	}}
}
