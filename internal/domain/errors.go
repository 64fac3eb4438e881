package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrDuplicate lo devuelven los adaptadores de persistencia cuando el store
	// rechaza la escritura por violación de índice único (autoridad final sobre
	// la unicidad case-insensitive).
	ErrDuplicate = errors.New("recurso duplicado")

	// ErrConflict lo devuelven los adaptadores cuando el store bloquea un DELETE
	// por claves foráneas dependientes.
	ErrConflict = errors.New("conflicto con el estado actual")
)

// ValidationError agrupa todos los mensajes de campos inválidos de un payload.
// Se responde como 400 con la lista completa, nunca fail-fast.
type ValidationError struct {
	Errors []string
}

func (e ValidationError) Error() string {
	return "datos de entrada inválidos"
}

// ConflictError describe un rechazo de negocio (unicidad, referencia inexistente,
// categoría de otra empresa, borrado bloqueado). Se responde como 400.
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string {
	return e.Message
}

// NotFoundError indica que el recurso pedido no existe. Se responde como 404.
type NotFoundError struct {
	Message string
}

func (e NotFoundError) Error() string {
	return e.Message
}
