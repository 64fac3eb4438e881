package dto

// MessageResponse cuerpo de confirmación para update/delete: {message}.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse cuerpo de éxito de creación: {message, data}.
type CreatedResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ErrorResponse cuerpo de error HTTP: {message, errors?}.
// Errors solo se incluye en fallos de validación de campos.
type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}
