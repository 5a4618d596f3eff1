package dto

// ErrorResponse cuerpo de error HTTP para los handlers de recursos.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse cuerpo genérico con mensaje (auth y confirmaciones).
type MessageResponse struct {
	Message string `json:"message"`
}
