package dto

// ErrorResponse cuerpo de error HTTP estándar de la API: {mensaje, error?}.
type ErrorResponse struct {
	Mensaje string `json:"mensaje"`
	Error   string `json:"error,omitempty"`
}

// MessageResponse respuesta de éxito que solo lleva un mensaje.
type MessageResponse struct {
	Mensaje string `json:"mensaje"`
}

// CreatedResponse respuesta de creación con el id del nuevo recurso.
type CreatedResponse struct {
	Mensaje string `json:"mensaje"`
	ID      string `json:"id"`
}
