package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
// El rol siempre queda en "cliente": no es auto-editable.
type RegisterRequest struct {
	Nombre     string `json:"nombre"`
	Email      string `json:"email"`
	Contrasena string `json:"contrasena"`
	Telefono   string `json:"telefono"`
	Direccion  string `json:"direccion"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email      string `json:"email"`
	Contrasena string `json:"contrasena"`
}

// UserResponse salida de un usuario (sin hash de contraseña).
type UserResponse struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	Email         string    `json:"email"`
	Telefono      string    `json:"telefono"`
	Direccion     string    `json:"direccion"`
	Rol           string    `json:"rol"`
	Activo        bool      `json:"activo"`
	FechaCreacion time.Time `json:"fecha_creacion"`
}

// LoginResponse salida del login: token JWT de 7 días + perfil.
type LoginResponse struct {
	Mensaje string       `json:"mensaje"`
	Token   string       `json:"token"`
	Usuario UserResponse `json:"usuario"`
}

// UpdateProfileRequest entrada para actualizar el propio perfil.
// Solo nombre, teléfono y dirección; ni email, ni rol, ni contraseña.
type UpdateProfileRequest struct {
	Nombre    string `json:"nombre"`
	Telefono  string `json:"telefono"`
	Direccion string `json:"direccion"`
}
