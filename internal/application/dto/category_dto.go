package dto

// CategoryRequest entrada para crear o reemplazar una categoría.
type CategoryRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Imagen      string `json:"imagen"`
	Activo      *bool  `json:"activo"` // solo se usa en PUT; nil = true en creación
}

// CategoryStateRequest entrada del PATCH /:id/estado: solo el flag activo.
type CategoryStateRequest struct {
	Activo bool `json:"activo"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Imagen      string `json:"imagen"`
	Activo      bool   `json:"activo"`
}
