package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest entrada para crear o reemplazar un producto.
// El PUT reemplaza todos los campos mutables (sin semántica de patch parcial).
type ProductRequest struct {
	Nombre         string           `json:"nombre"`
	Descripcion    string           `json:"descripcion"`
	Precio         decimal.Decimal  `json:"precio"`
	PrecioAnterior *decimal.Decimal `json:"precio_anterior"`
	Stock          int64            `json:"stock"`
	Imagen         string           `json:"imagen"`
	CategoriaID    string           `json:"categoria_id"`
	Destacado      bool             `json:"destacado"`
	Activo         *bool            `json:"activo"` // nil = true en creación
}

// ProductResponse salida de un producto, con el nombre de su categoría denormalizado.
type ProductResponse struct {
	ID              string           `json:"id"`
	Nombre          string           `json:"nombre"`
	Descripcion     string           `json:"descripcion"`
	Precio          decimal.Decimal  `json:"precio"`
	PrecioAnterior  *decimal.Decimal `json:"precio_anterior,omitempty"`
	Stock           int64            `json:"stock"`
	Imagen          string           `json:"imagen"`
	CategoriaID     string           `json:"categoria_id"`
	CategoriaNombre string           `json:"categoria_nombre"`
	Activo          bool             `json:"activo"`
	Destacado       bool             `json:"destacado"`
	FechaCreacion   time.Time        `json:"fecha_creacion"`
}

// UploadImageRequest entrada de la subida de imagen: cadena Base64 o URL legible por el host.
type UploadImageRequest struct {
	Imagen string `json:"imagen"`
}

// UploadImageResponse salida con la URL alojada.
type UploadImageResponse struct {
	Mensaje string `json:"mensaje"`
	URL     string `json:"url"`
}
