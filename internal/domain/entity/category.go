package entity

// Category representa una categoría del catálogo.
// Active oculta la categoría (y sus productos) de las lecturas públicas sin borrarla.
type Category struct {
	ID          string
	Name        string
	Description string
	Image       string
	Active      bool
}
