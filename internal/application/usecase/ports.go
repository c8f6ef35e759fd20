package usecase

import "context"

// ImageUploader puerto del servicio externo de alojamiento de imágenes.
// source acepta una cadena data URI Base64 o una URL pública legible por el host.
type ImageUploader interface {
	Upload(ctx context.Context, source string) (url string, err error)
}
