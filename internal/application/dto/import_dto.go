package dto

// ImportResult resumen del job de importación de datos de prueba.
// Importado vs omitido se decide por igualdad exacta de nombre.
type ImportResult struct {
	Mensaje             string `json:"mensaje"`
	ProductosImportados int    `json:"productosImportados"`
	ProductosOmitidos   int    `json:"productosOmitidos"`
	CategoriasCreadas   int    `json:"categoriasCreadas"`
}
