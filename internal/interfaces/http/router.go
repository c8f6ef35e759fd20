package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/tienda-virtual/internal/application/auth"
	"github.com/tu-usuario/tienda-virtual/internal/application/importer"
	"github.com/tu-usuario/tienda-virtual/internal/application/orders"
	"github.com/tu-usuario/tienda-virtual/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	UserUC     *usecase.UserUseCase
	OrderUC    *orders.OrderUseCase
	ImportUC   *importer.ImportUseCase
	JWTSecret  string
}

// Router registra las rutas de la API bajo /api.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	requireToken := RequireToken(deps.JWTSecret)
	requireAdmin := RequireAdmin()

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/registro", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Productos: lecturas públicas, mutaciones admin
	products := api.Group("/productos")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/subir-imagen", requireToken, requireAdmin, productHandler.UploadImage)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", requireToken, requireAdmin, productHandler.Create)
	products.Put("/:id", requireToken, requireAdmin, productHandler.Update)
	products.Delete("/:id", requireToken, requireAdmin, productHandler.Delete)

	// Categorías: lectura pública de activas, resto admin
	categories := api.Group("/categorias")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.ListActive)
	categories.Get("/admin/todas", requireToken, requireAdmin, categoryHandler.ListAll)
	categories.Post("/", requireToken, requireAdmin, categoryHandler.Create)
	categories.Put("/:id", requireToken, requireAdmin, categoryHandler.Update)
	categories.Patch("/:id/estado", requireToken, requireAdmin, categoryHandler.SetState)
	categories.Delete("/:id", requireToken, requireAdmin, categoryHandler.Delete)

	// Pedidos: creación abierta a invitados, consultas con token, gestión admin
	ordersGroup := api.Group("/pedidos")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", OptionalToken(deps.JWTSecret), orderHandler.Create)
	ordersGroup.Get("/mis-pedidos", requireToken, orderHandler.ListMine)
	ordersGroup.Get("/:id/recibo", requireToken, orderHandler.Receipt)
	ordersGroup.Get("/", requireToken, requireAdmin, orderHandler.ListAll)
	ordersGroup.Put("/:id/estado", requireToken, requireAdmin, orderHandler.UpdateStatus)
	ordersGroup.Delete("/:id", requireToken, requireAdmin, orderHandler.Delete)

	// Usuarios: perfil propio
	users := api.Group("/usuarios")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/perfil", requireToken, userHandler.GetProfile)
	users.Put("/perfil", requireToken, userHandler.UpdateProfile)

	// Importación de datos de prueba (admin)
	importGroup := api.Group("/importar")
	importHandler := NewImportHandler(deps.ImportUC)
	importGroup.Post("/productos-prueba", requireToken, requireAdmin, importHandler.Run)
}
