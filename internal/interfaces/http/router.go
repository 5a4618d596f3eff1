package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-api/internal/application/auth"
	"github.com/jhoicas/store-api/internal/application/usecase"
	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	CartUC     *usecase.CartUseCase
	UserRepo   repository.UserRepository
	JWTSecret  string
}

// Router registra las rutas de la API. Las rutas protegidas llevan el
// AuthMiddleware y, donde aplica RBAC, RequireRole DESPUÉS del auth.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	protect := AuthMiddleware(deps.JWTSecret, deps.UserRepo)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Put("/reset-password/:token", authHandler.ResetPassword)
	authGroup.Get("/me", protect, authHandler.Me)
	authGroup.Post("/logout", protect, authHandler.Logout)
	authGroup.Put("/change-password", protect, authHandler.ChangePassword)

	// Products: lectura pública, mutaciones con RBAC.
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", protect, RequireRole(entity.RoleAdmin, entity.RoleVendor), productHandler.Create)
	// delete-all antes de :id para que no lo capture el parámetro.
	products.Delete("/delete-all", protect, RequireRole(entity.RoleAdmin), productHandler.DeleteAll)
	products.Put("/:id", protect, RequireRole(entity.RoleAdmin, entity.RoleVendor), productHandler.Update)
	products.Delete("/:id", protect, RequireRole(entity.RoleAdmin, entity.RoleVendor), productHandler.Delete)

	// Categories: lectura pública, crear/eliminar requieren bearer.
	categories := api.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", protect, categoryHandler.Create)
	categories.Delete("/clear", protect, categoryHandler.DeleteAll)
	categories.Delete("/:id", protect, categoryHandler.Delete)

	// Cart: todo protegido.
	cart := api.Group("/cart", protect)
	cartHandler := NewCartHandler(deps.CartUC)
	cart.Get("/", cartHandler.List)
	cart.Post("/", cartHandler.Add)
	cart.Delete("/clear", cartHandler.Clear)
	cart.Delete("/:id", cartHandler.Remove)
}
