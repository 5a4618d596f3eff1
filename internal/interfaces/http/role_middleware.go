package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-api/internal/application/dto"
)

// RequireRole devuelve un middleware Fiber que restringe la ruta a los roles
// indicados. Debe usarse DESPUÉS de AuthMiddleware (necesita el usuario en Locals).
//
// Comportamiento:
//   - 401 Unauthorized → no hay usuario adjunto (orden de middlewares roto).
//   - 403 Forbidden    → el rol del usuario no está en la lista permitida.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "Not authenticated"})
		}
		if _, ok := allowed[user.Role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.MessageResponse{
				Message: "Access denied. Role '" + user.Role + "' is not allowed",
			})
		}
		return c.Next()
	}
}
