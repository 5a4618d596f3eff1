package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
	"github.com/jhoicas/store-api/pkg/jwt"
)

// LocalUser key del usuario autenticado en Fiber Locals.
const LocalUser = "user"

// AuthMiddleware valida el Bearer Token JWT, carga el usuario desde la DB y lo
// adjunta a c.Locals. Cualquier fallo (sin token, token malformado o expirado,
// usuario inexistente) responde 401 sin tocar el handler.
func AuthMiddleware(jwtSecret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "Not authorized, no token"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "Not authorized, no token"})
		}
		userID, _, err := jwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "Token invalid or expired"})
		}
		user, err := users.GetByID(userID)
		if err != nil || user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "User not found"})
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// GetUser devuelve el usuario del contexto (después del middleware de auth).
func GetUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}
