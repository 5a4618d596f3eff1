package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/store-api/internal/application/auth"
	"github.com/jhoicas/store-api/internal/application/dto"
	"github.com/jhoicas/store-api/internal/domain"
)

// AuthHandler maneja registro, login y ciclo de password.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password, role?"
// @Success      201   {object}  dto.RegisterResponse
// @Failure      400   {object}  dto.MessageResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: err.Error()})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		if err == domain.ErrEmailAlreadyExists {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "User already exists"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid role"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Registration failed"})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.MessageResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: err.Error()})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Login failed"})
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.MessageResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "Not authenticated"})
	}
	out, err := h.uc.Profile(user.ID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Failed to get profile"})
	}
	return c.JSON(out)
}

// ChangePassword godoc
// @Summary      Cambiar password del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "currentPassword, newPassword"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.MessageResponse
// @Failure      404   {object}  dto.MessageResponse
// @Router       /api/auth/change-password [put]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	user := GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.MessageResponse{Message: "Not authenticated"})
	}
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: err.Error()})
	}
	if err := h.uc.ChangePassword(user.ID, in); err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Current password is incorrect"})
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "User not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Failed to change password"})
		}
	}
	return c.JSON(dto.MessageResponse{Message: "Password changed successfully"})
}

// ForgotPassword godoc
// @Summary      Generar token de reseteo de password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ForgotPasswordRequest  true  "email"
// @Success      200   {object}  dto.ForgotPasswordResponse
// @Failure      404   {object}  dto.MessageResponse
// @Router       /api/auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in dto.ForgotPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: err.Error()})
	}
	out, err := h.uc.ForgotPassword(in)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.MessageResponse{Message: "User not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Failed to generate reset token"})
	}
	return c.JSON(out)
}

// ResetPassword godoc
// @Summary      Resetear password con token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token  path  string  true  "Token de reseteo"
// @Param        body   body  dto.ResetPasswordRequest  true  "newPassword"
// @Success      200    {object}  dto.MessageResponse
// @Failure      400    {object}  dto.MessageResponse
// @Router       /api/auth/reset-password/{token} [put]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	token := c.Params("token")
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid request body"})
	}
	if err := validateStruct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: err.Error()})
	}
	if err := h.uc.ResetPassword(token, in); err != nil {
		if err == domain.ErrInvalidResetToken {
			return c.Status(fiber.StatusBadRequest).JSON(dto.MessageResponse{Message: "Invalid or expired token"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.MessageResponse{Message: "Failed to reset password"})
	}
	return c.JSON(dto.MessageResponse{Message: "Password reset successfully"})
}

// Logout godoc
// @Summary      Cerrar sesión (stateless)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// El cliente es responsable de descartar el token; no hay estado de sesión.
	return c.JSON(dto.MessageResponse{Message: "Logged out successfully"})
}
