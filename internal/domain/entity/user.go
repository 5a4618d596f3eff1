package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleVendor   = "vendor"
	RoleCustomer = "customer"
)

// ValidRole indica si el rol pertenece al conjunto cerrado admin/vendor/customer.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleVendor || role == RoleCustomer
}

// User representa un usuario de la tienda.
// ResetPasswordToken y ResetPasswordExpires van siempre juntos: ambos con valor
// durante un flujo de recuperación, ambos vacíos en cualquier otro momento.
type User struct {
	ID                   string
	Name                 string
	Email                string
	PasswordHash         string // bcrypt hash, nunca plano en dominio después de persistir
	Role                 string // admin, vendor, customer
	ResetPasswordToken   string
	ResetPasswordExpires time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
