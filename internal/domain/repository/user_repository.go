package repository

import "github.com/jhoicas/store-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// GetByResetToken busca el usuario cuyo token de reseteo vigente (expiración
	// en el futuro) coincide. Devuelve nil, nil si no hay coincidencia.
	GetByResetToken(token string) (*entity.User, error)
	Update(user *entity.User) error
}
