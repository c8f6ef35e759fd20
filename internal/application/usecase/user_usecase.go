package usecase

import (
	"github.com/tu-usuario/tienda-virtual/internal/application/dto"
	"github.com/tu-usuario/tienda-virtual/internal/domain/entity"
	"github.com/tu-usuario/tienda-virtual/internal/domain/repository"
)

// UserUseCase perfil del usuario autenticado.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetProfile obtiene el perfil propio; nil, nil si la fila ya no existe.
func (uc *UserUseCase) GetProfile(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return entityToUserResponse(user), nil
}

// UpdateProfile actualiza nombre, teléfono y dirección del propio usuario.
// Email, rol y contraseña no se tocan por esta vía.
func (uc *UserUseCase) UpdateProfile(id string, in dto.UpdateProfileRequest) error {
	return uc.repo.UpdateProfile(id, in.Nombre, in.Telefono, in.Direccion)
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:            u.ID,
		Nombre:        u.Name,
		Email:         u.Email,
		Telefono:      u.Phone,
		Direccion:     u.Address,
		Rol:           u.Role,
		Activo:        u.Active,
		FechaCreacion: u.CreatedAt,
	}
}
