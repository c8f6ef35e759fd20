package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/tienda-virtual/internal/application/dto"
	"github.com/tu-usuario/tienda-virtual/internal/domain"
	"github.com/tu-usuario/tienda-virtual/internal/domain/entity"
	"github.com/tu-usuario/tienda-virtual/internal/domain/repository"
	"github.com/tu-usuario/tienda-virtual/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un cliente: hashea la contraseña con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya existe (activo o no).
// El rol queda siempre en "cliente"; nunca viene del request.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, _ := uc.userRepo.FindByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Contrasena), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
		Phone:        in.Telefono,
		Address:      in.Direccion,
		Role:         entity.RoleCliente,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login busca el usuario activo por email y verifica la contraseña contra el hash.
// Email desconocido, cuenta inactiva o contraseña incorrecta devuelven todos
// ErrUnauthorized: la respuesta no distingue el motivo.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindActiveByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Contrasena)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Mensaje: "Login exitoso",
		Token:   token,
		Usuario: *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
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
