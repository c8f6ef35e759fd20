package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/tienda-virtual/internal/application/auth"
	"github.com/tu-usuario/tienda-virtual/internal/application/dto"
	"github.com/tu-usuario/tienda-virtual/internal/domain"
	"github.com/tu-usuario/tienda-virtual/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/tienda-virtual/pkg/jwt"
)

// fakeUserRepo repositorio de usuarios en memoria indexado por email.
type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) FindActiveByEmail(email string) (*entity.User, error) {
	u := r.byEmail[email]
	if u == nil || !u.Active {
		return nil, nil
	}
	return u, nil
}

func (r *fakeUserRepo) UpdateProfile(id, name, phone, address string) error { return nil }

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{Secret: "secreto-de-test", ExpMinutes: 60, Issuer: "test"}
}

func TestRegister_HasheaYFuerzaRolCliente(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	out, err := uc.Register(dto.RegisterRequest{
		Nombre:     "Ana Pérez",
		Email:      "ana@test.local",
		Contrasena: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCliente, out.Rol, "el rol de registro siempre es cliente")
	assert.True(t, out.Activo)

	stored := repo.byEmail["ana@test.local"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "la contraseña nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")),
		"el hash debe corresponder a la contraseña original")
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Nombre: "Ana", Email: "ana@test.local", Contrasena: "x"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Nombre: "Otra Ana", Email: "ana@test.local", Contrasena: "y"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_Exitoso(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Nombre: "Ana", Email: "ana@test.local", Contrasena: "secreta123"})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@test.local", Contrasena: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@test.local", out.Usuario.Email)

	// El token lleva id, email y rol
	userID, email, role, err := pkgjwt.Parse("secreto-de-test", out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.Usuario.ID, userID)
	assert.Equal(t, "ana@test.local", email)
	assert.Equal(t, entity.RoleCliente, role)
}

// Contraseña incorrecta sobre cuenta existente: 401, nunca 404.
func TestLogin_ContrasenaIncorrecta(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Register(dto.RegisterRequest{Nombre: "Ana", Email: "ana@test.local", Contrasena: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@test.local", Contrasena: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailDesconocidoOCuentaInactiva(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWTConfig())

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@test.local", Contrasena: "x"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "email desconocido")

	_, err = uc.Register(dto.RegisterRequest{Nombre: "Ana", Email: "ana@test.local", Contrasena: "secreta123"})
	require.NoError(t, err)
	repo.byEmail["ana@test.local"].Active = false

	_, err = uc.Login(dto.LoginRequest{Email: "ana@test.local", Contrasena: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "cuenta desactivada responde igual que credenciales malas")
}
