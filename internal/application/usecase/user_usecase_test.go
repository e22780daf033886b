package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/policy"
)

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	m := make(map[string]*entity.User, len(users))
	for _, u := range users {
		copia := *u
		m[u.ID] = &copia
	}
	return &fakeUserRepo{users: m}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	copia := *u
	r.users[u.ID] = &copia
	return nil
}

// GetByID replica el contrato del repo real: nil, nil si no existe.
func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copia := *u
	return &copia, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copia := *u
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	copia := *u
	r.users[u.ID] = &copia
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) UpdateLastLogin(id string, at time.Time) error { return nil }

const (
	adminID = "aaaaaaaa-0000-0000-0000-000000000001"
	otherID = "aaaaaaaa-0000-0000-0000-000000000002"
)

func adminUser() *entity.User {
	return &entity.User{
		ID:       adminID,
		Username: "admin",
		Email:    "admin@farmacia.local",
		Role:     entity.RoleAdmin,
		Status:   entity.UserActive,
	}
}

func TestCreateUser_HasheaPasswordYAsignaPermisosDelRol(t *testing.T) {
	repo := newFakeUserRepo()
	uc := usecase.NewUserUseCase(repo)

	user, err := uc.Create(dto.CreateUserRequest{
		Username: "maria",
		FullName: "María Pérez",
		Email:    "Maria@Farmacia.Local",
		Password: "secreta123",
		Role:     entity.RolePharmacist,
	})
	require.NoError(t, err)

	assert.Equal(t, "maria@farmacia.local", user.Email, "el email se normaliza a minúsculas")
	assert.NotEqual(t, "secreta123", user.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secreta123")))
	assert.ElementsMatch(t, policy.PermissionsForRole(entity.RolePharmacist), user.Permissions,
		"sin permisos explícitos se asignan los del rol")
	assert.Equal(t, entity.UserActive, user.Status)
}

func TestCreateUser_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo(adminUser())
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.Create(dto.CreateUserRequest{
		Username: "otro",
		FullName: "Otro",
		Email:    "admin@farmacia.local",
		Password: "secreta123",
		Role:     entity.RoleAssistant,
	})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestCreateUser_RolInvalido(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())
	_, err := uc.Create(dto.CreateUserRequest{
		Username: "x",
		FullName: "X",
		Email:    "x@farmacia.local",
		Password: "secreta123",
		Role:     "superuser",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDeleteUser_NoPuedeEliminarseASiMismo(t *testing.T) {
	repo := newFakeUserRepo(adminUser())
	uc := usecase.NewUserUseCase(repo)

	err := uc.Delete(adminID, adminID)
	require.ErrorIs(t, err, domain.ErrSelfAction)

	// La cuenta sigue existiendo
	u, err := repo.GetByID(adminID)
	require.NoError(t, err)
	require.NotNil(t, u)
}

func TestDeleteUser_OtraCuentaSiSePuede(t *testing.T) {
	other := adminUser()
	other.ID = otherID
	other.Username = "otro"
	other.Email = "otro@farmacia.local"
	repo := newFakeUserRepo(adminUser(), other)
	uc := usecase.NewUserUseCase(repo)

	require.NoError(t, uc.Delete(adminID, otherID))
	u, err := repo.GetByID(otherID)
	require.NoError(t, err)
	assert.Nil(t, u, "la cuenta ya no existe")
}

func TestUpdateUser_CuentaInexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.Update("no-existe", dto.UpdateUserRequest{
		Email: "nadie@farmacia.local",
		Role:  entity.RoleAssistant,
	})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestToggleStatus_CuentaInexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(adminUser()))

	_, err := uc.ToggleStatus(adminID, "no-existe")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestGetUser_CuentaInexistente(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo())

	_, err := uc.Get("no-existe")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestToggleStatus_NoPuedeDesactivarseASiMismo(t *testing.T) {
	repo := newFakeUserRepo(adminUser())
	uc := usecase.NewUserUseCase(repo)

	_, err := uc.ToggleStatus(adminID, adminID)
	require.ErrorIs(t, err, domain.ErrSelfAction)
}

func TestToggleStatus_Alterna(t *testing.T) {
	other := adminUser()
	other.ID = otherID
	other.Email = "otro@farmacia.local"
	repo := newFakeUserRepo(adminUser(), other)
	uc := usecase.NewUserUseCase(repo)

	user, err := uc.ToggleStatus(adminID, otherID)
	require.NoError(t, err)
	assert.Equal(t, entity.UserInactive, user.Status)

	user, err = uc.ToggleStatus(adminID, otherID)
	require.NoError(t, err)
	assert.Equal(t, entity.UserActive, user.Status)
}

func TestUpdateUser_PasswordSoloSiViene(t *testing.T) {
	u := adminUser()
	u.PasswordHash = "$2a$10$hashoriginal"
	repo := newFakeUserRepo(u)
	uc := usecase.NewUserUseCase(repo)

	updated, err := uc.Update(adminID, dto.UpdateUserRequest{
		FullName: "Administrador General",
		Email:    "admin@farmacia.local",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "$2a$10$hashoriginal", updated.PasswordHash, "sin password nuevo el hash no cambia")
	assert.Equal(t, "Administrador General", updated.FullName)

	updated, err = uc.Update(adminID, dto.UpdateUserRequest{
		FullName: "Administrador General",
		Email:    "admin@farmacia.local",
		Password: "nueva-clave-123",
		Role:     entity.RoleAdmin,
	})
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("nueva-clave-123")))
}
