package usecase

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/policy"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
)

// UserUseCase administración de cuentas. Las operaciones destructivas sobre
// la propia cuenta del actor se rechazan.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// Create da de alta un usuario: hashea el password con bcrypt y asigna los
// permisos del rol si no vienen explícitos.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*entity.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if username == "" || email == "" || in.Password == "" || !validRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	perms := in.Permissions
	if len(perms) == 0 {
		perms = policy.PermissionsForRole(in.Role)
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		FullName:     strings.TrimSpace(in.FullName),
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Permissions:  perms,
		Status:       entity.UserActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update edita un usuario. El password solo se rehashea si viene uno nuevo.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !validRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if email != user.Email {
		existing, err := uc.userRepo.FindByEmail(email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	user.FullName = strings.TrimSpace(in.FullName)
	user.Email = email
	user.Role = in.Role
	if in.Permissions != nil {
		user.Permissions = in.Permissions
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete elimina una cuenta. Un usuario no puede eliminarse a sí mismo.
func (uc *UserUseCase) Delete(actorID, id string) error {
	if actorID == id {
		return domain.ErrSelfAction
	}
	return uc.userRepo.Delete(id)
}

// ToggleStatus alterna entre active e inactive. Un usuario no puede
// desactivar su propia cuenta.
func (uc *UserUseCase) ToggleStatus(actorID, id string) (*entity.User, error) {
	if actorID == id {
		return nil, domain.ErrSelfAction
	}
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Status == entity.UserActive {
		user.Status = entity.UserInactive
	} else {
		user.Status = entity.UserActive
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get devuelve un usuario por ID.
func (uc *UserUseCase) Get(id string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// List devuelve todas las cuentas.
func (uc *UserUseCase) List() ([]*entity.User, error) {
	return uc.userRepo.List()
}

func validRole(role string) bool {
	switch role {
	case entity.RoleAdmin, entity.RolePharmacist, entity.RoleAssistant, entity.RoleUser:
		return true
	}
	return false
}
