package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/domain"
	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
	"github.com/jhoicas/Farmacia-api/internal/domain/policy"
	"github.com/jhoicas/Farmacia-api/internal/domain/repository"
	"github.com/jhoicas/Farmacia-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera el JWT con rol y permisos efectivos
// y registra la hora del acceso.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != entity.UserActive {
		return nil, domain.ErrForbidden
	}

	perms := effectivePermissions(user)
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, perms, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}

	// Best effort: un fallo al guardar last_login no invalida el login.
	_ = uc.userRepo.UpdateLastLogin(user.ID, time.Now())

	resp := dto.ToUserResponse(user)
	resp.Permissions = perms
	return &dto.LoginResponse{Token: token, User: resp}, nil
}

// effectivePermissions une los permisos del rol con los asignados
// explícitamente al usuario, sin duplicados.
func effectivePermissions(user *entity.User) []string {
	base := policy.PermissionsForRole(user.Role)
	seen := make(map[string]bool, len(base)+len(user.Permissions))
	perms := make([]string, 0, len(base)+len(user.Permissions))
	for _, p := range append(base, user.Permissions...) {
		if !seen[p] {
			seen[p] = true
			perms = append(perms, p)
		}
	}
	return perms
}
