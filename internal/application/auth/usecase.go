package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/pkg/jwt"
	"github.com/jhoicas/Ventas-api/pkg/logger"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Seed cuenta que debe existir al arrancar.
type Seed struct {
	Username string
	Password string
	Role     string
}

// DefaultSeeds cuentas iniciales: admin, rlizarbe (user) e invitado (guest).
func DefaultSeeds(adminPassword, userPassword, guestPassword string) []Seed {
	return []Seed{
		{Username: "admin", Password: adminPassword, Role: entity.RoleAdmin},
		{Username: "rlizarbe", Password: userPassword, Role: entity.RoleUser},
		{Username: "invitado", Password: guestPassword, Role: entity.RoleGuest},
	}
}

// AuthUseCase casos de uso de autenticación: login, alta de usuarios y cuentas iniciales.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log.Component("auth")}
}

// Login verifica username/password, genera JWT y retorna token + usuario.
// Usuario inexistente y password incorrecta devuelven el mismo ErrUnauthorized.
// La password se compara tal cual, igual que se hashea en CreateUser.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("login")
	return &dto.LoginResponse{
		Token:   token,
		User:    *toUserResponse(user),
		Message: "Bienvenido, " + user.Username,
	}, nil
}

// CreateUser crea un usuario: hashea password con bcrypt y persiste.
// Username repetido -> domain.ErrDuplicate; rol desconocido -> domain.ErrInvalidInput.
func (uc *AuthUseCase) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if !entity.IsValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", user.Username).Str("role", user.Role).Msg("usuario creado")
	return toUserResponse(user), nil
}

// SeedDefaultUsers crea las cuentas de seeds que aún no existen. Es idempotente:
// una cuenta existente no se toca (ni su password ni su rol). Devuelve cuántas creó.
func (uc *AuthUseCase) SeedDefaultUsers(ctx context.Context, seeds []Seed) (int, error) {
	created := 0
	for _, s := range seeds {
		existing, err := uc.userRepo.GetByUsername(ctx, s.Username)
		if err != nil {
			return created, err
		}
		if existing != nil {
			continue
		}
		_, err = uc.CreateUser(ctx, dto.CreateUserRequest{Username: s.Username, Password: s.Password, Role: s.Role})
		if errors.Is(err, domain.ErrDuplicate) {
			continue
		}
		if err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
