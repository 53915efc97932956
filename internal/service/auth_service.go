package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/marcusnog/playground-backend/internal/apierror"
	"github.com/marcusnog/playground-backend/internal/config"
	"github.com/marcusnog/playground-backend/internal/dto"
	"github.com/marcusnog/playground-backend/internal/permission"
	"github.com/marcusnog/playground-backend/internal/repository"
)

// JWTClaims is the session token payload: identity plus the permission
// snapshot taken at login. Capability checks read the snapshot, never the
// database, so edits to a user's flags only apply on the next login.
type JWTClaims struct {
	UserID     string                `json:"id"`
	Apelido    string                `json:"apelido"`
	Permissoes permission.Permissoes `json:"permissoes"`
	UsaCaixa   bool                  `json:"usaCaixa"`
	CaixaID    *string               `json:"caixaId"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*dto.AuthUserResponse, error)
}

type authService struct {
	repo repository.UsuarioRepository
	cfg  *config.Config
}

func NewAuthService(repo repository.UsuarioRepository, cfg *config.Config) AuthService {
	return &authService{repo: repo, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByLogin(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Unauthorized("credenciais inválidas")
		}
		return nil, err
	}

	// Blocked is checked before the password so a blocked operator always
	// sees the same 403, matching the frontend's handling.
	if user.Bloqueado {
		return nil, apierror.Forbidden("usuário bloqueado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthorized("credenciais inválidas")
	}

	if s.cfg.JWTSecret == "" {
		return nil, apierror.Configuration("JWT_SECRET não configurado")
	}

	authUser := toAuthUserResponse(user)

	now := time.Now()
	claims := JWTClaims{
		UserID:     authUser.ID,
		Apelido:    authUser.Apelido,
		Permissoes: authUser.Permissoes,
		UsaCaixa:   authUser.UsaCaixa,
		CaixaID:    authUser.CaixaID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{Token: token, User: authUser}, nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*dto.AuthUserResponse, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("usuário não encontrado")
		}
		return nil, err
	}
	resp := toAuthUserResponse(user)
	return &resp, nil
}
