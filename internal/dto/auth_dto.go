package dto

import (
	"github.com/marcusnog/playground-backend/internal/permission"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// AuthUserResponse mirrors the session token claims: identity plus the expanded
// permission snapshot. Username and Apelido carry the same value; the frontend
// historically reads both.
type AuthUserResponse struct {
	ID         string                `json:"id"`
	Username   string                `json:"username"`
	Apelido    string                `json:"apelido"`
	Permissoes permission.Permissoes `json:"permissoes"`
	UsaCaixa   bool                  `json:"usaCaixa"`
	CaixaID    *string               `json:"caixaId"`
}

type LoginResponse struct {
	Token string           `json:"token"`
	User  AuthUserResponse `json:"user"`
}
