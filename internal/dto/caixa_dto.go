package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

// AbrirCaixaRequest serves both forms of opening: with ID it reopens an
// existing (closed, unlocked) register, overwriting data/valorInicial only
// when explicitly supplied; without ID all three fields are mandatory and a
// new register is created already open.
type AbrirCaixaRequest struct {
	ID           *string          `json:"id" validate:"omitempty,uuid"`
	Nome         string           `json:"nome"`
	Data         string           `json:"data"`
	ValorInicial *decimal.Decimal `json:"valorInicial"`
}

type FecharCaixaRequest struct {
	ID string `json:"id" validate:"required,uuid"`
}

// MovimentoCaixaRequest covers sangria and suprimento; the kind comes from the
// route.
type MovimentoCaixaRequest struct {
	Valor  decimal.Decimal `json:"valor"`
	Motivo *string         `json:"motivo"`
}

type CriarCaixaRequest struct {
	Nome         string   `json:"nome" validate:"required,min=1"`
	Data         string   `json:"data"`
	Bloqueado    bool     `json:"bloqueado"`
	BrinquedoIds []string `json:"brinquedoIds" validate:"omitempty,dive,uuid"`
}

// AtualizarCaixaRequest patches a closed register. BrinquedoIds, when present,
// replaces the whole association set.
type AtualizarCaixaRequest struct {
	Nome         *string   `json:"nome"`
	Data         *string   `json:"data"`
	Bloqueado    *bool     `json:"bloqueado"`
	BrinquedoIds *[]string `json:"brinquedoIds" validate:"omitempty,dive,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovimentoCaixaResponse struct {
	ID       string          `json:"id"`
	CaixaID  string          `json:"caixaId"`
	DataHora time.Time       `json:"dataHora"`
	Tipo     string          `json:"tipo"`
	Valor    decimal.Decimal `json:"valor"`
	Motivo   *string         `json:"motivo"`
}

type CaixaResponse struct {
	ID           string                   `json:"id"`
	Nome         string                   `json:"nome"`
	Data         string                   `json:"data"`
	ValorInicial decimal.Decimal          `json:"valorInicial"`
	Status       string                   `json:"status"`
	Bloqueado    bool                     `json:"bloqueado"`
	Movimentos   []MovimentoCaixaResponse `json:"movimentos"`
	Brinquedos   []BrinquedoResponse      `json:"brinquedos"`
	CreatedAt    time.Time                `json:"createdAt"`
	UpdatedAt    time.Time                `json:"updatedAt"`
}
