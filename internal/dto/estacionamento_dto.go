package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Estacionamento (lot) DTOs ───────────────────────────────────────────────

type CriarEstacionamentoRequest struct {
	Nome    string           `json:"nome" validate:"required,min=1"`
	CaixaID string           `json:"caixaId" validate:"required,uuid"`
	Valor   *decimal.Decimal `json:"valor" validate:"required"`
}

type AtualizarEstacionamentoRequest struct {
	Nome    *string          `json:"nome" validate:"omitempty,min=1"`
	CaixaID *string          `json:"caixaId" validate:"omitempty,uuid"`
	Valor   *decimal.Decimal `json:"valor"`
}

type EstacionamentoResponse struct {
	ID        string          `json:"id"`
	Nome      string          `json:"nome"`
	Valor     decimal.Decimal `json:"valor"`
	CaixaID   string          `json:"caixaId"`
	Caixa     *CaixaResponse  `json:"caixa"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ─── Parking entry DTOs ──────────────────────────────────────────────────────

// CriarLancamentoEstacionamentoRequest: Valor is optional — absent or zero
// falls back to the lot's configured rate.
type CriarLancamentoEstacionamentoRequest struct {
	EstacionamentoID string           `json:"estacionamentoId" validate:"required,uuid"`
	Placa            string           `json:"placa" validate:"required,min=1"`
	Modelo           *string          `json:"modelo"`
	TelefoneContato  *string          `json:"telefoneContato"`
	DataHora         *time.Time       `json:"dataHora"`
	Valor            *decimal.Decimal `json:"valor"`
}

type LancamentoEstacionamentoResponse struct {
	ID              string          `json:"id"`
	DataHora        time.Time       `json:"dataHora"`
	Placa           string          `json:"placa"`
	Modelo          *string         `json:"modelo"`
	TelefoneContato *string         `json:"telefoneContato"`
	Valor           decimal.Decimal `json:"valor"`
	Status          string          `json:"status"`

	Estacionamento *EstacionamentoResponse `json:"estacionamento"`
	FormaPagamento *FormaPagamentoResponse `json:"formaPagamento"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
