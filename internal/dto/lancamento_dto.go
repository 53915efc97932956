package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarLancamentoRequest struct {
	DataHora            *time.Time       `json:"dataHora"`
	NomeCrianca         string           `json:"nomeCrianca" validate:"required,min=1"`
	NomeResponsavel     string           `json:"nomeResponsavel" validate:"required,min=1"`
	TipoParente         *string          `json:"tipoParente"`
	WhatsappResponsavel string           `json:"whatsappResponsavel" validate:"required,min=1"`
	NumeroPulseira      *string          `json:"numeroPulseira"`
	TempoSolicitadoMin  *int             `json:"tempoSolicitadoMin" validate:"omitempty,gt=0"`
	BrinquedoID         *string          `json:"brinquedoId" validate:"omitempty,uuid"`
	ClienteID           *string          `json:"clienteId" validate:"omitempty,uuid"`
	ValorCalculado      *decimal.Decimal `json:"valorCalculado" validate:"required"`
}

// AtualizarLancamentoRequest patches an entry while it is still open.
// nil = leave untouched; set = overwrite.
type AtualizarLancamentoRequest struct {
	DataHora            *time.Time       `json:"dataHora"`
	NomeCrianca         *string          `json:"nomeCrianca" validate:"omitempty,min=1"`
	NomeResponsavel     *string          `json:"nomeResponsavel" validate:"omitempty,min=1"`
	TipoParente         *string          `json:"tipoParente"`
	WhatsappResponsavel *string          `json:"whatsappResponsavel" validate:"omitempty,min=1"`
	NumeroPulseira      *string          `json:"numeroPulseira"`
	TempoSolicitadoMin  *int             `json:"tempoSolicitadoMin" validate:"omitempty,gt=0"`
	BrinquedoID         *string          `json:"brinquedoId" validate:"omitempty,uuid"`
	ClienteID           *string          `json:"clienteId" validate:"omitempty,uuid"`
	ValorCalculado      *decimal.Decimal `json:"valorCalculado"`
}

type PagarLancamentoRequest struct {
	FormaPagamentoID string `json:"formaPagamentoId" validate:"required,uuid"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type LancamentoResponse struct {
	ID                  string          `json:"id"`
	DataHora            time.Time       `json:"dataHora"`
	NomeCrianca         string          `json:"nomeCrianca"`
	NomeResponsavel     string          `json:"nomeResponsavel"`
	TipoParente         *string         `json:"tipoParente"`
	WhatsappResponsavel string          `json:"whatsappResponsavel"`
	NumeroPulseira      *string         `json:"numeroPulseira"`
	TempoSolicitadoMin  *int            `json:"tempoSolicitadoMin"`
	ValorCalculado      decimal.Decimal `json:"valorCalculado"`
	Status              string          `json:"status"`

	Brinquedo      *BrinquedoResponse      `json:"brinquedo"`
	Cliente        *ClienteResponse        `json:"cliente"`
	FormaPagamento *FormaPagamentoResponse `json:"formaPagamento"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
