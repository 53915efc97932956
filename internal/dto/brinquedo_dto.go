package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CriarBrinquedoRequest struct {
	Nome           string           `json:"nome" validate:"required,min=1"`
	InicialMinutos *int             `json:"inicialMinutos" validate:"omitempty,gt=0"`
	ValorInicial   *decimal.Decimal `json:"valorInicial" validate:"required"`
	CicloMinutos   *int             `json:"cicloMinutos" validate:"omitempty,gt=0"`
	ValorCiclo     *decimal.Decimal `json:"valorCiclo"`
}

type AtualizarBrinquedoRequest struct {
	Nome           *string          `json:"nome" validate:"omitempty,min=1"`
	InicialMinutos *int             `json:"inicialMinutos" validate:"omitempty,gt=0"`
	ValorInicial   *decimal.Decimal `json:"valorInicial"`
	CicloMinutos   *int             `json:"cicloMinutos" validate:"omitempty,gt=0"`
	ValorCiclo     *decimal.Decimal `json:"valorCiclo"`
}

type BrinquedoResponse struct {
	ID             string          `json:"id"`
	Nome           string          `json:"nome"`
	InicialMinutos *int            `json:"inicialMinutos"`
	ValorInicial   decimal.Decimal `json:"valorInicial"`
	CicloMinutos   *int            `json:"cicloMinutos"`
	ValorCiclo     decimal.Decimal `json:"valorCiclo"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
