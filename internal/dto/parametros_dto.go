package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AtualizarParametrosRequest upserts the singleton; nil fields keep (or, on
// first write, default) their current values.
type AtualizarParametrosRequest struct {
	ValorInicialMinutos *int             `json:"valorInicialMinutos" validate:"omitempty,gt=0"`
	ValorInicialReais   *decimal.Decimal `json:"valorInicialReais"`
	ValorCicloMinutos   *int             `json:"valorCicloMinutos" validate:"omitempty,gt=0"`
	ValorCicloReais     *decimal.Decimal `json:"valorCicloReais"`

	EmpresaNome    *string `json:"empresaNome"`
	EmpresaCnpj    *string `json:"empresaCnpj"`
	EmpresaLogoUrl *string `json:"empresaLogoUrl"`
	PixChave       *string `json:"pixChave"`
	PixCidade      *string `json:"pixCidade"`
}

type ParametrosResponse struct {
	ID string `json:"id"`

	ValorInicialMinutos int             `json:"valorInicialMinutos"`
	ValorInicialReais   decimal.Decimal `json:"valorInicialReais"`
	ValorCicloMinutos   int             `json:"valorCicloMinutos"`
	ValorCicloReais     decimal.Decimal `json:"valorCicloReais"`

	EmpresaNome    string `json:"empresaNome"`
	EmpresaCnpj    string `json:"empresaCnpj"`
	EmpresaLogoUrl string `json:"empresaLogoUrl"`
	PixChave       string `json:"pixChave"`
	PixCidade      string `json:"pixCidade"`

	UpdatedAt time.Time `json:"updatedAt"`
}
