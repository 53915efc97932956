package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParametrosID is the fixed primary key of the process-wide singleton row.
const ParametrosID = "global"

// Default pricing applied when the singleton is lazily created on first read.
var (
	DefaultValorInicialMinutos = 30
	DefaultValorInicialReais   = decimal.NewFromInt(20)
	DefaultValorCicloMinutos   = 15
	DefaultValorCicloReais     = decimal.NewFromInt(10)
)

// Parametros is the global business configuration singleton.
type Parametros struct {
	ID string `gorm:"primaryKey;type:varchar(20)"`

	ValorInicialMinutos int             `gorm:"not null"`
	ValorInicialReais   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	ValorCicloMinutos   int             `gorm:"not null"`
	ValorCicloReais     decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	EmpresaNome    string `gorm:"not null;default:''"`
	EmpresaCnpj    string `gorm:"not null;default:''"`
	EmpresaLogoUrl string `gorm:"not null;default:''"`
	PixChave       string `gorm:"not null;default:''"`
	PixCidade      string `gorm:"not null;default:''"`

	UpdatedAt time.Time
}

// DefaultParametros is the row created on first read when none exists.
func DefaultParametros() *Parametros {
	return &Parametros{
		ID:                  ParametrosID,
		ValorInicialMinutos: DefaultValorInicialMinutos,
		ValorInicialReais:   DefaultValorInicialReais,
		ValorCicloMinutos:   DefaultValorCicloMinutos,
		ValorCicloReais:     DefaultValorCicloReais,
		EmpresaNome:         "Parque Infantil",
		EmpresaCnpj:         "00.000.000/0000-00",
		PixCidade:           "Sua Cidade",
	}
}
