package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Estacionamento is a parking lot. Valor is the default charge applied to
// entries created without an explicit value.
type Estacionamento struct {
	ID    uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome  string          `gorm:"not null"`
	Valor decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	CaixaID uuid.UUID `gorm:"type:uuid;not null"`
	Caixa   *Caixa    `gorm:"foreignKey:CaixaID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LancamentoEstacionamento is a parking billing entry with the same
// aberto → pago | cancelado lifecycle as Lancamento.
type LancamentoEstacionamento struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DataHora time.Time `gorm:"not null;index"`

	EstacionamentoID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Estacionamento   *Estacionamento `gorm:"foreignKey:EstacionamentoID"`

	Placa           string `gorm:"not null"`
	Modelo          *string
	TelefoneContato *string

	Valor  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status string          `gorm:"type:varchar(10);not null;default:'aberto';index"`

	FormaPagamentoID *uuid.UUID      `gorm:"type:uuid"`
	FormaPagamento   *FormaPagamento `gorm:"foreignKey:FormaPagamentoID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
