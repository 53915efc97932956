package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Billing entry lifecycle states, shared by play-time and parking entries.
const (
	LancamentoAberto    = "aberto"
	LancamentoPago      = "pago"
	LancamentoCancelado = "cancelado"
)

// Lancamento is a play-time billing entry.
// Status: "aberto" → "pago" | "cancelado", terminal once it leaves aberto.
type Lancamento struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DataHora time.Time `gorm:"not null;index"`

	NomeCrianca         string `gorm:"not null"`
	NomeResponsavel     string `gorm:"not null"`
	TipoParente         *string
	WhatsappResponsavel string `gorm:"not null"`
	NumeroPulseira      *string

	TempoSolicitadoMin *int
	ValorCalculado     decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	BrinquedoID *uuid.UUID `gorm:"type:uuid"`
	Brinquedo   *Brinquedo `gorm:"foreignKey:BrinquedoID"`
	ClienteID   *uuid.UUID `gorm:"type:uuid"`
	Cliente     *Cliente   `gorm:"foreignKey:ClienteID"`

	Status string `gorm:"type:varchar(10);not null;default:'aberto';index"`

	// FormaPagamentoID is set exactly once, on payment.
	FormaPagamentoID *uuid.UUID      `gorm:"type:uuid"`
	FormaPagamento   *FormaPagamento `gorm:"foreignKey:FormaPagamentoID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
