package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Caixa lifecycle states.
const (
	CaixaAberto  = "aberto"
	CaixaFechado = "fechado"
)

// MovimentoCaixa kinds.
const (
	MovimentoSangria    = "sangria"    // cash out
	MovimentoSuprimento = "suprimento" // cash in
)

// Caixa represents a till. Status: "aberto" | "fechado".
// A caixa can reopen; movements survive closing.
type Caixa struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome         string          `gorm:"not null"`
	Data         string          `gorm:"type:varchar(10);not null"` // business date, YYYY-MM-DD
	ValorInicial decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Status       string          `gorm:"type:varchar(10);not null;default:'fechado';index"`
	// Bloqueado prevents the register from being opened or moved.
	Bloqueado bool `gorm:"not null;default:false"`

	Movimentos []MovimentoCaixa `gorm:"foreignKey:CaixaID"`
	Brinquedos []CaixaBrinquedo `gorm:"foreignKey:CaixaID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MovimentoCaixa is an immutable event in the register ledger.
// Tipo: "sangria" | "suprimento". Movements are only ever appended.
type MovimentoCaixa struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CaixaID  uuid.UUID       `gorm:"type:uuid;index;not null"`
	DataHora time.Time       `gorm:"not null"`
	Tipo     string          `gorm:"type:varchar(20);not null"`
	Valor    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Motivo   *string
}

// CaixaBrinquedo associates a register with the attractions it bills for.
// The set is replaced wholesale on caixa update, never diffed.
type CaixaBrinquedo struct {
	CaixaID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	BrinquedoID uuid.UUID `gorm:"type:uuid;primaryKey"`

	Brinquedo *Brinquedo `gorm:"foreignKey:BrinquedoID"`
}
