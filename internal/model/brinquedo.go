package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Brinquedo is a toy/attraction with its own pricing table. When the per-toy
// values are absent, billing falls back to the global Parametros.
type Brinquedo struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nome           string          `gorm:"not null"`
	InicialMinutos *int
	ValorInicial   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CicloMinutos   *int
	ValorCiclo     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
