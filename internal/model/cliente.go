package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente is a registered guardian/family record.
type Cliente struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NomeCompleto     string    `gorm:"not null;index"`
	DataNascimento   string    `gorm:"type:varchar(10);not null"`
	NomePai          string    `gorm:"not null;default:''"`
	NomeMae          string    `gorm:"not null;default:''"`
	TelefoneWhatsapp string    `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
