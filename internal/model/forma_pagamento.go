package model

import (
	"time"

	"github.com/google/uuid"
)

// FormaPagamento is a payment method. Status: "ativo" | "inativo".
type FormaPagamento struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Descricao string    `gorm:"uniqueIndex;not null"`
	Status    string    `gorm:"type:varchar(10);not null;default:'ativo'"`
	PixChave  *string
	PixConta  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
