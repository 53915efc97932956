package dto

import "time"

type CriarClienteRequest struct {
	NomeCompleto     string `json:"nomeCompleto" validate:"required,min=2"`
	DataNascimento   string `json:"dataNascimento" validate:"required"`
	NomePai          string `json:"nomePai"`
	NomeMae          string `json:"nomeMae"`
	TelefoneWhatsapp string `json:"telefoneWhatsapp" validate:"required,min=1"`
}

type AtualizarClienteRequest struct {
	NomeCompleto     *string `json:"nomeCompleto" validate:"omitempty,min=2"`
	DataNascimento   *string `json:"dataNascimento"`
	NomePai          *string `json:"nomePai"`
	NomeMae          *string `json:"nomeMae"`
	TelefoneWhatsapp *string `json:"telefoneWhatsapp" validate:"omitempty,min=1"`
}

type ClienteResponse struct {
	ID               string    `json:"id"`
	NomeCompleto     string    `json:"nomeCompleto"`
	DataNascimento   string    `json:"dataNascimento"`
	NomePai          string    `json:"nomePai"`
	NomeMae          string    `json:"nomeMae"`
	TelefoneWhatsapp string    `json:"telefoneWhatsapp"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
