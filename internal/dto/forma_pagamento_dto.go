package dto

import "time"

type CriarFormaPagamentoRequest struct {
	Descricao string  `json:"descricao" validate:"required,min=1"`
	Status    string  `json:"status" validate:"required,oneof=ativo inativo"`
	PixChave  *string `json:"pixChave"`
	PixConta  *string `json:"pixConta"`
}

type AtualizarFormaPagamentoRequest struct {
	Descricao *string `json:"descricao" validate:"omitempty,min=1"`
	Status    *string `json:"status" validate:"omitempty,oneof=ativo inativo"`
	PixChave  *string `json:"pixChave"`
	PixConta  *string `json:"pixConta"`
}

type FormaPagamentoResponse struct {
	ID        string    `json:"id"`
	Descricao string    `json:"descricao"`
	Status    string    `json:"status"`
	PixChave  *string   `json:"pixChave"`
	PixConta  *string   `json:"pixConta"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
