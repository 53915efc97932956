package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/marcusnog/playground-backend/internal/permission"
)

// Usuario stores back-office users with per-feature permission flags.
// The sixteen booleans are the denormalized storage shape of
// permission.Permissoes; Permissoes() is the only expansion point.
type Usuario struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NomeCompleto string    `gorm:"not null"`
	Apelido      string    `gorm:"uniqueIndex;not null"`
	Contato      string    `gorm:"not null;default:''"`
	Senha        string    `gorm:"not null"` // bcrypt hash
	Bloqueado    bool      `gorm:"not null;default:false"`
	// Protegido marks bootstrap identities that can never be deleted.
	Protegido bool `gorm:"not null;default:false"`

	// UsaCaixa binds the operator to a specific register.
	UsaCaixa bool       `gorm:"not null;default:false"`
	CaixaID  *uuid.UUID `gorm:"type:uuid"`

	Acompanhamento bool `gorm:"not null;default:false"`
	Lancamento     bool `gorm:"not null;default:false"`

	CaixaAbertura   bool `gorm:"not null;default:false"`
	CaixaFechamento bool `gorm:"not null;default:false"`
	CaixaSangria    bool `gorm:"not null;default:false"`
	CaixaSuprimento bool `gorm:"not null;default:false"`

	EstacionamentoCadastro        bool `gorm:"not null;default:false"`
	EstacionamentoCaixaAbertura   bool `gorm:"not null;default:false"`
	EstacionamentoCaixaFechamento bool `gorm:"not null;default:false"`
	EstacionamentoLancamento      bool `gorm:"not null;default:false"`
	EstacionamentoAcompanhamento  bool `gorm:"not null;default:false"`

	Relatorios bool `gorm:"not null;default:false"`

	ParametrosEmpresa         bool `gorm:"not null;default:false"`
	ParametrosFormasPagamento bool `gorm:"not null;default:false"`
	ParametrosBrinquedos      bool `gorm:"not null;default:false"`

	Clientes bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Permissoes expands the flat permission columns into the nested capability
// snapshot embedded in session tokens.
func (u *Usuario) Permissoes() permission.Permissoes {
	return permission.Permissoes{
		Acompanhamento: u.Acompanhamento,
		Lancamento:     u.Lancamento,
		Caixa: permission.CaixaPermissoes{
			Abertura:   u.CaixaAbertura,
			Fechamento: u.CaixaFechamento,
			Sangria:    u.CaixaSangria,
			Suprimento: u.CaixaSuprimento,
		},
		Estacionamento: permission.EstacionamentoPermissoes{
			Cadastro: u.EstacionamentoCadastro,
			Caixa: permission.EstacionamentoCaixaPermissoes{
				Abertura:   u.EstacionamentoCaixaAbertura,
				Fechamento: u.EstacionamentoCaixaFechamento,
			},
			Lancamento:     u.EstacionamentoLancamento,
			Acompanhamento: u.EstacionamentoAcompanhamento,
		},
		Relatorios: u.Relatorios,
		Parametros: permission.ParametrosPermissoes{
			Empresa:         u.ParametrosEmpresa,
			FormasPagamento: u.ParametrosFormasPagamento,
			Brinquedos:      u.ParametrosBrinquedos,
		},
		Clientes: u.Clientes,
	}
}
