package dto

import "time"

// PermissaoFlags carries the sixteen flat permission columns as they are
// stored and edited by the administration screens.
type PermissaoFlags struct {
	Acompanhamento bool `json:"acompanhamento"`
	Lancamento     bool `json:"lancamento"`

	CaixaAbertura   bool `json:"caixaAbertura"`
	CaixaFechamento bool `json:"caixaFechamento"`
	CaixaSangria    bool `json:"caixaSangria"`
	CaixaSuprimento bool `json:"caixaSuprimento"`

	EstacionamentoCadastro        bool `json:"estacionamentoCadastro"`
	EstacionamentoCaixaAbertura   bool `json:"estacionamentoCaixaAbertura"`
	EstacionamentoCaixaFechamento bool `json:"estacionamentoCaixaFechamento"`
	EstacionamentoLancamento      bool `json:"estacionamentoLancamento"`
	EstacionamentoAcompanhamento  bool `json:"estacionamentoAcompanhamento"`

	Relatorios bool `json:"relatorios"`

	ParametrosEmpresa         bool `json:"parametrosEmpresa"`
	ParametrosFormasPagamento bool `json:"parametrosFormasPagamento"`
	ParametrosBrinquedos      bool `json:"parametrosBrinquedos"`

	Clientes bool `json:"clientes"`
}

type CriarUsuarioRequest struct {
	NomeCompleto string  `json:"nomeCompleto" validate:"required,min=2,max=150"`
	Apelido      string  `json:"apelido"      validate:"required,min=1,max=100"`
	Contato      string  `json:"contato"`
	Senha        string  `json:"senha"        validate:"required,min=4"`
	UsaCaixa     bool    `json:"usaCaixa"`
	CaixaID      *string `json:"caixaId"`
	Bloqueado    bool    `json:"bloqueado"`

	PermissaoFlags
}

// AtualizarUsuarioRequest is a partial update: nil fields are left untouched,
// set fields overwrite. Senha, when present, is re-hashed.
type AtualizarUsuarioRequest struct {
	NomeCompleto *string `json:"nomeCompleto" validate:"omitempty,min=2,max=150"`
	Apelido      *string `json:"apelido"      validate:"omitempty,min=1,max=100"`
	Contato      *string `json:"contato"`
	Senha        *string `json:"senha"        validate:"omitempty,min=4"`
	UsaCaixa     *bool   `json:"usaCaixa"`
	CaixaID      *string `json:"caixaId"`
	Bloqueado    *bool   `json:"bloqueado"`

	Acompanhamento *bool `json:"acompanhamento"`
	Lancamento     *bool `json:"lancamento"`

	CaixaAbertura   *bool `json:"caixaAbertura"`
	CaixaFechamento *bool `json:"caixaFechamento"`
	CaixaSangria    *bool `json:"caixaSangria"`
	CaixaSuprimento *bool `json:"caixaSuprimento"`

	EstacionamentoCadastro        *bool `json:"estacionamentoCadastro"`
	EstacionamentoCaixaAbertura   *bool `json:"estacionamentoCaixaAbertura"`
	EstacionamentoCaixaFechamento *bool `json:"estacionamentoCaixaFechamento"`
	EstacionamentoLancamento      *bool `json:"estacionamentoLancamento"`
	EstacionamentoAcompanhamento  *bool `json:"estacionamentoAcompanhamento"`

	Relatorios *bool `json:"relatorios"`

	ParametrosEmpresa         *bool `json:"parametrosEmpresa"`
	ParametrosFormasPagamento *bool `json:"parametrosFormasPagamento"`
	ParametrosBrinquedos      *bool `json:"parametrosBrinquedos"`

	Clientes *bool `json:"clientes"`
}

// UsuarioResponse never exposes the credential hash.
type UsuarioResponse struct {
	ID           string  `json:"id"`
	NomeCompleto string  `json:"nomeCompleto"`
	Apelido      string  `json:"apelido"`
	Contato      string  `json:"contato"`
	UsaCaixa     bool    `json:"usaCaixa"`
	CaixaID      *string `json:"caixaId"`
	Bloqueado    bool    `json:"bloqueado"`
	Protegido    bool    `json:"protegido"`

	PermissaoFlags

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
