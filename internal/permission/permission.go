// Package permission models the per-user capability set.
//
// Users store sixteen independent boolean columns; the runtime-facing shape is
// the nested Permissoes value object embedded in the session token and checked
// per request. Evaluation is pure and total: a zero-value node or an unknown
// key simply denies.
package permission

// Key identifies one capability in the closed enumeration used by route gates.
type Key string

const (
	Acompanhamento Key = "acompanhamento"
	Lancamento     Key = "lancamento"

	CaixaAbertura   Key = "caixaAbertura"
	CaixaFechamento Key = "caixaFechamento"
	CaixaSangria    Key = "caixaSangria"
	CaixaSuprimento Key = "caixaSuprimento"

	EstacionamentoCadastro        Key = "estacionamentoCadastro"
	EstacionamentoCaixaAbertura   Key = "estacionamentoCaixaAbertura"
	EstacionamentoCaixaFechamento Key = "estacionamentoCaixaFechamento"
	EstacionamentoLancamento      Key = "estacionamentoLancamento"
	EstacionamentoAcompanhamento  Key = "estacionamentoAcompanhamento"

	Relatorios Key = "relatorios"

	ParametrosEmpresa         Key = "parametrosEmpresa"
	ParametrosFormasPagamento Key = "parametrosFormasPagamento"
	ParametrosBrinquedos      Key = "parametrosBrinquedos"

	Clientes Key = "clientes"
)

type CaixaPermissoes struct {
	Abertura   bool `json:"abertura"`
	Fechamento bool `json:"fechamento"`
	Sangria    bool `json:"sangria"`
	Suprimento bool `json:"suprimento"`
}

type EstacionamentoCaixaPermissoes struct {
	Abertura   bool `json:"abertura"`
	Fechamento bool `json:"fechamento"`
}

type EstacionamentoPermissoes struct {
	Cadastro       bool                          `json:"cadastro"`
	Caixa          EstacionamentoCaixaPermissoes `json:"caixa"`
	Lancamento     bool                          `json:"lancamento"`
	Acompanhamento bool                          `json:"acompanhamento"`
}

type ParametrosPermissoes struct {
	Empresa         bool `json:"empresa"`
	FormasPagamento bool `json:"formasPagamento"`
	Brinquedos      bool `json:"brinquedos"`
}

// Permissoes is the expanded capability snapshot: four nested groups plus four
// flat booleans. Its JSON shape is a persisted contract — it is embedded in
// every issued token and consumed verbatim by clients.
type Permissoes struct {
	Acompanhamento bool                     `json:"acompanhamento"`
	Lancamento     bool                     `json:"lancamento"`
	Caixa          CaixaPermissoes          `json:"caixa"`
	Estacionamento EstacionamentoPermissoes `json:"estacionamento"`
	Relatorios     bool                     `json:"relatorios"`
	Parametros     ParametrosPermissoes     `json:"parametros"`
	Clientes       bool                     `json:"clientes"`
}

// Has reports whether the capability identified by k is granted.
func (p Permissoes) Has(k Key) bool {
	switch k {
	case Acompanhamento:
		return p.Acompanhamento
	case Lancamento:
		return p.Lancamento
	case Relatorios:
		return p.Relatorios
	case Clientes:
		return p.Clientes
	case CaixaAbertura:
		return p.Caixa.Abertura
	case CaixaFechamento:
		return p.Caixa.Fechamento
	case CaixaSangria:
		return p.Caixa.Sangria
	case CaixaSuprimento:
		return p.Caixa.Suprimento
	case EstacionamentoCadastro:
		return p.Estacionamento.Cadastro
	case EstacionamentoCaixaAbertura:
		return p.Estacionamento.Caixa.Abertura
	case EstacionamentoCaixaFechamento:
		return p.Estacionamento.Caixa.Fechamento
	case EstacionamentoLancamento:
		return p.Estacionamento.Lancamento
	case EstacionamentoAcompanhamento:
		return p.Estacionamento.Acompanhamento
	case ParametrosEmpresa:
		return p.Parametros.Empresa
	case ParametrosFormasPagamento:
		return p.Parametros.FormasPagamento
	case ParametrosBrinquedos:
		return p.Parametros.Brinquedos
	}
	return false
}
