package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullGrant() Permissoes {
	return Permissoes{
		Acompanhamento: true,
		Lancamento:     true,
		Caixa: CaixaPermissoes{
			Abertura:   true,
			Fechamento: true,
			Sangria:    true,
			Suprimento: true,
		},
		Estacionamento: EstacionamentoPermissoes{
			Cadastro:       true,
			Caixa:          EstacionamentoCaixaPermissoes{Abertura: true, Fechamento: true},
			Lancamento:     true,
			Acompanhamento: true,
		},
		Relatorios: true,
		Parametros: ParametrosPermissoes{Empresa: true, FormasPagamento: true, Brinquedos: true},
		Clientes:   true,
	}
}

var allKeys = []Key{
	Acompanhamento, Lancamento,
	CaixaAbertura, CaixaFechamento, CaixaSangria, CaixaSuprimento,
	EstacionamentoCadastro, EstacionamentoCaixaAbertura, EstacionamentoCaixaFechamento,
	EstacionamentoLancamento, EstacionamentoAcompanhamento,
	Relatorios,
	ParametrosEmpresa, ParametrosFormasPagamento, ParametrosBrinquedos,
	Clientes,
}

func TestHas_FullGrant(t *testing.T) {
	p := fullGrant()
	for _, k := range allKeys {
		assert.True(t, p.Has(k), "key %s should be granted", k)
	}
}

func TestHas_ZeroValueDeniesEverything(t *testing.T) {
	var p Permissoes
	for _, k := range allKeys {
		assert.False(t, p.Has(k), "key %s should be denied", k)
	}
}

func TestHas_UnknownKeyDenies(t *testing.T) {
	p := fullGrant()
	assert.False(t, p.Has(Key("naoExiste")))
	assert.False(t, p.Has(Key("")))
}

func TestHas_SingleFlagDoesNotLeak(t *testing.T) {
	// Granting one capability must not grant any sibling.
	for _, granted := range allKeys {
		var p Permissoes
		switch granted {
		case Acompanhamento:
			p.Acompanhamento = true
		case Lancamento:
			p.Lancamento = true
		case CaixaAbertura:
			p.Caixa.Abertura = true
		case CaixaFechamento:
			p.Caixa.Fechamento = true
		case CaixaSangria:
			p.Caixa.Sangria = true
		case CaixaSuprimento:
			p.Caixa.Suprimento = true
		case EstacionamentoCadastro:
			p.Estacionamento.Cadastro = true
		case EstacionamentoCaixaAbertura:
			p.Estacionamento.Caixa.Abertura = true
		case EstacionamentoCaixaFechamento:
			p.Estacionamento.Caixa.Fechamento = true
		case EstacionamentoLancamento:
			p.Estacionamento.Lancamento = true
		case EstacionamentoAcompanhamento:
			p.Estacionamento.Acompanhamento = true
		case Relatorios:
			p.Relatorios = true
		case ParametrosEmpresa:
			p.Parametros.Empresa = true
		case ParametrosFormasPagamento:
			p.Parametros.FormasPagamento = true
		case ParametrosBrinquedos:
			p.Parametros.Brinquedos = true
		case Clientes:
			p.Clientes = true
		}

		for _, k := range allKeys {
			if k == granted {
				assert.True(t, p.Has(k), "granted key %s", k)
			} else {
				assert.False(t, p.Has(k), "key %s must stay denied when only %s is granted", k, granted)
			}
		}
	}
}
