package service

// DTO mapping helpers shared by the services. Responses are always built from
// freshly loaded models so that preloaded associations ride along.

import (
	"github.com/marcusnog/playground-backend/internal/dto"
	"github.com/marcusnog/playground-backend/internal/model"
)

func toBrinquedoResponse(b *model.Brinquedo) dto.BrinquedoResponse {
	return dto.BrinquedoResponse{
		ID:             b.ID.String(),
		Nome:           b.Nome,
		InicialMinutos: b.InicialMinutos,
		ValorInicial:   b.ValorInicial,
		CicloMinutos:   b.CicloMinutos,
		ValorCiclo:     b.ValorCiclo,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func toClienteResponse(c *model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ID:               c.ID.String(),
		NomeCompleto:     c.NomeCompleto,
		DataNascimento:   c.DataNascimento,
		NomePai:          c.NomePai,
		NomeMae:          c.NomeMae,
		TelefoneWhatsapp: c.TelefoneWhatsapp,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}

func toFormaPagamentoResponse(f *model.FormaPagamento) dto.FormaPagamentoResponse {
	return dto.FormaPagamentoResponse{
		ID:        f.ID.String(),
		Descricao: f.Descricao,
		Status:    f.Status,
		PixChave:  f.PixChave,
		PixConta:  f.PixConta,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func toMovimentoResponse(m *model.MovimentoCaixa) dto.MovimentoCaixaResponse {
	return dto.MovimentoCaixaResponse{
		ID:       m.ID.String(),
		CaixaID:  m.CaixaID.String(),
		DataHora: m.DataHora,
		Tipo:     m.Tipo,
		Valor:    m.Valor,
		Motivo:   m.Motivo,
	}
}

func toCaixaResponse(c *model.Caixa) dto.CaixaResponse {
	movimentos := make([]dto.MovimentoCaixaResponse, len(c.Movimentos))
	for i := range c.Movimentos {
		movimentos[i] = toMovimentoResponse(&c.Movimentos[i])
	}
	brinquedos := make([]dto.BrinquedoResponse, 0, len(c.Brinquedos))
	for i := range c.Brinquedos {
		if c.Brinquedos[i].Brinquedo != nil {
			brinquedos = append(brinquedos, toBrinquedoResponse(c.Brinquedos[i].Brinquedo))
		}
	}
	return dto.CaixaResponse{
		ID:           c.ID.String(),
		Nome:         c.Nome,
		Data:         c.Data,
		ValorInicial: c.ValorInicial,
		Status:       c.Status,
		Bloqueado:    c.Bloqueado,
		Movimentos:   movimentos,
		Brinquedos:   brinquedos,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toLancamentoResponse(l *model.Lancamento) dto.LancamentoResponse {
	resp := dto.LancamentoResponse{
		ID:                  l.ID.String(),
		DataHora:            l.DataHora,
		NomeCrianca:         l.NomeCrianca,
		NomeResponsavel:     l.NomeResponsavel,
		TipoParente:         l.TipoParente,
		WhatsappResponsavel: l.WhatsappResponsavel,
		NumeroPulseira:      l.NumeroPulseira,
		TempoSolicitadoMin:  l.TempoSolicitadoMin,
		ValorCalculado:      l.ValorCalculado,
		Status:              l.Status,
		CreatedAt:           l.CreatedAt,
		UpdatedAt:           l.UpdatedAt,
	}
	if l.Brinquedo != nil {
		b := toBrinquedoResponse(l.Brinquedo)
		resp.Brinquedo = &b
	}
	if l.Cliente != nil {
		c := toClienteResponse(l.Cliente)
		resp.Cliente = &c
	}
	if l.FormaPagamento != nil {
		f := toFormaPagamentoResponse(l.FormaPagamento)
		resp.FormaPagamento = &f
	}
	return resp
}

func toEstacionamentoResponse(e *model.Estacionamento) dto.EstacionamentoResponse {
	resp := dto.EstacionamentoResponse{
		ID:        e.ID.String(),
		Nome:      e.Nome,
		Valor:     e.Valor,
		CaixaID:   e.CaixaID.String(),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.Caixa != nil {
		c := toCaixaResponse(e.Caixa)
		resp.Caixa = &c
	}
	return resp
}

func toLancamentoEstacionamentoResponse(l *model.LancamentoEstacionamento) dto.LancamentoEstacionamentoResponse {
	resp := dto.LancamentoEstacionamentoResponse{
		ID:              l.ID.String(),
		DataHora:        l.DataHora,
		Placa:           l.Placa,
		Modelo:          l.Modelo,
		TelefoneContato: l.TelefoneContato,
		Valor:           l.Valor,
		Status:          l.Status,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
	if l.Estacionamento != nil {
		e := toEstacionamentoResponse(l.Estacionamento)
		resp.Estacionamento = &e
	}
	if l.FormaPagamento != nil {
		f := toFormaPagamentoResponse(l.FormaPagamento)
		resp.FormaPagamento = &f
	}
	return resp
}

func toUsuarioResponse(u *model.Usuario) dto.UsuarioResponse {
	var caixaID *string
	if u.CaixaID != nil {
		s := u.CaixaID.String()
		caixaID = &s
	}
	return dto.UsuarioResponse{
		ID:           u.ID.String(),
		NomeCompleto: u.NomeCompleto,
		Apelido:      u.Apelido,
		Contato:      u.Contato,
		UsaCaixa:     u.UsaCaixa,
		CaixaID:      caixaID,
		Bloqueado:    u.Bloqueado,
		Protegido:    u.Protegido,
		PermissaoFlags: dto.PermissaoFlags{
			Acompanhamento:                u.Acompanhamento,
			Lancamento:                    u.Lancamento,
			CaixaAbertura:                 u.CaixaAbertura,
			CaixaFechamento:               u.CaixaFechamento,
			CaixaSangria:                  u.CaixaSangria,
			CaixaSuprimento:               u.CaixaSuprimento,
			EstacionamentoCadastro:        u.EstacionamentoCadastro,
			EstacionamentoCaixaAbertura:   u.EstacionamentoCaixaAbertura,
			EstacionamentoCaixaFechamento: u.EstacionamentoCaixaFechamento,
			EstacionamentoLancamento:      u.EstacionamentoLancamento,
			EstacionamentoAcompanhamento:  u.EstacionamentoAcompanhamento,
			Relatorios:                    u.Relatorios,
			ParametrosEmpresa:             u.ParametrosEmpresa,
			ParametrosFormasPagamento:     u.ParametrosFormasPagamento,
			ParametrosBrinquedos:          u.ParametrosBrinquedos,
			Clientes:                      u.Clientes,
		},
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toAuthUserResponse(u *model.Usuario) dto.AuthUserResponse {
	var caixaID *string
	if u.CaixaID != nil {
		s := u.CaixaID.String()
		caixaID = &s
	}
	return dto.AuthUserResponse{
		ID:         u.ID.String(),
		Username:   u.Apelido,
		Apelido:    u.Apelido,
		Permissoes: u.Permissoes(),
		UsaCaixa:   u.UsaCaixa,
		CaixaID:    caixaID,
	}
}

func toParametrosResponse(p *model.Parametros) dto.ParametrosResponse {
	return dto.ParametrosResponse{
		ID:                  p.ID,
		ValorInicialMinutos: p.ValorInicialMinutos,
		ValorInicialReais:   p.ValorInicialReais,
		ValorCicloMinutos:   p.ValorCicloMinutos,
		ValorCicloReais:     p.ValorCicloReais,
		EmpresaNome:         p.EmpresaNome,
		EmpresaCnpj:         p.EmpresaCnpj,
		EmpresaLogoUrl:      p.EmpresaLogoUrl,
		PixChave:            p.PixChave,
		PixCidade:           p.PixCidade,
		UpdatedAt:           p.UpdatedAt,
	}
}
