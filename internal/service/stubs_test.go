package service

// In-memory repository stubs shared by the service tests. They mimic the
// persistence contracts closely enough for the state-machine rules to be
// exercised without a database: not-found is gorm.ErrRecordNotFound and
// guarded status updates only touch rows in the expected prior state.

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/marcusnog/playground-backend/internal/model"
	"github.com/marcusnog/playground-backend/internal/repository"
)

// ── caixa ─────────────────────────────────────────────────────────────────────

type memCaixaRepo struct {
	caixas     map[uuid.UUID]*model.Caixa
	movimentos map[uuid.UUID][]model.MovimentoCaixa
	brinquedos map[uuid.UUID][]uuid.UUID
}

func newMemCaixaRepo() *memCaixaRepo {
	return &memCaixaRepo{
		caixas:     map[uuid.UUID]*model.Caixa{},
		movimentos: map[uuid.UUID][]model.MovimentoCaixa{},
		brinquedos: map[uuid.UUID][]uuid.UUID{},
	}
}

var _ repository.CaixaRepository = (*memCaixaRepo)(nil)

func (r *memCaixaRepo) Create(_ context.Context, c *model.Caixa) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	cp := *c
	r.caixas[c.ID] = &cp
	return nil
}

func (r *memCaixaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Caixa, error) {
	c, ok := r.caixas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *c
	cp.Movimentos = r.movimentos[id]
	return &cp, nil
}

func (r *memCaixaRepo) FindAberto(_ context.Context) (*model.Caixa, error) {
	for _, c := range r.caixas {
		if c.Status == model.CaixaAberto {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCaixaRepo) List(_ context.Context) ([]model.Caixa, error) {
	out := make([]model.Caixa, 0, len(r.caixas))
	for _, c := range r.caixas {
		out = append(out, *c)
	}
	return out, nil
}

func (r *memCaixaRepo) Updates(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	c, ok := r.caixas[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	applyCaixaFields(c, fields)
	return nil
}

func (r *memCaixaRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to string, extra map[string]interface{}) (bool, error) {
	c, ok := r.caixas[id]
	if !ok || c.Status != from {
		return false, nil
	}
	c.Status = to
	applyCaixaFields(c, extra)
	return true, nil
}

func applyCaixaFields(c *model.Caixa, fields map[string]interface{}) {
	for k, v := range fields {
		switch k {
		case "nome":
			c.Nome = v.(string)
		case "data":
			c.Data = v.(string)
		case "valor_inicial":
			c.ValorInicial = v.(decimal.Decimal)
		case "bloqueado":
			c.Bloqueado = v.(bool)
		}
	}
}

func (r *memCaixaRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.caixas, id)
	delete(r.movimentos, id)
	delete(r.brinquedos, id)
	return nil
}

func (r *memCaixaRepo) ReplaceBrinquedos(_ context.Context, caixaID uuid.UUID, ids []uuid.UUID) error {
	r.brinquedos[caixaID] = ids
	return nil
}

func (r *memCaixaRepo) CreateMovimento(_ context.Context, m *model.MovimentoCaixa) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.movimentos[m.CaixaID] = append([]model.MovimentoCaixa{*m}, r.movimentos[m.CaixaID]...)
	return nil
}

func (r *memCaixaRepo) ListMovimentos(_ context.Context, caixaID uuid.UUID) ([]model.MovimentoCaixa, error) {
	return r.movimentos[caixaID], nil
}

// ── lancamento ────────────────────────────────────────────────────────────────

type memLancamentoRepo struct {
	lancamentos map[uuid.UUID]*model.Lancamento
}

func newMemLancamentoRepo() *memLancamentoRepo {
	return &memLancamentoRepo{lancamentos: map[uuid.UUID]*model.Lancamento{}}
}

var _ repository.LancamentoRepository = (*memLancamentoRepo)(nil)

func (r *memLancamentoRepo) Create(_ context.Context, l *model.Lancamento) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	cp := *l
	r.lancamentos[l.ID] = &cp
	return nil
}

func (r *memLancamentoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Lancamento, error) {
	l, ok := r.lancamentos[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *memLancamentoRepo) List(_ context.Context, f repository.LancamentoFilter) ([]model.Lancamento, error) {
	var out []model.Lancamento
	for _, l := range r.lancamentos {
		if f.Status != nil && l.Status != *f.Status {
			continue
		}
		if f.Dia != nil {
			inicio := time.Date(f.Dia.Year(), f.Dia.Month(), f.Dia.Day(), 0, 0, 0, 0, f.Dia.Location())
			if l.DataHora.Before(inicio) || !l.DataHora.Before(inicio.AddDate(0, 0, 1)) {
				continue
			}
		}
		out = append(out, *l)
	}
	return out, nil
}

func (r *memLancamentoRepo) Updates(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	l, ok := r.lancamentos[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	applyLancamentoFields(l, fields)
	return nil
}

func (r *memLancamentoRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to string, extra map[string]interface{}) (bool, error) {
	l, ok := r.lancamentos[id]
	if !ok || l.Status != from {
		return false, nil
	}
	l.Status = to
	applyLancamentoFields(l, extra)
	return true, nil
}

func applyLancamentoFields(l *model.Lancamento, fields map[string]interface{}) {
	for k, v := range fields {
		switch k {
		case "nome_crianca":
			l.NomeCrianca = v.(string)
		case "nome_responsavel":
			l.NomeResponsavel = v.(string)
		case "whatsapp_responsavel":
			l.WhatsappResponsavel = v.(string)
		case "valor_calculado":
			l.ValorCalculado = v.(decimal.Decimal)
		case "forma_pagamento_id":
			id := v.(uuid.UUID)
			l.FormaPagamentoID = &id
		case "data_hora":
			l.DataHora = v.(time.Time)
		}
	}
}

// ── estacionamento ────────────────────────────────────────────────────────────

type memEstacionamentoRepo struct {
	lots    map[uuid.UUID]*model.Estacionamento
	entries map[uuid.UUID]*model.LancamentoEstacionamento
}

func newMemEstacionamentoRepo() *memEstacionamentoRepo {
	return &memEstacionamentoRepo{
		lots:    map[uuid.UUID]*model.Estacionamento{},
		entries: map[uuid.UUID]*model.LancamentoEstacionamento{},
	}
}

var _ repository.EstacionamentoRepository = (*memEstacionamentoRepo)(nil)

func (r *memEstacionamentoRepo) Create(_ context.Context, e *model.Estacionamento) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	cp := *e
	r.lots[e.ID] = &cp
	return nil
}

func (r *memEstacionamentoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Estacionamento, error) {
	e, ok := r.lots[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *memEstacionamentoRepo) List(_ context.Context) ([]model.Estacionamento, error) {
	out := make([]model.Estacionamento, 0, len(r.lots))
	for _, e := range r.lots {
		out = append(out, *e)
	}
	return out, nil
}

func (r *memEstacionamentoRepo) Update(_ context.Context, e *model.Estacionamento) error {
	cp := *e
	r.lots[e.ID] = &cp
	return nil
}

func (r *memEstacionamentoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.lots, id)
	return nil
}

func (r *memEstacionamentoRepo) CreateLancamento(_ context.Context, l *model.LancamentoEstacionamento) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	cp := *l
	r.entries[l.ID] = &cp
	return nil
}

func (r *memEstacionamentoRepo) FindLancamentoByID(_ context.Context, id uuid.UUID) (*model.LancamentoEstacionamento, error) {
	l, ok := r.entries[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *memEstacionamentoRepo) ListLancamentos(_ context.Context, f repository.LancamentoEstacionamentoFilter) ([]model.LancamentoEstacionamento, error) {
	var out []model.LancamentoEstacionamento
	for _, l := range r.entries {
		if f.Status != nil && l.Status != *f.Status {
			continue
		}
		if f.Dia != nil {
			inicio := time.Date(f.Dia.Year(), f.Dia.Month(), f.Dia.Day(), 0, 0, 0, 0, f.Dia.Location())
			if l.DataHora.Before(inicio) || !l.DataHora.Before(inicio.AddDate(0, 0, 1)) {
				continue
			}
		}
		if f.EstacionamentoID != nil && l.EstacionamentoID != *f.EstacionamentoID {
			continue
		}
		out = append(out, *l)
	}
	return out, nil
}

func (r *memEstacionamentoRepo) UpdateLancamentoStatus(_ context.Context, id uuid.UUID, from, to string, extra map[string]interface{}) (bool, error) {
	l, ok := r.entries[id]
	if !ok || l.Status != from {
		return false, nil
	}
	l.Status = to
	if v, ok := extra["forma_pagamento_id"]; ok {
		fid := v.(uuid.UUID)
		l.FormaPagamentoID = &fid
	}
	return true, nil
}

// ── usuario ───────────────────────────────────────────────────────────────────

type memUsuarioRepo struct {
	usuarios map[uuid.UUID]*model.Usuario
}

func newMemUsuarioRepo() *memUsuarioRepo {
	return &memUsuarioRepo{usuarios: map[uuid.UUID]*model.Usuario{}}
}

var _ repository.UsuarioRepository = (*memUsuarioRepo)(nil)

func (r *memUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	cp := *u
	r.usuarios[u.ID] = &cp
	return nil
}

func (r *memUsuarioRepo) FindByLogin(_ context.Context, login string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Apelido == login || u.NomeCompleto == login {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUsuarioRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Usuario, error) {
	u, ok := r.usuarios[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUsuarioRepo) FindByApelido(_ context.Context, apelido string) (*model.Usuario, error) {
	for _, u := range r.usuarios {
		if u.Apelido == apelido {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	out := make([]model.Usuario, 0, len(r.usuarios))
	for _, u := range r.usuarios {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	cp := *u
	r.usuarios[u.ID] = &cp
	return nil
}

func (r *memUsuarioRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.usuarios, id)
	return nil
}

// ── forma de pagamento ────────────────────────────────────────────────────────

type memFormaPagamentoRepo struct {
	formas map[uuid.UUID]*model.FormaPagamento
}

func newMemFormaPagamentoRepo() *memFormaPagamentoRepo {
	return &memFormaPagamentoRepo{formas: map[uuid.UUID]*model.FormaPagamento{}}
}

var _ repository.FormaPagamentoRepository = (*memFormaPagamentoRepo)(nil)

func (r *memFormaPagamentoRepo) Create(_ context.Context, f *model.FormaPagamento) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	cp := *f
	r.formas[f.ID] = &cp
	return nil
}

func (r *memFormaPagamentoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.FormaPagamento, error) {
	f, ok := r.formas[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f
	return &cp, nil
}

func (r *memFormaPagamentoRepo) List(_ context.Context) ([]model.FormaPagamento, error) {
	out := make([]model.FormaPagamento, 0, len(r.formas))
	for _, f := range r.formas {
		out = append(out, *f)
	}
	return out, nil
}

func (r *memFormaPagamentoRepo) Update(_ context.Context, f *model.FormaPagamento) error {
	cp := *f
	r.formas[f.ID] = &cp
	return nil
}

func (r *memFormaPagamentoRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.formas, id)
	return nil
}

// ── parametros ────────────────────────────────────────────────────────────────

type memParametrosRepo struct {
	row *model.Parametros
}

var _ repository.ParametrosRepository = (*memParametrosRepo)(nil)

func (r *memParametrosRepo) Find(_ context.Context) (*model.Parametros, error) {
	if r.row == nil {
		return nil, nil
	}
	cp := *r.row
	return &cp, nil
}

func (r *memParametrosRepo) Create(_ context.Context, p *model.Parametros) error {
	cp := *p
	r.row = &cp
	return nil
}

func (r *memParametrosRepo) Save(_ context.Context, p *model.Parametros) error {
	cp := *p
	r.row = &cp
	return nil
}
