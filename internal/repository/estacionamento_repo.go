package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marcusnog/playground-backend/internal/model"
)

// LancamentoEstacionamentoFilter narrows ListLancamentos; nil fields are
// ignored. Dia selects the calendar day [dia 00:00, dia+1 00:00) in server
// local time, same window as LancamentoFilter.
type LancamentoEstacionamentoFilter struct {
	Status           *string
	Dia              *time.Time
	EstacionamentoID *uuid.UUID
}

type EstacionamentoRepository interface {
	Create(ctx context.Context, e *model.Estacionamento) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Estacionamento, error)
	List(ctx context.Context) ([]model.Estacionamento, error)
	Update(ctx context.Context, e *model.Estacionamento) error
	Delete(ctx context.Context, id uuid.UUID) error

	CreateLancamento(ctx context.Context, l *model.LancamentoEstacionamento) error
	FindLancamentoByID(ctx context.Context, id uuid.UUID) (*model.LancamentoEstacionamento, error)
	ListLancamentos(ctx context.Context, f LancamentoEstacionamentoFilter) ([]model.LancamentoEstacionamento, error)
	UpdateLancamentoStatus(ctx context.Context, id uuid.UUID, from, to string, extra map[string]interface{}) (bool, error)
}

type estacionamentoRepo struct{ db *gorm.DB }

func NewEstacionamentoRepository(db *gorm.DB) EstacionamentoRepository {
	return &estacionamentoRepo{db: db}
}

func (r *estacionamentoRepo) Create(ctx context.Context, e *model.Estacionamento) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *estacionamentoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Estacionamento, error) {
	var e model.Estacionamento
	if err := r.db.WithContext(ctx).Preload("Caixa").First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *estacionamentoRepo) List(ctx context.Context) ([]model.Estacionamento, error) {
	var lots []model.Estacionamento
	err := r.db.WithContext(ctx).Preload("Caixa").Order("nome ASC").Find(&lots).Error
	return lots, err
}

func (r *estacionamentoRepo) Update(ctx context.Context, e *model.Estacionamento) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *estacionamentoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Estacionamento{}, id).Error
}

func (r *estacionamentoRepo) CreateLancamento(ctx context.Context, l *model.LancamentoEstacionamento) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *estacionamentoRepo) FindLancamentoByID(ctx context.Context, id uuid.UUID) (*model.LancamentoEstacionamento, error) {
	var l model.LancamentoEstacionamento
	err := r.db.WithContext(ctx).
		Preload("Estacionamento").
		Preload("FormaPagamento").
		First(&l, id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *estacionamentoRepo) ListLancamentos(ctx context.Context, f LancamentoEstacionamentoFilter) ([]model.LancamentoEstacionamento, error) {
	q := r.db.WithContext(ctx).
		Preload("Estacionamento").
		Preload("FormaPagamento")
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.Dia != nil {
		inicio := time.Date(f.Dia.Year(), f.Dia.Month(), f.Dia.Day(), 0, 0, 0, 0, f.Dia.Location())
		q = q.Where("data_hora >= ? AND data_hora < ?", inicio, inicio.AddDate(0, 0, 1))
	}
	if f.EstacionamentoID != nil {
		q = q.Where("estacionamento_id = ?", *f.EstacionamentoID)
	}
	var entries []model.LancamentoEstacionamento
	err := q.Order("data_hora DESC").Find(&entries).Error
	return entries, err
}

func (r *estacionamentoRepo) UpdateLancamentoStatus(ctx context.Context, id uuid.UUID, from, to string, extra map[string]interface{}) (bool, error) {
	fields := map[string]interface{}{"status": to}
	for k, v := range extra {
		fields[k] = v
	}
	res := r.db.WithContext(ctx).
		Model(&model.LancamentoEstacionamento{}).
		Where("id = ? AND status = ?", id, from).
		Updates(fields)
	return res.RowsAffected > 0, res.Error
}
