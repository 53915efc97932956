package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marcusnog/playground-backend/internal/model"
)

// LancamentoFilter narrows List; nil fields are ignored. Dia selects the
// calendar day [dia 00:00, dia+1 00:00) in server local time.
type LancamentoFilter struct {
	Status *string
	Dia    *time.Time
}

type LancamentoRepository interface {
	Create(ctx context.Context, l *model.Lancamento) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Lancamento, error)
	List(ctx context.Context, f LancamentoFilter) ([]model.Lancamento, error)
	Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	// UpdateStatus is a guarded transition, same contract as CaixaRepository.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to string, extra map[string]interface{}) (bool, error)
}

type lancamentoRepo struct{ db *gorm.DB }

func NewLancamentoRepository(db *gorm.DB) LancamentoRepository { return &lancamentoRepo{db: db} }

func (r *lancamentoRepo) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Brinquedo").
		Preload("Cliente").
		Preload("FormaPagamento")
}

func (r *lancamentoRepo) Create(ctx context.Context, l *model.Lancamento) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *lancamentoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Lancamento, error) {
	var l model.Lancamento
	if err := r.withAssociations(ctx).First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *lancamentoRepo) List(ctx context.Context, f LancamentoFilter) ([]model.Lancamento, error) {
	q := r.withAssociations(ctx)
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.Dia != nil {
		inicio := time.Date(f.Dia.Year(), f.Dia.Month(), f.Dia.Day(), 0, 0, 0, 0, f.Dia.Location())
		q = q.Where("data_hora >= ? AND data_hora < ?", inicio, inicio.AddDate(0, 0, 1))
	}
	var lancamentos []model.Lancamento
	err := q.Order("data_hora DESC").Find(&lancamentos).Error
	return lancamentos, err
}

func (r *lancamentoRepo) Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Lancamento{}).Where("id = ?", id).Updates(fields).Error
}

func (r *lancamentoRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string, extra map[string]interface{}) (bool, error) {
	fields := map[string]interface{}{"status": to}
	for k, v := range extra {
		fields[k] = v
	}
	res := r.db.WithContext(ctx).
		Model(&model.Lancamento{}).
		Where("id = ? AND status = ?", id, from).
		Updates(fields)
	return res.RowsAffected > 0, res.Error
}
