package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marcusnog/playground-backend/internal/model"
)

type FormaPagamentoRepository interface {
	Create(ctx context.Context, f *model.FormaPagamento) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.FormaPagamento, error)
	List(ctx context.Context) ([]model.FormaPagamento, error)
	Update(ctx context.Context, f *model.FormaPagamento) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type formaPagamentoRepo struct{ db *gorm.DB }

func NewFormaPagamentoRepository(db *gorm.DB) FormaPagamentoRepository {
	return &formaPagamentoRepo{db: db}
}

func (r *formaPagamentoRepo) Create(ctx context.Context, f *model.FormaPagamento) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *formaPagamentoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.FormaPagamento, error) {
	var f model.FormaPagamento
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *formaPagamentoRepo) List(ctx context.Context) ([]model.FormaPagamento, error) {
	var formas []model.FormaPagamento
	err := r.db.WithContext(ctx).Order("descricao ASC").Find(&formas).Error
	return formas, err
}

func (r *formaPagamentoRepo) Update(ctx context.Context, f *model.FormaPagamento) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *formaPagamentoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.FormaPagamento{}, id).Error
}
