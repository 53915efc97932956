package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marcusnog/playground-backend/internal/model"
)

type BrinquedoRepository interface {
	Create(ctx context.Context, b *model.Brinquedo) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Brinquedo, error)
	List(ctx context.Context) ([]model.Brinquedo, error)
	Update(ctx context.Context, b *model.Brinquedo) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type brinquedoRepo struct{ db *gorm.DB }

func NewBrinquedoRepository(db *gorm.DB) BrinquedoRepository { return &brinquedoRepo{db: db} }

func (r *brinquedoRepo) Create(ctx context.Context, b *model.Brinquedo) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *brinquedoRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Brinquedo, error) {
	var b model.Brinquedo
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *brinquedoRepo) List(ctx context.Context) ([]model.Brinquedo, error) {
	var brinquedos []model.Brinquedo
	err := r.db.WithContext(ctx).Order("nome ASC").Find(&brinquedos).Error
	return brinquedos, err
}

func (r *brinquedoRepo) Update(ctx context.Context, b *model.Brinquedo) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *brinquedoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Brinquedo{}, id).Error
}
