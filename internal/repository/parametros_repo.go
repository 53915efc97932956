package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/marcusnog/playground-backend/internal/model"
)

type ParametrosRepository interface {
	// Find returns the singleton row, or nil when it was never written.
	Find(ctx context.Context) (*model.Parametros, error)
	Create(ctx context.Context, p *model.Parametros) error
	Save(ctx context.Context, p *model.Parametros) error
}

type parametrosRepo struct{ db *gorm.DB }

func NewParametrosRepository(db *gorm.DB) ParametrosRepository { return &parametrosRepo{db: db} }

func (r *parametrosRepo) Find(ctx context.Context) (*model.Parametros, error) {
	var p model.Parametros
	err := r.db.WithContext(ctx).Where("id = ?", model.ParametrosID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *parametrosRepo) Create(ctx context.Context, p *model.Parametros) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *parametrosRepo) Save(ctx context.Context, p *model.Parametros) error {
	return r.db.WithContext(ctx).Save(p).Error
}
