package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marcusnog/playground-backend/internal/model"
)

type CaixaRepository interface {
	Create(ctx context.Context, c *model.Caixa) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Caixa, error)
	// FindAberto returns the first open register, or nil when none is open.
	FindAberto(ctx context.Context) (*model.Caixa, error)
	List(ctx context.Context) ([]model.Caixa, error)
	Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	// UpdateStatus performs a guarded transition: the row is only touched when
	// its current status matches from. Reports whether a row was updated, so a
	// lost race surfaces as a state conflict instead of last-write-wins.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to string, extra map[string]interface{}) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ReplaceBrinquedos(ctx context.Context, caixaID uuid.UUID, brinquedoIDs []uuid.UUID) error
	CreateMovimento(ctx context.Context, m *model.MovimentoCaixa) error
	ListMovimentos(ctx context.Context, caixaID uuid.UUID) ([]model.MovimentoCaixa, error)
}

type caixaRepo struct{ db *gorm.DB }

func NewCaixaRepository(db *gorm.DB) CaixaRepository { return &caixaRepo{db: db} }

func (r *caixaRepo) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Movimentos", func(db *gorm.DB) *gorm.DB {
			return db.Order("data_hora DESC")
		}).
		Preload("Brinquedos.Brinquedo")
}

func (r *caixaRepo) Create(ctx context.Context, c *model.Caixa) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *caixaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Caixa, error) {
	var c model.Caixa
	if err := r.withAssociations(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *caixaRepo) FindAberto(ctx context.Context) (*model.Caixa, error) {
	var c model.Caixa
	err := r.withAssociations(ctx).Where("status = ?", model.CaixaAberto).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *caixaRepo) List(ctx context.Context) ([]model.Caixa, error) {
	var caixas []model.Caixa
	err := r.withAssociations(ctx).Order("data DESC").Find(&caixas).Error
	return caixas, err
}

func (r *caixaRepo) Updates(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Caixa{}).Where("id = ?", id).Updates(fields).Error
}

func (r *caixaRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string, extra map[string]interface{}) (bool, error) {
	fields := map[string]interface{}{"status": to}
	for k, v := range extra {
		fields[k] = v
	}
	res := r.db.WithContext(ctx).
		Model(&model.Caixa{}).
		Where("id = ? AND status = ?", id, from).
		Updates(fields)
	return res.RowsAffected > 0, res.Error
}

func (r *caixaRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("caixa_id = ?", id).Delete(&model.CaixaBrinquedo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Caixa{}, id).Error
	})
}

func (r *caixaRepo) ReplaceBrinquedos(ctx context.Context, caixaID uuid.UUID, brinquedoIDs []uuid.UUID) error {
	// Full replacement, never a diff: delete-all then re-insert.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("caixa_id = ?", caixaID).Delete(&model.CaixaBrinquedo{}).Error; err != nil {
			return err
		}
		if len(brinquedoIDs) == 0 {
			return nil
		}
		rows := make([]model.CaixaBrinquedo, len(brinquedoIDs))
		for i, bid := range brinquedoIDs {
			rows[i] = model.CaixaBrinquedo{CaixaID: caixaID, BrinquedoID: bid}
		}
		return tx.Create(&rows).Error
	})
}

func (r *caixaRepo) CreateMovimento(ctx context.Context, m *model.MovimentoCaixa) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *caixaRepo) ListMovimentos(ctx context.Context, caixaID uuid.UUID) ([]model.MovimentoCaixa, error) {
	var movs []model.MovimentoCaixa
	err := r.db.WithContext(ctx).
		Where("caixa_id = ?", caixaID).
		Order("data_hora DESC").
		Find(&movs).Error
	return movs, err
}
