package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marcusnog/playground-backend/internal/apierror"
	"github.com/marcusnog/playground-backend/internal/dto"
	"github.com/marcusnog/playground-backend/internal/model"
	"github.com/marcusnog/playground-backend/internal/repository"
)

type BrinquedoService interface {
	Criar(ctx context.Context, req dto.CriarBrinquedoRequest) (*dto.BrinquedoResponse, error)
	Listar(ctx context.Context) ([]dto.BrinquedoResponse, error)
	Buscar(ctx context.Context, id uuid.UUID) (*dto.BrinquedoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarBrinquedoRequest) (*dto.BrinquedoResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type brinquedoService struct {
	repo repository.BrinquedoRepository
}

func NewBrinquedoService(repo repository.BrinquedoRepository) BrinquedoService {
	return &brinquedoService{repo: repo}
}

func (s *brinquedoService) Criar(ctx context.Context, req dto.CriarBrinquedoRequest) (*dto.BrinquedoResponse, error) {
	b := &model.Brinquedo{
		Nome:           req.Nome,
		InicialMinutos: req.InicialMinutos,
		ValorInicial:   *req.ValorInicial,
		CicloMinutos:   req.CicloMinutos,
	}
	if req.ValorCiclo != nil {
		b.ValorCiclo = *req.ValorCiclo
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	resp := toBrinquedoResponse(b)
	return &resp, nil
}

func (s *brinquedoService) Listar(ctx context.Context) ([]dto.BrinquedoResponse, error) {
	brinquedos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.BrinquedoResponse, len(brinquedos))
	for i := range brinquedos {
		resp[i] = toBrinquedoResponse(&brinquedos[i])
	}
	return resp, nil
}

func (s *brinquedoService) Buscar(ctx context.Context, id uuid.UUID) (*dto.BrinquedoResponse, error) {
	b, err := s.findBrinquedo(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toBrinquedoResponse(b)
	return &resp, nil
}

func (s *brinquedoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarBrinquedoRequest) (*dto.BrinquedoResponse, error) {
	b, err := s.findBrinquedo(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		b.Nome = *req.Nome
	}
	if req.InicialMinutos != nil {
		b.InicialMinutos = req.InicialMinutos
	}
	if req.ValorInicial != nil {
		b.ValorInicial = *req.ValorInicial
	}
	if req.CicloMinutos != nil {
		b.CicloMinutos = req.CicloMinutos
	}
	if req.ValorCiclo != nil {
		b.ValorCiclo = *req.ValorCiclo
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	resp := toBrinquedoResponse(b)
	return &resp, nil
}

func (s *brinquedoService) Excluir(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findBrinquedo(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *brinquedoService) findBrinquedo(ctx context.Context, id uuid.UUID) (*model.Brinquedo, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("brinquedo não encontrado")
		}
		return nil, err
	}
	return b, nil
}
