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

type FormaPagamentoService interface {
	Criar(ctx context.Context, req dto.CriarFormaPagamentoRequest) (*dto.FormaPagamentoResponse, error)
	Listar(ctx context.Context) ([]dto.FormaPagamentoResponse, error)
	Buscar(ctx context.Context, id uuid.UUID) (*dto.FormaPagamentoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarFormaPagamentoRequest) (*dto.FormaPagamentoResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type formaPagamentoService struct {
	repo repository.FormaPagamentoRepository
}

func NewFormaPagamentoService(repo repository.FormaPagamentoRepository) FormaPagamentoService {
	return &formaPagamentoService{repo: repo}
}

func (s *formaPagamentoService) Criar(ctx context.Context, req dto.CriarFormaPagamentoRequest) (*dto.FormaPagamentoResponse, error) {
	forma := &model.FormaPagamento{
		Descricao: req.Descricao,
		Status:    req.Status,
		PixChave:  req.PixChave,
		PixConta:  req.PixConta,
	}
	if err := s.repo.Create(ctx, forma); err != nil {
		return nil, err
	}
	resp := toFormaPagamentoResponse(forma)
	return &resp, nil
}

func (s *formaPagamentoService) Listar(ctx context.Context) ([]dto.FormaPagamentoResponse, error) {
	formas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.FormaPagamentoResponse, len(formas))
	for i := range formas {
		resp[i] = toFormaPagamentoResponse(&formas[i])
	}
	return resp, nil
}

func (s *formaPagamentoService) Buscar(ctx context.Context, id uuid.UUID) (*dto.FormaPagamentoResponse, error) {
	forma, err := s.findForma(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toFormaPagamentoResponse(forma)
	return &resp, nil
}

func (s *formaPagamentoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarFormaPagamentoRequest) (*dto.FormaPagamentoResponse, error) {
	forma, err := s.findForma(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Descricao != nil {
		forma.Descricao = *req.Descricao
	}
	if req.Status != nil {
		forma.Status = *req.Status
	}
	if req.PixChave != nil {
		forma.PixChave = req.PixChave
	}
	if req.PixConta != nil {
		forma.PixConta = req.PixConta
	}

	if err := s.repo.Update(ctx, forma); err != nil {
		return nil, err
	}
	resp := toFormaPagamentoResponse(forma)
	return &resp, nil
}

func (s *formaPagamentoService) Excluir(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findForma(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *formaPagamentoService) findForma(ctx context.Context, id uuid.UUID) (*model.FormaPagamento, error) {
	forma, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("forma de pagamento não encontrada")
		}
		return nil, err
	}
	return forma, nil
}
