package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/marcusnog/playground-backend/internal/apierror"
	"github.com/marcusnog/playground-backend/internal/dto"
	"github.com/marcusnog/playground-backend/internal/model"
	"github.com/marcusnog/playground-backend/internal/repository"
)

type EstacionamentoService interface {
	Criar(ctx context.Context, req dto.CriarEstacionamentoRequest) (*dto.EstacionamentoResponse, error)
	Listar(ctx context.Context) ([]dto.EstacionamentoResponse, error)
	Buscar(ctx context.Context, id uuid.UUID) (*dto.EstacionamentoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarEstacionamentoRequest) (*dto.EstacionamentoResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error

	CriarLancamento(ctx context.Context, req dto.CriarLancamentoEstacionamentoRequest) (*dto.LancamentoEstacionamentoResponse, error)
	ListarLancamentos(ctx context.Context, f repository.LancamentoEstacionamentoFilter) ([]dto.LancamentoEstacionamentoResponse, error)
	BuscarLancamento(ctx context.Context, id uuid.UUID) (*dto.LancamentoEstacionamentoResponse, error)
	PagarLancamento(ctx context.Context, id uuid.UUID, req dto.PagarLancamentoRequest) (*dto.LancamentoEstacionamentoResponse, error)
	CancelarLancamento(ctx context.Context, id uuid.UUID) (*dto.LancamentoEstacionamentoResponse, error)
}

type estacionamentoService struct {
	repo   repository.EstacionamentoRepository
	caixas repository.CaixaRepository
	formas repository.FormaPagamentoRepository
}

func NewEstacionamentoService(
	repo repository.EstacionamentoRepository,
	caixas repository.CaixaRepository,
	formas repository.FormaPagamentoRepository,
) EstacionamentoService {
	return &estacionamentoService{repo: repo, caixas: caixas, formas: formas}
}

func (s *estacionamentoService) Criar(ctx context.Context, req dto.CriarEstacionamentoRequest) (*dto.EstacionamentoResponse, error) {
	caixaID, err := uuid.Parse(req.CaixaID)
	if err != nil {
		return nil, apierror.Validation("caixaId inválido")
	}
	if _, err := s.caixas.FindByID(ctx, caixaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Validation("caixa não encontrado")
		}
		return nil, err
	}

	lot := &model.Estacionamento{
		Nome:    req.Nome,
		Valor:   *req.Valor,
		CaixaID: caixaID,
	}
	if err := s.repo.Create(ctx, lot); err != nil {
		return nil, err
	}
	return s.Buscar(ctx, lot.ID)
}

func (s *estacionamentoService) Listar(ctx context.Context) ([]dto.EstacionamentoResponse, error) {
	lots, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.EstacionamentoResponse, len(lots))
	for i := range lots {
		resp[i] = toEstacionamentoResponse(&lots[i])
	}
	return resp, nil
}

func (s *estacionamentoService) Buscar(ctx context.Context, id uuid.UUID) (*dto.EstacionamentoResponse, error) {
	lot, err := s.findLot(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toEstacionamentoResponse(lot)
	return &resp, nil
}

func (s *estacionamentoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarEstacionamentoRequest) (*dto.EstacionamentoResponse, error) {
	lot, err := s.findLot(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Nome != nil {
		lot.Nome = *req.Nome
	}
	if req.Valor != nil {
		lot.Valor = *req.Valor
	}
	if req.CaixaID != nil {
		caixaID, err := uuid.Parse(*req.CaixaID)
		if err != nil {
			return nil, apierror.Validation("caixaId inválido")
		}
		lot.CaixaID = caixaID
	}

	lot.Caixa = nil // avoid Save cascading into the association
	if err := s.repo.Update(ctx, lot); err != nil {
		return nil, err
	}
	return s.Buscar(ctx, id)
}

func (s *estacionamentoService) Excluir(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findLot(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *estacionamentoService) CriarLancamento(ctx context.Context, req dto.CriarLancamentoEstacionamentoRequest) (*dto.LancamentoEstacionamentoResponse, error) {
	lotID, err := uuid.Parse(req.EstacionamentoID)
	if err != nil {
		return nil, apierror.Validation("estacionamentoId inválido")
	}
	lot, err := s.findLot(ctx, lotID)
	if err != nil {
		return nil, err
	}

	dataHora := time.Now()
	if req.DataHora != nil {
		dataHora = *req.DataHora
	}

	// Absent or zero value falls back to the lot's configured rate.
	valor := lot.Valor
	if req.Valor != nil && req.Valor.GreaterThan(decimal.Zero) {
		valor = *req.Valor
	}

	entry := &model.LancamentoEstacionamento{
		DataHora:         dataHora,
		EstacionamentoID: lotID,
		Placa:            req.Placa,
		Modelo:           req.Modelo,
		TelefoneContato:  req.TelefoneContato,
		Valor:            valor,
		Status:           model.LancamentoAberto,
	}
	if err := s.repo.CreateLancamento(ctx, entry); err != nil {
		return nil, err
	}
	return s.buscarLancamento(ctx, entry.ID)
}

func (s *estacionamentoService) ListarLancamentos(ctx context.Context, f repository.LancamentoEstacionamentoFilter) ([]dto.LancamentoEstacionamentoResponse, error) {
	entries, err := s.repo.ListLancamentos(ctx, f)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.LancamentoEstacionamentoResponse, len(entries))
	for i := range entries {
		resp[i] = toLancamentoEstacionamentoResponse(&entries[i])
	}
	return resp, nil
}

func (s *estacionamentoService) BuscarLancamento(ctx context.Context, id uuid.UUID) (*dto.LancamentoEstacionamentoResponse, error) {
	return s.buscarLancamento(ctx, id)
}

func (s *estacionamentoService) PagarLancamento(ctx context.Context, id uuid.UUID, req dto.PagarLancamentoRequest) (*dto.LancamentoEstacionamentoResponse, error) {
	if _, err := s.buscarLancamento(ctx, id); err != nil {
		return nil, err
	}

	formaID, err := uuid.Parse(req.FormaPagamentoID)
	if err != nil {
		return nil, apierror.Validation("formaPagamentoId inválido")
	}
	if _, err := s.formas.FindByID(ctx, formaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Validation("forma de pagamento não encontrada")
		}
		return nil, err
	}

	ok, err := s.repo.UpdateLancamentoStatus(ctx, id, model.LancamentoAberto, model.LancamentoPago,
		map[string]interface{}{"forma_pagamento_id": formaID})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.Validation("lançamento não está aberto")
	}

	return s.buscarLancamento(ctx, id)
}

func (s *estacionamentoService) CancelarLancamento(ctx context.Context, id uuid.UUID) (*dto.LancamentoEstacionamentoResponse, error) {
	if _, err := s.buscarLancamento(ctx, id); err != nil {
		return nil, err
	}

	ok, err := s.repo.UpdateLancamentoStatus(ctx, id, model.LancamentoAberto, model.LancamentoCancelado, nil)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.Validation("lançamento não está aberto")
	}

	return s.buscarLancamento(ctx, id)
}

func (s *estacionamentoService) findLot(ctx context.Context, id uuid.UUID) (*model.Estacionamento, error) {
	lot, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("estacionamento não encontrado")
		}
		return nil, err
	}
	return lot, nil
}

func (s *estacionamentoService) buscarLancamento(ctx context.Context, id uuid.UUID) (*dto.LancamentoEstacionamentoResponse, error) {
	entry, err := s.repo.FindLancamentoByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("lançamento não encontrado")
		}
		return nil, err
	}
	resp := toLancamentoEstacionamentoResponse(entry)
	return &resp, nil
}
