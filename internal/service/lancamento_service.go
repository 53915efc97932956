package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marcusnog/playground-backend/internal/apierror"
	"github.com/marcusnog/playground-backend/internal/config"
	"github.com/marcusnog/playground-backend/internal/dto"
	"github.com/marcusnog/playground-backend/internal/infra"
	"github.com/marcusnog/playground-backend/internal/model"
	"github.com/marcusnog/playground-backend/internal/repository"
)

type LancamentoService interface {
	Criar(ctx context.Context, req dto.CriarLancamentoRequest) (*dto.LancamentoResponse, error)
	Listar(ctx context.Context, status *string, dia *time.Time) ([]dto.LancamentoResponse, error)
	Buscar(ctx context.Context, id uuid.UUID) (*dto.LancamentoResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarLancamentoRequest) (*dto.LancamentoResponse, error)
	Pagar(ctx context.Context, id uuid.UUID, req dto.PagarLancamentoRequest) (*dto.LancamentoResponse, error)
	Cancelar(ctx context.Context, id uuid.UUID) (*dto.LancamentoResponse, error)
	// Comprovante renders the payment voucher PDF for a paid entry and returns
	// the file path.
	Comprovante(ctx context.Context, id uuid.UUID) (string, error)
}

type lancamentoService struct {
	repo       repository.LancamentoRepository
	formas     repository.FormaPagamentoRepository
	parametros ParametrosService
	cfg        *config.Config
}

func NewLancamentoService(
	repo repository.LancamentoRepository,
	formas repository.FormaPagamentoRepository,
	parametros ParametrosService,
	cfg *config.Config,
) LancamentoService {
	return &lancamentoService{repo: repo, formas: formas, parametros: parametros, cfg: cfg}
}

func (s *lancamentoService) Criar(ctx context.Context, req dto.CriarLancamentoRequest) (*dto.LancamentoResponse, error) {
	dataHora := time.Now()
	if req.DataHora != nil {
		dataHora = *req.DataHora
	}

	l := &model.Lancamento{
		DataHora:            dataHora,
		NomeCrianca:         req.NomeCrianca,
		NomeResponsavel:     req.NomeResponsavel,
		TipoParente:         req.TipoParente,
		WhatsappResponsavel: req.WhatsappResponsavel,
		NumeroPulseira:      req.NumeroPulseira,
		TempoSolicitadoMin:  req.TempoSolicitadoMin,
		ValorCalculado:      *req.ValorCalculado,
		Status:              model.LancamentoAberto,
	}

	if req.BrinquedoID != nil {
		id, err := uuid.Parse(*req.BrinquedoID)
		if err != nil {
			return nil, apierror.Validation("brinquedoId inválido")
		}
		l.BrinquedoID = &id
	}
	if req.ClienteID != nil {
		id, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			return nil, apierror.Validation("clienteId inválido")
		}
		l.ClienteID = &id
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return s.Buscar(ctx, l.ID)
}

func (s *lancamentoService) Listar(ctx context.Context, status *string, dia *time.Time) ([]dto.LancamentoResponse, error) {
	lancamentos, err := s.repo.List(ctx, repository.LancamentoFilter{Status: status, Dia: dia})
	if err != nil {
		return nil, err
	}
	resp := make([]dto.LancamentoResponse, len(lancamentos))
	for i := range lancamentos {
		resp[i] = toLancamentoResponse(&lancamentos[i])
	}
	return resp, nil
}

func (s *lancamentoService) Buscar(ctx context.Context, id uuid.UUID) (*dto.LancamentoResponse, error) {
	l, err := s.findLancamento(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toLancamentoResponse(l)
	return &resp, nil
}

func (s *lancamentoService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarLancamentoRequest) (*dto.LancamentoResponse, error) {
	l, err := s.findLancamento(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.Status != model.LancamentoAberto {
		return nil, apierror.Validation("lançamento não está aberto")
	}

	fields := map[string]interface{}{}
	if req.DataHora != nil {
		fields["data_hora"] = *req.DataHora
	}
	if req.NomeCrianca != nil {
		fields["nome_crianca"] = *req.NomeCrianca
	}
	if req.NomeResponsavel != nil {
		fields["nome_responsavel"] = *req.NomeResponsavel
	}
	if req.TipoParente != nil {
		fields["tipo_parente"] = *req.TipoParente
	}
	if req.WhatsappResponsavel != nil {
		fields["whatsapp_responsavel"] = *req.WhatsappResponsavel
	}
	if req.NumeroPulseira != nil {
		fields["numero_pulseira"] = *req.NumeroPulseira
	}
	if req.TempoSolicitadoMin != nil {
		fields["tempo_solicitado_min"] = *req.TempoSolicitadoMin
	}
	if req.ValorCalculado != nil {
		fields["valor_calculado"] = *req.ValorCalculado
	}
	if req.BrinquedoID != nil {
		bid, err := uuid.Parse(*req.BrinquedoID)
		if err != nil {
			return nil, apierror.Validation("brinquedoId inválido")
		}
		fields["brinquedo_id"] = bid
	}
	if req.ClienteID != nil {
		cid, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			return nil, apierror.Validation("clienteId inválido")
		}
		fields["cliente_id"] = cid
	}

	if len(fields) > 0 {
		if err := s.repo.Updates(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.Buscar(ctx, id)
}

func (s *lancamentoService) Pagar(ctx context.Context, id uuid.UUID, req dto.PagarLancamentoRequest) (*dto.LancamentoResponse, error) {
	if _, err := s.findLancamento(ctx, id); err != nil {
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

	ok, err := s.repo.UpdateStatus(ctx, id, model.LancamentoAberto, model.LancamentoPago,
		map[string]interface{}{"forma_pagamento_id": formaID})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.Validation("lançamento não está aberto")
	}

	return s.Buscar(ctx, id)
}

func (s *lancamentoService) Cancelar(ctx context.Context, id uuid.UUID) (*dto.LancamentoResponse, error) {
	if _, err := s.findLancamento(ctx, id); err != nil {
		return nil, err
	}

	ok, err := s.repo.UpdateStatus(ctx, id, model.LancamentoAberto, model.LancamentoCancelado, nil)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.Validation("lançamento não está aberto")
	}

	return s.Buscar(ctx, id)
}

func (s *lancamentoService) Comprovante(ctx context.Context, id uuid.UUID) (string, error) {
	l, err := s.findLancamento(ctx, id)
	if err != nil {
		return "", err
	}
	if l.Status != model.LancamentoPago {
		return "", apierror.Validation("comprovante disponível apenas para lançamentos pagos")
	}

	params, err := s.parametros.Carregar(ctx)
	if err != nil {
		return "", err
	}
	return infra.GenerateComprovantePDF(l, params, s.cfg.PDFStoragePath)
}

func (s *lancamentoService) findLancamento(ctx context.Context, id uuid.UUID) (*model.Lancamento, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("lançamento não encontrado")
		}
		return nil, err
	}
	return l, nil
}
