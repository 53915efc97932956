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

type CaixaService interface {
	// Abrir opens a register. With req.ID it reopens an existing one; without,
	// it creates a new register already open. created reports the second form.
	Abrir(ctx context.Context, req dto.AbrirCaixaRequest) (resp *dto.CaixaResponse, created bool, err error)
	Fechar(ctx context.Context, id uuid.UUID) (*dto.CaixaResponse, error)
	// RegistrarMovimento appends a sangria or suprimento to an open register
	// and returns the created movement.
	RegistrarMovimento(ctx context.Context, id uuid.UUID, tipo string, req dto.MovimentoCaixaRequest) (*dto.MovimentoCaixaResponse, error)
	Criar(ctx context.Context, req dto.CriarCaixaRequest) (*dto.CaixaResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarCaixaRequest) (*dto.CaixaResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
	Buscar(ctx context.Context, id uuid.UUID) (*dto.CaixaResponse, error)
	Listar(ctx context.Context) ([]dto.CaixaResponse, error)
	// BuscarAberto returns the first open register, or nil when none is open.
	BuscarAberto(ctx context.Context) (*dto.CaixaResponse, error)
	ListarMovimentos(ctx context.Context, id uuid.UUID) ([]dto.MovimentoCaixaResponse, error)
}

type caixaService struct {
	repo repository.CaixaRepository
}

func NewCaixaService(repo repository.CaixaRepository) CaixaService {
	return &caixaService{repo: repo}
}

func (s *caixaService) Abrir(ctx context.Context, req dto.AbrirCaixaRequest) (*dto.CaixaResponse, bool, error) {
	if req.ID == nil {
		return s.abrirNovo(ctx, req)
	}

	id, err := uuid.Parse(*req.ID)
	if err != nil {
		return nil, false, apierror.Validation("id de caixa inválido")
	}

	caixa, err := s.findCaixa(ctx, id)
	if err != nil {
		return nil, false, err
	}
	if caixa.Bloqueado {
		return nil, false, apierror.Forbidden("caixa bloqueado")
	}

	// Only overwrite the business date and opening float when supplied.
	extra := map[string]interface{}{}
	if req.Data != "" {
		extra["data"] = req.Data
	}
	if req.ValorInicial != nil {
		extra["valor_inicial"] = *req.ValorInicial
	}

	ok, err := s.repo.UpdateStatus(ctx, id, model.CaixaFechado, model.CaixaAberto, extra)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return nil, false, apierror.Validation("caixa já está aberto")
	}

	resp, err := s.Buscar(ctx, id)
	return resp, false, err
}

func (s *caixaService) abrirNovo(ctx context.Context, req dto.AbrirCaixaRequest) (*dto.CaixaResponse, bool, error) {
	if req.Nome == "" || req.Data == "" || req.ValorInicial == nil {
		return nil, false, apierror.Validation("nome, data e valorInicial são obrigatórios para abrir um novo caixa")
	}

	caixa := &model.Caixa{
		Nome:         req.Nome,
		Data:         req.Data,
		ValorInicial: *req.ValorInicial,
		Status:       model.CaixaAberto,
	}
	if err := s.repo.Create(ctx, caixa); err != nil {
		return nil, false, err
	}

	resp, err := s.Buscar(ctx, caixa.ID)
	return resp, true, err
}

func (s *caixaService) Fechar(ctx context.Context, id uuid.UUID) (*dto.CaixaResponse, error) {
	if _, err := s.findCaixa(ctx, id); err != nil {
		return nil, err
	}

	ok, err := s.repo.UpdateStatus(ctx, id, model.CaixaAberto, model.CaixaFechado, nil)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apierror.Validation("caixa já está fechado")
	}

	return s.Buscar(ctx, id)
}

func (s *caixaService) RegistrarMovimento(ctx context.Context, id uuid.UUID, tipo string, req dto.MovimentoCaixaRequest) (*dto.MovimentoCaixaResponse, error) {
	if !req.Valor.GreaterThan(decimal.Zero) {
		return nil, apierror.Validation("valor deve ser maior que zero")
	}

	caixa, err := s.findCaixa(ctx, id)
	if err != nil {
		return nil, err
	}
	if caixa.Bloqueado {
		return nil, apierror.Forbidden("caixa bloqueado")
	}
	if caixa.Status != model.CaixaAberto {
		return nil, apierror.Validation("caixa não está aberto")
	}

	mov := &model.MovimentoCaixa{
		CaixaID:  id,
		DataHora: time.Now(),
		Tipo:     tipo,
		Valor:    req.Valor,
		Motivo:   req.Motivo,
	}
	if err := s.repo.CreateMovimento(ctx, mov); err != nil {
		return nil, err
	}

	resp := toMovimentoResponse(mov)
	return &resp, nil
}

func (s *caixaService) Criar(ctx context.Context, req dto.CriarCaixaRequest) (*dto.CaixaResponse, error) {
	data := req.Data
	if data == "" {
		data = time.Now().Format("2006-01-02")
	}

	// Administrative creation always yields a closed register with a zero
	// float; opening sets the real values.
	caixa := &model.Caixa{
		Nome:         req.Nome,
		Data:         data,
		ValorInicial: decimal.Zero,
		Status:       model.CaixaFechado,
		Bloqueado:    req.Bloqueado,
	}
	if err := s.repo.Create(ctx, caixa); err != nil {
		return nil, err
	}

	if len(req.BrinquedoIds) > 0 {
		ids, err := parseUUIDs(req.BrinquedoIds)
		if err != nil {
			return nil, apierror.Validation("brinquedoIds contém id inválido")
		}
		if err := s.repo.ReplaceBrinquedos(ctx, caixa.ID, ids); err != nil {
			return nil, err
		}
	}

	return s.Buscar(ctx, caixa.ID)
}

func (s *caixaService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarCaixaRequest) (*dto.CaixaResponse, error) {
	caixa, err := s.findCaixa(ctx, id)
	if err != nil {
		return nil, err
	}
	if caixa.Status == model.CaixaAberto {
		return nil, apierror.Validation("caixa aberto não pode ser alterado")
	}

	fields := map[string]interface{}{}
	if req.Nome != nil {
		fields["nome"] = *req.Nome
	}
	if req.Data != nil {
		fields["data"] = *req.Data
	}
	if req.Bloqueado != nil {
		fields["bloqueado"] = *req.Bloqueado
	}
	if len(fields) > 0 {
		if err := s.repo.Updates(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	if req.BrinquedoIds != nil {
		ids, err := parseUUIDs(*req.BrinquedoIds)
		if err != nil {
			return nil, apierror.Validation("brinquedoIds contém id inválido")
		}
		if err := s.repo.ReplaceBrinquedos(ctx, id, ids); err != nil {
			return nil, err
		}
	}

	return s.Buscar(ctx, id)
}

func (s *caixaService) Excluir(ctx context.Context, id uuid.UUID) error {
	caixa, err := s.findCaixa(ctx, id)
	if err != nil {
		return err
	}
	if caixa.Status == model.CaixaAberto {
		return apierror.Validation("caixa aberto não pode ser excluído")
	}
	return s.repo.Delete(ctx, id)
}

func (s *caixaService) Buscar(ctx context.Context, id uuid.UUID) (*dto.CaixaResponse, error) {
	caixa, err := s.findCaixa(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toCaixaResponse(caixa)
	return &resp, nil
}

func (s *caixaService) Listar(ctx context.Context) ([]dto.CaixaResponse, error) {
	caixas, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CaixaResponse, len(caixas))
	for i := range caixas {
		resp[i] = toCaixaResponse(&caixas[i])
	}
	return resp, nil
}

func (s *caixaService) BuscarAberto(ctx context.Context) (*dto.CaixaResponse, error) {
	caixa, err := s.repo.FindAberto(ctx)
	if err != nil {
		return nil, err
	}
	if caixa == nil {
		return nil, nil
	}
	resp := toCaixaResponse(caixa)
	return &resp, nil
}

func (s *caixaService) ListarMovimentos(ctx context.Context, id uuid.UUID) ([]dto.MovimentoCaixaResponse, error) {
	if _, err := s.findCaixa(ctx, id); err != nil {
		return nil, err
	}
	movs, err := s.repo.ListMovimentos(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.MovimentoCaixaResponse, len(movs))
	for i := range movs {
		resp[i] = toMovimentoResponse(&movs[i])
	}
	return resp, nil
}

func (s *caixaService) findCaixa(ctx context.Context, id uuid.UUID) (*model.Caixa, error) {
	caixa, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("caixa não encontrado")
		}
		return nil, err
	}
	return caixa, nil
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(raw))
	for i, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
