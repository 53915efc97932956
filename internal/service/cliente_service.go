package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/marcusnog/playground-backend/internal/apierror"
	"github.com/marcusnog/playground-backend/internal/dto"
	"github.com/marcusnog/playground-backend/internal/model"
	"github.com/marcusnog/playground-backend/internal/repository"
)

type ClienteService interface {
	Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Buscar(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error)
	// Pesquisar matches the term against name and phone, case-insensitively.
	// An empty term returns an empty list, not everything.
	Pesquisar(ctx context.Context, term string) ([]dto.ClienteResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Criar(ctx context.Context, req dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	cliente := &model.Cliente{
		NomeCompleto:     req.NomeCompleto,
		DataNascimento:   req.DataNascimento,
		NomePai:          req.NomePai,
		NomeMae:          req.NomeMae,
		TelefoneWhatsapp: req.TelefoneWhatsapp,
	}
	if err := s.repo.Create(ctx, cliente); err != nil {
		return nil, err
	}
	resp := toClienteResponse(cliente)
	return &resp, nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return mapClientes(clientes), nil
}

func (s *clienteService) Buscar(ctx context.Context, id uuid.UUID) (*dto.ClienteResponse, error) {
	cliente, err := s.findCliente(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toClienteResponse(cliente)
	return &resp, nil
}

func (s *clienteService) Pesquisar(ctx context.Context, term string) ([]dto.ClienteResponse, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []dto.ClienteResponse{}, nil
	}
	clientes, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return mapClientes(clientes), nil
}

func (s *clienteService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarClienteRequest) (*dto.ClienteResponse, error) {
	cliente, err := s.findCliente(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.NomeCompleto != nil {
		cliente.NomeCompleto = *req.NomeCompleto
	}
	if req.DataNascimento != nil {
		cliente.DataNascimento = *req.DataNascimento
	}
	if req.NomePai != nil {
		cliente.NomePai = *req.NomePai
	}
	if req.NomeMae != nil {
		cliente.NomeMae = *req.NomeMae
	}
	if req.TelefoneWhatsapp != nil {
		cliente.TelefoneWhatsapp = *req.TelefoneWhatsapp
	}

	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	resp := toClienteResponse(cliente)
	return &resp, nil
}

func (s *clienteService) Excluir(ctx context.Context, id uuid.UUID) error {
	if _, err := s.findCliente(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *clienteService) findCliente(ctx context.Context, id uuid.UUID) (*model.Cliente, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("cliente não encontrado")
		}
		return nil, err
	}
	return cliente, nil
}

func mapClientes(clientes []model.Cliente) []dto.ClienteResponse {
	resp := make([]dto.ClienteResponse, len(clientes))
	for i := range clientes {
		resp[i] = toClienteResponse(&clientes[i])
	}
	return resp
}
