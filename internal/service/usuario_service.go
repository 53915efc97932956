package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/marcusnog/playground-backend/internal/apierror"
	"github.com/marcusnog/playground-backend/internal/dto"
	"github.com/marcusnog/playground-backend/internal/model"
	"github.com/marcusnog/playground-backend/internal/repository"
)

const bcryptCost = 12

type UsuarioService interface {
	Criar(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error)
	Listar(ctx context.Context) ([]dto.UsuarioResponse, error)
	Buscar(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error)
	Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	Excluir(ctx context.Context, id uuid.UUID) error
}

type usuarioService struct {
	repo repository.UsuarioRepository
}

func NewUsuarioService(repo repository.UsuarioRepository) UsuarioService {
	return &usuarioService{repo: repo}
}

func (s *usuarioService) Criar(ctx context.Context, req dto.CriarUsuarioRequest) (*dto.UsuarioResponse, error) {
	if existing, err := s.repo.FindByApelido(ctx, req.Apelido); err == nil && existing != nil {
		return nil, apierror.Validation("apelido já está em uso")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.Usuario{
		NomeCompleto: req.NomeCompleto,
		Apelido:      req.Apelido,
		Contato:      req.Contato,
		Senha:        string(hash),
		Bloqueado:    req.Bloqueado,
		UsaCaixa:     req.UsaCaixa,

		Acompanhamento:                req.Acompanhamento,
		Lancamento:                    req.Lancamento,
		CaixaAbertura:                 req.CaixaAbertura,
		CaixaFechamento:               req.CaixaFechamento,
		CaixaSangria:                  req.CaixaSangria,
		CaixaSuprimento:               req.CaixaSuprimento,
		EstacionamentoCadastro:        req.EstacionamentoCadastro,
		EstacionamentoCaixaAbertura:   req.EstacionamentoCaixaAbertura,
		EstacionamentoCaixaFechamento: req.EstacionamentoCaixaFechamento,
		EstacionamentoLancamento:      req.EstacionamentoLancamento,
		EstacionamentoAcompanhamento:  req.EstacionamentoAcompanhamento,
		Relatorios:                    req.Relatorios,
		ParametrosEmpresa:             req.ParametrosEmpresa,
		ParametrosFormasPagamento:     req.ParametrosFormasPagamento,
		ParametrosBrinquedos:          req.ParametrosBrinquedos,
		Clientes:                      req.Clientes,
	}

	if req.CaixaID != nil {
		caixaID, err := uuid.Parse(*req.CaixaID)
		if err != nil {
			return nil, apierror.Validation("caixaId inválido")
		}
		user.CaixaID = &caixaID
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	resp := toUsuarioResponse(user)
	return &resp, nil
}

func (s *usuarioService) Listar(ctx context.Context) ([]dto.UsuarioResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.UsuarioResponse, len(users))
	for i := range users {
		resp[i] = toUsuarioResponse(&users[i])
	}
	return resp, nil
}

func (s *usuarioService) Buscar(ctx context.Context, id uuid.UUID) (*dto.UsuarioResponse, error) {
	user, err := s.findUsuario(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toUsuarioResponse(user)
	return &resp, nil
}

func (s *usuarioService) Atualizar(ctx context.Context, id uuid.UUID, req dto.AtualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, err := s.findUsuario(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Apelido != nil && *req.Apelido != user.Apelido {
		if existing, err := s.repo.FindByApelido(ctx, *req.Apelido); err == nil && existing != nil {
			return nil, apierror.Validation("apelido já está em uso")
		}
		user.Apelido = *req.Apelido
	}
	if req.NomeCompleto != nil {
		user.NomeCompleto = *req.NomeCompleto
	}
	if req.Contato != nil {
		user.Contato = *req.Contato
	}
	if req.Senha != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Senha), bcryptCost)
		if err != nil {
			return nil, err
		}
		user.Senha = string(hash)
	}
	if req.UsaCaixa != nil {
		user.UsaCaixa = *req.UsaCaixa
	}
	if req.CaixaID != nil {
		caixaID, err := uuid.Parse(*req.CaixaID)
		if err != nil {
			return nil, apierror.Validation("caixaId inválido")
		}
		user.CaixaID = &caixaID
	}
	if req.Bloqueado != nil {
		user.Bloqueado = *req.Bloqueado
	}

	applyFlag := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	applyFlag(&user.Acompanhamento, req.Acompanhamento)
	applyFlag(&user.Lancamento, req.Lancamento)
	applyFlag(&user.CaixaAbertura, req.CaixaAbertura)
	applyFlag(&user.CaixaFechamento, req.CaixaFechamento)
	applyFlag(&user.CaixaSangria, req.CaixaSangria)
	applyFlag(&user.CaixaSuprimento, req.CaixaSuprimento)
	applyFlag(&user.EstacionamentoCadastro, req.EstacionamentoCadastro)
	applyFlag(&user.EstacionamentoCaixaAbertura, req.EstacionamentoCaixaAbertura)
	applyFlag(&user.EstacionamentoCaixaFechamento, req.EstacionamentoCaixaFechamento)
	applyFlag(&user.EstacionamentoLancamento, req.EstacionamentoLancamento)
	applyFlag(&user.EstacionamentoAcompanhamento, req.EstacionamentoAcompanhamento)
	applyFlag(&user.Relatorios, req.Relatorios)
	applyFlag(&user.ParametrosEmpresa, req.ParametrosEmpresa)
	applyFlag(&user.ParametrosFormasPagamento, req.ParametrosFormasPagamento)
	applyFlag(&user.ParametrosBrinquedos, req.ParametrosBrinquedos)
	applyFlag(&user.Clientes, req.Clientes)

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	resp := toUsuarioResponse(user)
	return &resp, nil
}

func (s *usuarioService) Excluir(ctx context.Context, id uuid.UUID) error {
	user, err := s.findUsuario(ctx, id)
	if err != nil {
		return err
	}
	if user.Protegido {
		return apierror.Validation("usuário protegido não pode ser excluído")
	}
	return s.repo.Delete(ctx, id)
}

func (s *usuarioService) findUsuario(ctx context.Context, id uuid.UUID) (*model.Usuario, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("usuário não encontrado")
		}
		return nil, err
	}
	return user, nil
}
