package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/marcusnog/playground-backend/internal/dto"
	"github.com/marcusnog/playground-backend/internal/model"
	"github.com/marcusnog/playground-backend/internal/repository"
)

const (
	parametrosCacheKey = "parametros:global"
	parametrosCacheTTL = 5 * time.Minute
)

type ParametrosService interface {
	Buscar(ctx context.Context) (*dto.ParametrosResponse, error)
	Atualizar(ctx context.Context, req dto.AtualizarParametrosRequest) (*dto.ParametrosResponse, error)
	// Carregar returns the singleton model, creating it with defaults on first
	// read. Used internally where the raw model is needed (receipt generation).
	Carregar(ctx context.Context) (*model.Parametros, error)
}

type parametrosService struct {
	repo repository.ParametrosRepository
	rdb  *redis.Client // nil disables caching
}

func NewParametrosService(repo repository.ParametrosRepository, rdb *redis.Client) ParametrosService {
	return &parametrosService{repo: repo, rdb: rdb}
}

func (s *parametrosService) Buscar(ctx context.Context) (*dto.ParametrosResponse, error) {
	if cached := s.fromCache(ctx); cached != nil {
		return cached, nil
	}

	params, err := s.Carregar(ctx)
	if err != nil {
		return nil, err
	}

	resp := toParametrosResponse(params)
	s.toCache(ctx, &resp)
	return &resp, nil
}

func (s *parametrosService) Atualizar(ctx context.Context, req dto.AtualizarParametrosRequest) (*dto.ParametrosResponse, error) {
	params, err := s.Carregar(ctx)
	if err != nil {
		return nil, err
	}

	if req.ValorInicialMinutos != nil {
		params.ValorInicialMinutos = *req.ValorInicialMinutos
	}
	if req.ValorInicialReais != nil {
		params.ValorInicialReais = *req.ValorInicialReais
	}
	if req.ValorCicloMinutos != nil {
		params.ValorCicloMinutos = *req.ValorCicloMinutos
	}
	if req.ValorCicloReais != nil {
		params.ValorCicloReais = *req.ValorCicloReais
	}
	if req.EmpresaNome != nil {
		params.EmpresaNome = *req.EmpresaNome
	}
	if req.EmpresaCnpj != nil {
		params.EmpresaCnpj = *req.EmpresaCnpj
	}
	if req.EmpresaLogoUrl != nil {
		params.EmpresaLogoUrl = *req.EmpresaLogoUrl
	}
	if req.PixChave != nil {
		params.PixChave = *req.PixChave
	}
	if req.PixCidade != nil {
		params.PixCidade = *req.PixCidade
	}

	if err := s.repo.Save(ctx, params); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	resp := toParametrosResponse(params)
	return &resp, nil
}

func (s *parametrosService) Carregar(ctx context.Context) (*model.Parametros, error) {
	params, err := s.repo.Find(ctx)
	if err != nil {
		return nil, err
	}
	if params == nil {
		params = model.DefaultParametros()
		if err := s.repo.Create(ctx, params); err != nil {
			return nil, err
		}
	}
	return params, nil
}

func (s *parametrosService) fromCache(ctx context.Context) *dto.ParametrosResponse {
	if s.rdb == nil {
		return nil
	}
	raw, err := s.rdb.Get(ctx, parametrosCacheKey).Bytes()
	if err != nil {
		return nil
	}
	var resp dto.ParametrosResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *parametrosService) toCache(ctx context.Context, resp *dto.ParametrosResponse) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, parametrosCacheKey, raw, parametrosCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("parametros cache write failed")
	}
}

func (s *parametrosService) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, parametrosCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("parametros cache invalidation failed")
	}
}
