package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcusnog/playground-backend/internal/dto"
	"github.com/marcusnog/playground-backend/internal/model"
)

func intPtr(v int) *int { return &v }

func TestParametrosBuscar_CriaPadroesNaPrimeiraLeitura(t *testing.T) {
	repo := &memParametrosRepo{}
	svc := NewParametrosService(repo, nil)

	resp, err := svc.Buscar(context.Background())
	require.NoError(t, err)

	assert.Equal(t, model.ParametrosID, resp.ID)
	assert.Equal(t, 30, resp.ValorInicialMinutos)
	assert.True(t, resp.ValorInicialReais.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, 15, resp.ValorCicloMinutos)
	assert.True(t, resp.ValorCicloReais.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "Parque Infantil", resp.EmpresaNome)
	assert.Equal(t, "00.000.000/0000-00", resp.EmpresaCnpj)
	assert.Equal(t, "Sua Cidade", resp.PixCidade)
	assert.Empty(t, resp.PixChave)

	// the lazily created row is now persisted
	require.NotNil(t, repo.row)
}

func TestParametrosAtualizar_PatchParcial(t *testing.T) {
	svc := NewParametrosService(&memParametrosRepo{}, nil)
	ctx := context.Background()

	resp, err := svc.Atualizar(ctx, dto.AtualizarParametrosRequest{
		ValorCicloMinutos: intPtr(20),
		EmpresaNome:       strPtr("Parque do Zé"),
		PixChave:          strPtr("ze@example.com"),
	})
	require.NoError(t, err)

	assert.Equal(t, 20, resp.ValorCicloMinutos)
	assert.Equal(t, "Parque do Zé", resp.EmpresaNome)
	assert.Equal(t, "ze@example.com", resp.PixChave)

	// untouched fields keep their defaults
	assert.Equal(t, 30, resp.ValorInicialMinutos)
	assert.True(t, resp.ValorInicialReais.Equal(decimal.NewFromInt(20)))

	relido, err := svc.Buscar(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Parque do Zé", relido.EmpresaNome)
	assert.Equal(t, 20, relido.ValorCicloMinutos)
}

func TestParametrosCarregar_Idempotente(t *testing.T) {
	repo := &memParametrosRepo{}
	svc := NewParametrosService(repo, nil)
	ctx := context.Background()

	primeiro, err := svc.Carregar(ctx)
	require.NoError(t, err)

	primeiro.EmpresaNome = "Alterado"
	require.NoError(t, repo.Save(ctx, primeiro))

	segundo, err := svc.Carregar(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Alterado", segundo.EmpresaNome)
}
