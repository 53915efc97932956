package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcusnog/playground-backend/internal/apierror"
	"github.com/marcusnog/playground-backend/internal/dto"
	"github.com/marcusnog/playground-backend/internal/model"
)

func assertStatus(t *testing.T, err error, want int) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, want, apierror.From(err).StatusCode)
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func strPtr(s string) *string { return &s }

func seedCaixa(repo *memCaixaRepo, status string, bloqueado bool) uuid.UUID {
	id := uuid.New()
	repo.caixas[id] = &model.Caixa{
		ID:           id,
		Nome:         "Caixa Principal",
		Data:         "2026-08-01",
		ValorInicial: decimal.NewFromInt(100),
		Status:       status,
		Bloqueado:    bloqueado,
	}
	return id
}

func TestCaixaAbrir_NovoSemCamposObrigatorios(t *testing.T) {
	svc := NewCaixaService(newMemCaixaRepo())

	_, _, err := svc.Abrir(context.Background(), dto.AbrirCaixaRequest{Nome: "Caixa 1"})
	assertStatus(t, err, http.StatusBadRequest)
}

func TestCaixaAbrir_NovoCriaAberto(t *testing.T) {
	repo := newMemCaixaRepo()
	svc := NewCaixaService(repo)

	resp, created, err := svc.Abrir(context.Background(), dto.AbrirCaixaRequest{
		Nome:         "Caixa 1",
		Data:         "2026-08-02",
		ValorInicial: decPtr(50),
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, model.CaixaAberto, resp.Status)
	assert.True(t, resp.ValorInicial.Equal(decimal.NewFromInt(50)))
}

func TestCaixaAbrir_Existente(t *testing.T) {
	t.Run("desconhecido retorna 404", func(t *testing.T) {
		svc := NewCaixaService(newMemCaixaRepo())
		id := uuid.NewString()
		_, _, err := svc.Abrir(context.Background(), dto.AbrirCaixaRequest{ID: &id})
		assertStatus(t, err, http.StatusNotFound)
	})

	t.Run("bloqueado retorna 403", func(t *testing.T) {
		repo := newMemCaixaRepo()
		id := seedCaixa(repo, model.CaixaFechado, true)
		svc := NewCaixaService(repo)
		idStr := id.String()
		_, _, err := svc.Abrir(context.Background(), dto.AbrirCaixaRequest{ID: &idStr})
		assertStatus(t, err, http.StatusForbidden)
	})

	t.Run("já aberto retorna 400", func(t *testing.T) {
		repo := newMemCaixaRepo()
		id := seedCaixa(repo, model.CaixaAberto, false)
		svc := NewCaixaService(repo)
		idStr := id.String()
		_, _, err := svc.Abrir(context.Background(), dto.AbrirCaixaRequest{ID: &idStr})
		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("reabertura preserva valorInicial quando omitido", func(t *testing.T) {
		repo := newMemCaixaRepo()
		id := seedCaixa(repo, model.CaixaFechado, false)
		svc := NewCaixaService(repo)
		idStr := id.String()
		resp, created, err := svc.Abrir(context.Background(), dto.AbrirCaixaRequest{ID: &idStr})
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, model.CaixaAberto, resp.Status)
		assert.True(t, resp.ValorInicial.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, "2026-08-01", resp.Data)
	})

	t.Run("reabertura sobrescreve quando fornecido", func(t *testing.T) {
		repo := newMemCaixaRepo()
		id := seedCaixa(repo, model.CaixaFechado, false)
		svc := NewCaixaService(repo)
		idStr := id.String()
		resp, _, err := svc.Abrir(context.Background(), dto.AbrirCaixaRequest{
			ID:           &idStr,
			Data:         "2026-08-10",
			ValorInicial: decPtr(250),
		})
		require.NoError(t, err)
		assert.True(t, resp.ValorInicial.Equal(decimal.NewFromInt(250)))
		assert.Equal(t, "2026-08-10", resp.Data)
	})
}

func TestCaixaFechar(t *testing.T) {
	t.Run("desconhecido retorna 404", func(t *testing.T) {
		svc := NewCaixaService(newMemCaixaRepo())
		_, err := svc.Fechar(context.Background(), uuid.New())
		assertStatus(t, err, http.StatusNotFound)
	})

	t.Run("fechamento duplo retorna 400", func(t *testing.T) {
		repo := newMemCaixaRepo()
		id := seedCaixa(repo, model.CaixaAberto, false)
		svc := NewCaixaService(repo)

		resp, err := svc.Fechar(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, model.CaixaFechado, resp.Status)

		_, err = svc.Fechar(context.Background(), id)
		assertStatus(t, err, http.StatusBadRequest)
	})
}

func TestCaixaMovimento(t *testing.T) {
	t.Run("valor não positivo retorna 400", func(t *testing.T) {
		repo := newMemCaixaRepo()
		id := seedCaixa(repo, model.CaixaAberto, false)
		svc := NewCaixaService(repo)

		_, err := svc.RegistrarMovimento(context.Background(), id, model.MovimentoSangria,
			dto.MovimentoCaixaRequest{Valor: decimal.Zero})
		assertStatus(t, err, http.StatusBadRequest)

		_, err = svc.RegistrarMovimento(context.Background(), id, model.MovimentoSuprimento,
			dto.MovimentoCaixaRequest{Valor: decimal.NewFromInt(-5)})
		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("caixa fechado retorna 400", func(t *testing.T) {
		repo := newMemCaixaRepo()
		id := seedCaixa(repo, model.CaixaFechado, false)
		svc := NewCaixaService(repo)

		_, err := svc.RegistrarMovimento(context.Background(), id, model.MovimentoSangria,
			dto.MovimentoCaixaRequest{Valor: decimal.NewFromInt(10)})
		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("retorna o movimento criado", func(t *testing.T) {
		repo := newMemCaixaRepo()
		id := seedCaixa(repo, model.CaixaAberto, false)
		svc := NewCaixaService(repo)

		mov, err := svc.RegistrarMovimento(context.Background(), id, model.MovimentoSangria,
			dto.MovimentoCaixaRequest{Valor: decimal.NewFromInt(30), Motivo: strPtr("troco")})
		require.NoError(t, err)
		assert.Equal(t, model.MovimentoSangria, mov.Tipo)
		assert.Equal(t, id.String(), mov.CaixaID)
		assert.True(t, mov.Valor.Equal(decimal.NewFromInt(30)))
		require.NotNil(t, mov.Motivo)
		assert.Equal(t, "troco", *mov.Motivo)
		assert.False(t, mov.DataHora.IsZero())
	})

	t.Run("movimentos sobrevivem ao fechamento e reabertura", func(t *testing.T) {
		repo := newMemCaixaRepo()
		id := seedCaixa(repo, model.CaixaAberto, false)
		svc := NewCaixaService(repo)
		ctx := context.Background()

		_, err := svc.RegistrarMovimento(ctx, id, model.MovimentoSangria,
			dto.MovimentoCaixaRequest{Valor: decimal.NewFromInt(30), Motivo: strPtr("troco")})
		require.NoError(t, err)
		_, err = svc.RegistrarMovimento(ctx, id, model.MovimentoSuprimento,
			dto.MovimentoCaixaRequest{Valor: decimal.NewFromInt(20)})
		require.NoError(t, err)

		_, err = svc.Fechar(ctx, id)
		require.NoError(t, err)

		idStr := id.String()
		resp, _, err := svc.Abrir(ctx, dto.AbrirCaixaRequest{ID: &idStr})
		require.NoError(t, err)
		assert.Len(t, resp.Movimentos, 2)
	})
}

func TestCaixaCriar_AdministrativoComecaFechado(t *testing.T) {
	repo := newMemCaixaRepo()
	svc := NewCaixaService(repo)

	resp, err := svc.Criar(context.Background(), dto.CriarCaixaRequest{
		Nome:      "Caixa Estacionamento",
		Bloqueado: true,
	})
	require.NoError(t, err)
	assert.Equal(t, model.CaixaFechado, resp.Status)
	assert.True(t, resp.ValorInicial.IsZero())
	assert.True(t, resp.Bloqueado)
	assert.NotEmpty(t, resp.Data)
}

func TestCaixaAtualizarExcluir_BloqueadosEnquantoAberto(t *testing.T) {
	repo := newMemCaixaRepo()
	id := seedCaixa(repo, model.CaixaAberto, false)
	svc := NewCaixaService(repo)
	ctx := context.Background()

	_, err := svc.Atualizar(ctx, id, dto.AtualizarCaixaRequest{Nome: strPtr("Novo Nome")})
	assertStatus(t, err, http.StatusBadRequest)

	err = svc.Excluir(ctx, id)
	assertStatus(t, err, http.StatusBadRequest)

	_, err = svc.Fechar(ctx, id)
	require.NoError(t, err)

	resp, err := svc.Atualizar(ctx, id, dto.AtualizarCaixaRequest{Nome: strPtr("Novo Nome")})
	require.NoError(t, err)
	assert.Equal(t, "Novo Nome", resp.Nome)

	require.NoError(t, svc.Excluir(ctx, id))
	_, err = svc.Buscar(ctx, id)
	assertStatus(t, err, http.StatusNotFound)
}

func TestCaixaBuscarAberto(t *testing.T) {
	repo := newMemCaixaRepo()
	svc := NewCaixaService(repo)
	ctx := context.Background()

	resp, err := svc.BuscarAberto(ctx)
	require.NoError(t, err)
	assert.Nil(t, resp)

	id := seedCaixa(repo, model.CaixaAberto, false)
	resp, err = svc.BuscarAberto(ctx)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, id.String(), resp.ID)
}
