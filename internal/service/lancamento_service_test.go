package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcusnog/playground-backend/internal/config"
	"github.com/marcusnog/playground-backend/internal/dto"
	"github.com/marcusnog/playground-backend/internal/model"
)

func newLancamentoFixture() (LancamentoService, *memLancamentoRepo, *memFormaPagamentoRepo) {
	lancRepo := newMemLancamentoRepo()
	formaRepo := newMemFormaPagamentoRepo()
	params := NewParametrosService(&memParametrosRepo{}, nil)
	cfg := &config.Config{PDFStoragePath: "/tmp"}
	return NewLancamentoService(lancRepo, formaRepo, params, cfg), lancRepo, formaRepo
}

func criarLancamentoValido(t *testing.T, svc LancamentoService) *dto.LancamentoResponse {
	t.Helper()
	resp, err := svc.Criar(context.Background(), dto.CriarLancamentoRequest{
		NomeCrianca:         "Ana",
		NomeResponsavel:     "Maria",
		WhatsappResponsavel: "+5588999990000",
		ValorCalculado:      decPtr(20),
	})
	require.NoError(t, err)
	return resp
}

func seedForma(repo *memFormaPagamentoRepo) uuid.UUID {
	id := uuid.New()
	repo.formas[id] = &model.FormaPagamento{ID: id, Descricao: "Dinheiro", Status: "ativo"}
	return id
}

func TestLancamentoCriar_DefaultsEStatus(t *testing.T) {
	svc, _, _ := newLancamentoFixture()

	antes := time.Now()
	resp := criarLancamentoValido(t, svc)

	assert.Equal(t, model.LancamentoAberto, resp.Status)
	assert.False(t, resp.DataHora.Before(antes.Add(-time.Second)))
	assert.True(t, resp.ValorCalculado.Equal(decimal.NewFromInt(20)))
	assert.Nil(t, resp.FormaPagamento)
}

func TestLancamentoPagar(t *testing.T) {
	t.Run("forma desconhecida retorna 400", func(t *testing.T) {
		svc, _, _ := newLancamentoFixture()
		resp := criarLancamentoValido(t, svc)
		id := uuid.MustParse(resp.ID)

		_, err := svc.Pagar(context.Background(), id,
			dto.PagarLancamentoRequest{FormaPagamentoID: uuid.NewString()})
		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("pagamento é terminal", func(t *testing.T) {
		svc, _, formas := newLancamentoFixture()
		formaID := seedForma(formas)
		resp := criarLancamentoValido(t, svc)
		id := uuid.MustParse(resp.ID)
		ctx := context.Background()

		pago, err := svc.Pagar(ctx, id, dto.PagarLancamentoRequest{FormaPagamentoID: formaID.String()})
		require.NoError(t, err)
		assert.Equal(t, model.LancamentoPago, pago.Status)

		// nem pagar de novo nem cancelar depois de pago
		_, err = svc.Pagar(ctx, id, dto.PagarLancamentoRequest{FormaPagamentoID: formaID.String()})
		assertStatus(t, err, http.StatusBadRequest)
		_, err = svc.Cancelar(ctx, id)
		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("desconhecido retorna 404", func(t *testing.T) {
		svc, _, formas := newLancamentoFixture()
		formaID := seedForma(formas)
		_, err := svc.Pagar(context.Background(), uuid.New(),
			dto.PagarLancamentoRequest{FormaPagamentoID: formaID.String()})
		assertStatus(t, err, http.StatusNotFound)
	})
}

func TestLancamentoCancelar_Terminal(t *testing.T) {
	svc, _, formas := newLancamentoFixture()
	formaID := seedForma(formas)
	resp := criarLancamentoValido(t, svc)
	id := uuid.MustParse(resp.ID)
	ctx := context.Background()

	cancelado, err := svc.Cancelar(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.LancamentoCancelado, cancelado.Status)

	_, err = svc.Pagar(ctx, id, dto.PagarLancamentoRequest{FormaPagamentoID: formaID.String()})
	assertStatus(t, err, http.StatusBadRequest)
	_, err = svc.Cancelar(ctx, id)
	assertStatus(t, err, http.StatusBadRequest)
}

func TestLancamentoAtualizar(t *testing.T) {
	t.Run("patch altera apenas campos enviados", func(t *testing.T) {
		svc, _, _ := newLancamentoFixture()
		resp := criarLancamentoValido(t, svc)
		id := uuid.MustParse(resp.ID)

		atualizado, err := svc.Atualizar(context.Background(), id, dto.AtualizarLancamentoRequest{
			NomeCrianca: strPtr("Beatriz"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Beatriz", atualizado.NomeCrianca)
		assert.Equal(t, "Maria", atualizado.NomeResponsavel)
		assert.True(t, atualizado.ValorCalculado.Equal(decimal.NewFromInt(20)))
	})

	t.Run("rejeitado fora do estado aberto", func(t *testing.T) {
		svc, _, formas := newLancamentoFixture()
		formaID := seedForma(formas)
		resp := criarLancamentoValido(t, svc)
		id := uuid.MustParse(resp.ID)
		ctx := context.Background()

		_, err := svc.Pagar(ctx, id, dto.PagarLancamentoRequest{FormaPagamentoID: formaID.String()})
		require.NoError(t, err)

		_, err = svc.Atualizar(ctx, id, dto.AtualizarLancamentoRequest{NomeCrianca: strPtr("X")})
		assertStatus(t, err, http.StatusBadRequest)
	})
}

func TestLancamentoListar_FiltroDeStatus(t *testing.T) {
	svc, _, formas := newLancamentoFixture()
	formaID := seedForma(formas)
	ctx := context.Background()

	aberto := criarLancamentoValido(t, svc)
	pago := criarLancamentoValido(t, svc)
	_, err := svc.Pagar(ctx, uuid.MustParse(pago.ID),
		dto.PagarLancamentoRequest{FormaPagamentoID: formaID.String()})
	require.NoError(t, err)

	status := model.LancamentoAberto
	lista, err := svc.Listar(ctx, &status, nil)
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, aberto.ID, lista[0].ID)

	todos, err := svc.Listar(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestLancamentoComprovante_ApenasPago(t *testing.T) {
	svc, _, _ := newLancamentoFixture()
	resp := criarLancamentoValido(t, svc)

	_, err := svc.Comprovante(context.Background(), uuid.MustParse(resp.ID))
	assertStatus(t, err, http.StatusBadRequest)
}
