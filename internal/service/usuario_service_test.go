package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/marcusnog/playground-backend/internal/dto"
	"github.com/marcusnog/playground-backend/internal/model"
)

func criarUsuarioValido(t *testing.T, svc UsuarioService, apelido string) *dto.UsuarioResponse {
	t.Helper()
	resp, err := svc.Criar(context.Background(), dto.CriarUsuarioRequest{
		NomeCompleto: "Maria Operadora",
		Apelido:      apelido,
		Senha:        "senha123",
		PermissaoFlags: dto.PermissaoFlags{
			Lancamento:    true,
			CaixaAbertura: true,
		},
	})
	require.NoError(t, err)
	return resp
}

func TestUsuarioCriar(t *testing.T) {
	t.Run("hash da senha e flags persistidos", func(t *testing.T) {
		repo := newMemUsuarioRepo()
		svc := NewUsuarioService(repo)

		resp := criarUsuarioValido(t, svc, "maria")
		assert.True(t, resp.Lancamento)
		assert.True(t, resp.CaixaAbertura)
		assert.False(t, resp.CaixaFechamento)

		stored, err := repo.FindByApelido(context.Background(), "maria")
		require.NoError(t, err)
		assert.NotEqual(t, "senha123", stored.Senha)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Senha), []byte("senha123")))
	})

	t.Run("apelido duplicado retorna 400", func(t *testing.T) {
		svc := NewUsuarioService(newMemUsuarioRepo())
		criarUsuarioValido(t, svc, "maria")

		_, err := svc.Criar(context.Background(), dto.CriarUsuarioRequest{
			NomeCompleto: "Outra Maria",
			Apelido:      "maria",
			Senha:        "outrasenha",
		})
		assertStatus(t, err, http.StatusBadRequest)
	})
}

func TestUsuarioAtualizar(t *testing.T) {
	t.Run("patch altera apenas campos enviados", func(t *testing.T) {
		repo := newMemUsuarioRepo()
		svc := NewUsuarioService(repo)
		criado := criarUsuarioValido(t, svc, "maria")
		id := uuid.MustParse(criado.ID)

		f := false
		resp, err := svc.Atualizar(context.Background(), id, dto.AtualizarUsuarioRequest{
			Contato:    strPtr("+5588988887777"),
			Lancamento: &f,
		})
		require.NoError(t, err)
		assert.Equal(t, "+5588988887777", resp.Contato)
		assert.False(t, resp.Lancamento)
		// untouched fields stay
		assert.True(t, resp.CaixaAbertura)
		assert.Equal(t, "Maria Operadora", resp.NomeCompleto)
	})

	t.Run("senha é re-hasheada", func(t *testing.T) {
		repo := newMemUsuarioRepo()
		svc := NewUsuarioService(repo)
		criado := criarUsuarioValido(t, svc, "maria")
		id := uuid.MustParse(criado.ID)

		_, err := svc.Atualizar(context.Background(), id, dto.AtualizarUsuarioRequest{
			Senha: strPtr("novasenha"),
		})
		require.NoError(t, err)

		stored, err := repo.FindByID(context.Background(), id)
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Senha), []byte("novasenha")))
		assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.Senha), []byte("senha123")))
	})

	t.Run("apelido de outro usuário retorna 400", func(t *testing.T) {
		svc := NewUsuarioService(newMemUsuarioRepo())
		criarUsuarioValido(t, svc, "maria")
		outro := criarUsuarioValido(t, svc, "jose")

		_, err := svc.Atualizar(context.Background(), uuid.MustParse(outro.ID), dto.AtualizarUsuarioRequest{
			Apelido: strPtr("maria"),
		})
		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("manter o próprio apelido é permitido", func(t *testing.T) {
		svc := NewUsuarioService(newMemUsuarioRepo())
		criado := criarUsuarioValido(t, svc, "maria")

		resp, err := svc.Atualizar(context.Background(), uuid.MustParse(criado.ID), dto.AtualizarUsuarioRequest{
			Apelido: strPtr("maria"),
		})
		require.NoError(t, err)
		assert.Equal(t, "maria", resp.Apelido)
	})
}

func TestUsuarioExcluir(t *testing.T) {
	t.Run("protegido retorna 400", func(t *testing.T) {
		repo := newMemUsuarioRepo()
		svc := NewUsuarioService(repo)
		id := uuid.New()
		repo.usuarios[id] = &model.Usuario{
			ID:           id,
			NomeCompleto: "Administrador",
			Apelido:      "admin",
			Protegido:    true,
		}

		err := svc.Excluir(context.Background(), id)
		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("comum é removido", func(t *testing.T) {
		svc := NewUsuarioService(newMemUsuarioRepo())
		criado := criarUsuarioValido(t, svc, "maria")
		id := uuid.MustParse(criado.ID)
		ctx := context.Background()

		require.NoError(t, svc.Excluir(ctx, id))
		_, err := svc.Buscar(ctx, id)
		assertStatus(t, err, http.StatusNotFound)
	})

	t.Run("desconhecido retorna 404", func(t *testing.T) {
		svc := NewUsuarioService(newMemUsuarioRepo())
		err := svc.Excluir(context.Background(), uuid.New())
		assertStatus(t, err, http.StatusNotFound)
	})
}
