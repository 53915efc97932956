package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/marcusnog/playground-backend/internal/apierror"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respondWith(err error) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/recurso", func(c *gin.Context) { fail(c, err) })
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/recurso", nil))
	return w
}

func TestFail(t *testing.T) {
	t.Run("erro do domínio passa inalterado", func(t *testing.T) {
		w := respondWith(apierror.NotFound("caixa não encontrado"))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "caixa não encontrado")
	})

	t.Run("erro não categorizado é suprimido fora de desenvolvimento", func(t *testing.T) {
		w := respondWith(errors.New("pq: password authentication failed"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "password authentication")
		assert.Contains(t, w.Body.String(), "erro interno do servidor")
	})

	t.Run("erro não categorizado aparece em desenvolvimento", func(t *testing.T) {
		ExposeInternalErrors(true)
		defer ExposeInternalErrors(false)

		w := respondWith(errors.New("pq: password authentication failed"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "password authentication")
	})
}
