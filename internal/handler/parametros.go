package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcusnog/playground-backend/internal/dto"
	"github.com/marcusnog/playground-backend/internal/service"
)

type ParametrosHandler struct{ svc service.ParametrosService }

func NewParametrosHandler(svc service.ParametrosService) *ParametrosHandler {
	return &ParametrosHandler{svc: svc}
}

// Buscar godoc
// @Summary Retorna os parâmetros globais, criando-os com padrões na primeira leitura
// @Tags parametros
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ParametrosResponse
// @Router /api/parametros [get]
func (h *ParametrosHandler) Buscar(c *gin.Context) {
	resp, err := h.svc.Buscar(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar godoc
// @Summary Atualiza parcialmente os parâmetros globais
// @Tags parametros
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.AtualizarParametrosRequest true "Campos a sobrescrever"
// @Success 200 {object} dto.ParametrosResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/parametros [put]
func (h *ParametrosHandler) Atualizar(c *gin.Context) {
	var req dto.AtualizarParametrosRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
