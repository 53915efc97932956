package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcusnog/playground-backend/internal/dto"
	"github.com/marcusnog/playground-backend/internal/service"
)

type ClienteHandler struct{ svc service.ClienteService }

func NewClienteHandler(svc service.ClienteService) *ClienteHandler {
	return &ClienteHandler{svc: svc}
}

func (h *ClienteHandler) Criar(c *gin.Context) {
	var req dto.CriarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ClienteHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Pesquisar godoc
// @Summary Pesquisa clientes por nome ou telefone (máx. 10 resultados)
// @Tags clientes
// @Produce json
// @Security BearerAuth
// @Param q query string true "termo de busca"
// @Success 200 {array} dto.ClienteResponse
// @Router /api/clientes/pesquisa [get]
func (h *ClienteHandler) Pesquisar(c *gin.Context) {
	resp, err := h.svc.Pesquisar(c.Request.Context(), c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PesquisarPorParam serves the path-parameter form of the search route.
func (h *ClienteHandler) PesquisarPorParam(c *gin.Context) {
	resp, err := h.svc.Pesquisar(c.Request.Context(), c.Param("query"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClienteHandler) Buscar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Buscar(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClienteHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ClienteHandler) Excluir(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.svc.Excluir(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
