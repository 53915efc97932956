package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcusnog/playground-backend/internal/dto"
	"github.com/marcusnog/playground-backend/internal/service"
)

type BrinquedoHandler struct{ svc service.BrinquedoService }

func NewBrinquedoHandler(svc service.BrinquedoService) *BrinquedoHandler {
	return &BrinquedoHandler{svc: svc}
}

func (h *BrinquedoHandler) Criar(c *gin.Context) {
	var req dto.CriarBrinquedoRequest
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

func (h *BrinquedoHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BrinquedoHandler) Buscar(c *gin.Context) {
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

func (h *BrinquedoHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarBrinquedoRequest
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

func (h *BrinquedoHandler) Excluir(c *gin.Context) {
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
