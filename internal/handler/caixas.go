package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcusnog/playground-backend/internal/dto"
	"github.com/marcusnog/playground-backend/internal/model"
	"github.com/marcusnog/playground-backend/internal/service"
)

type CaixaHandler struct{ svc service.CaixaService }

func NewCaixaHandler(svc service.CaixaService) *CaixaHandler { return &CaixaHandler{svc: svc} }

// Abrir godoc
// @Summary Abre um caixa existente ou cria um novo já aberto
// @Tags caixas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.AbrirCaixaRequest true "Dados de abertura"
// @Success 200 {object} dto.CaixaResponse "caixa existente reaberto"
// @Success 201 {object} dto.CaixaResponse "novo caixa criado aberto"
// @Failure 400 {object} apierror.APIError
// @Failure 403 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/caixas/abertura [post]
func (h *CaixaHandler) Abrir(c *gin.Context) {
	var req dto.AbrirCaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, created, err := h.svc.Abrir(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}

// Fechar godoc
// @Summary Fecha um caixa aberto
// @Tags caixas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.FecharCaixaRequest true "ID do caixa"
// @Success 200 {object} dto.CaixaResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/caixas/fechamento [post]
func (h *CaixaHandler) Fechar(c *gin.Context) {
	var req dto.FecharCaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, err := parseUUIDParam(req.ID)
	if err != nil {
		fail(c, err)
		return
	}
	resp, err := h.svc.Fechar(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Sangria registers a cash withdrawal on an open register.
func (h *CaixaHandler) Sangria(c *gin.Context) {
	h.movimento(c, model.MovimentoSangria)
}

// Suprimento registers a cash top-up on an open register.
func (h *CaixaHandler) Suprimento(c *gin.Context) {
	h.movimento(c, model.MovimentoSuprimento)
}

func (h *CaixaHandler) movimento(c *gin.Context, tipo string) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.MovimentoCaixaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarMovimento(c.Request.Context(), id, tipo, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Criar godoc
// @Summary Cadastra um caixa (sempre fechado, valor inicial zero)
// @Tags caixas
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CriarCaixaRequest true "Dados do caixa"
// @Success 201 {object} dto.CaixaResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/caixas [post]
func (h *CaixaHandler) Criar(c *gin.Context) {
	var req dto.CriarCaixaRequest
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

func (h *CaixaHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarCaixaRequest
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

func (h *CaixaHandler) Excluir(c *gin.Context) {
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

func (h *CaixaHandler) Buscar(c *gin.Context) {
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

func (h *CaixaHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarMovimentos returns the register's movement ledger, newest first.
func (h *CaixaHandler) ListarMovimentos(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.ListarMovimentos(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BuscarAberto godoc
// @Summary Retorna o caixa aberto, ou null quando nenhum está aberto
// @Tags caixas
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CaixaResponse
// @Router /api/caixas/aberto [get]
func (h *CaixaHandler) BuscarAberto(c *gin.Context) {
	resp, err := h.svc.BuscarAberto(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
