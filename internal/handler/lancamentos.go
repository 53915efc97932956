package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marcusnog/playground-backend/internal/apierror"
	"github.com/marcusnog/playground-backend/internal/dto"
	"github.com/marcusnog/playground-backend/internal/service"
)

type LancamentoHandler struct{ svc service.LancamentoService }

func NewLancamentoHandler(svc service.LancamentoService) *LancamentoHandler {
	return &LancamentoHandler{svc: svc}
}

// Criar godoc
// @Summary Registra um lançamento de tempo de brincadeira
// @Tags lancamentos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CriarLancamentoRequest true "Dados do lançamento"
// @Success 201 {object} dto.LancamentoResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/lancamentos [post]
func (h *LancamentoHandler) Criar(c *gin.Context) {
	var req dto.CriarLancamentoRequest
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

// Listar godoc
// @Summary Lista lançamentos, com filtros opcionais de status e dia
// @Tags lancamentos
// @Produce json
// @Security BearerAuth
// @Param status query string false "aberto | pago | cancelado"
// @Param dia query string false "YYYY-MM-DD"
// @Success 200 {array} dto.LancamentoResponse
// @Router /api/lancamentos [get]
func (h *LancamentoHandler) Listar(c *gin.Context) {
	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	var dia *time.Time
	if d := c.Query("dia"); d != "" {
		parsed, err := time.ParseInLocation("2006-01-02", d, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.Validation("dia inválido, use YYYY-MM-DD"))
			return
		}
		dia = &parsed
	}

	resp, err := h.svc.Listar(c.Request.Context(), status, dia)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarAbertos is a shortcut for the acompanhamento screen.
func (h *LancamentoHandler) ListarAbertos(c *gin.Context) {
	status := "aberto"
	resp, err := h.svc.Listar(c.Request.Context(), &status, nil)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LancamentoHandler) Buscar(c *gin.Context) {
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

func (h *LancamentoHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarLancamentoRequest
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

// Pagar godoc
// @Summary Marca um lançamento aberto como pago
// @Tags lancamentos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID do lançamento"
// @Param body body dto.PagarLancamentoRequest true "Forma de pagamento"
// @Success 200 {object} dto.LancamentoResponse
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/lancamentos/{id}/pagar [post]
func (h *LancamentoHandler) Pagar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PagarLancamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Pagar(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *LancamentoHandler) Cancelar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.Cancelar(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Comprovante godoc
// @Summary Gera e devolve o comprovante em PDF de um lançamento pago
// @Tags lancamentos
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "ID do lançamento"
// @Success 200 {file} file
// @Failure 400 {object} apierror.APIError
// @Failure 404 {object} apierror.APIError
// @Router /api/lancamentos/{id}/comprovante [get]
func (h *LancamentoHandler) Comprovante(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	path, err := h.svc.Comprovante(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.FileAttachment(path, "comprovante.pdf")
}
