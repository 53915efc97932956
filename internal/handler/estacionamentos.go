package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcusnog/playground-backend/internal/apierror"
	"github.com/marcusnog/playground-backend/internal/dto"
	"github.com/marcusnog/playground-backend/internal/model"
	"github.com/marcusnog/playground-backend/internal/repository"
	"github.com/marcusnog/playground-backend/internal/service"
)

type EstacionamentoHandler struct{ svc service.EstacionamentoService }

func NewEstacionamentoHandler(svc service.EstacionamentoService) *EstacionamentoHandler {
	return &EstacionamentoHandler{svc: svc}
}

// Criar godoc
// @Summary Cadastra um estacionamento
// @Tags estacionamentos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CriarEstacionamentoRequest true "Dados do estacionamento"
// @Success 201 {object} dto.EstacionamentoResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/estacionamentos [post]
func (h *EstacionamentoHandler) Criar(c *gin.Context) {
	var req dto.CriarEstacionamentoRequest
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

func (h *EstacionamentoHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstacionamentoHandler) Buscar(c *gin.Context) {
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

func (h *EstacionamentoHandler) Atualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.AtualizarEstacionamentoRequest
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

func (h *EstacionamentoHandler) Excluir(c *gin.Context) {
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

// CriarLancamento godoc
// @Summary Registra uma entrada de veículo
// @Tags estacionamentos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CriarLancamentoEstacionamentoRequest true "Dados da entrada; valor ausente usa a tarifa do estacionamento"
// @Success 201 {object} dto.LancamentoEstacionamentoResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/estacionamentos/lancamentos [post]
func (h *EstacionamentoHandler) CriarLancamento(c *gin.Context) {
	var req dto.CriarLancamentoEstacionamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarLancamento(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ListarLancamentos godoc
// @Summary Lista entradas de veículos, com filtros opcionais
// @Tags estacionamentos
// @Produce json
// @Security BearerAuth
// @Param status query string false "aberto | pago | cancelado"
// @Param dia query string false "YYYY-MM-DD"
// @Param estacionamentoId query string false "filtra por estacionamento"
// @Success 200 {array} dto.LancamentoEstacionamentoResponse
// @Router /api/estacionamentos/lancamentos [get]
func (h *EstacionamentoHandler) ListarLancamentos(c *gin.Context) {
	var f repository.LancamentoEstacionamentoFilter
	if s := c.Query("status"); s != "" {
		f.Status = &s
	}
	if d := c.Query("dia"); d != "" {
		parsed, err := time.ParseInLocation("2006-01-02", d, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.Validation("dia inválido, use YYYY-MM-DD"))
			return
		}
		f.Dia = &parsed
	}
	if e := c.Query("estacionamentoId"); e != "" {
		id, err := uuid.Parse(e)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.Validation("estacionamentoId inválido"))
			return
		}
		f.EstacionamentoID = &id
	}

	resp, err := h.svc.ListarLancamentos(c.Request.Context(), f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarLancamentosAbertos lists vehicles currently inside.
func (h *EstacionamentoHandler) ListarLancamentosAbertos(c *gin.Context) {
	status := model.LancamentoAberto
	resp, err := h.svc.ListarLancamentos(c.Request.Context(),
		repository.LancamentoEstacionamentoFilter{Status: &status})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstacionamentoHandler) BuscarLancamento(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.BuscarLancamento(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstacionamentoHandler) PagarLancamento(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.PagarLancamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.PagarLancamento(c.Request.Context(), id, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EstacionamentoHandler) CancelarLancamento(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	resp, err := h.svc.CancelarLancamento(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
