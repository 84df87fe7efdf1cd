package handler

import (
	"PortalPiloto/internal/api/dto"
	"PortalPiloto/internal/pkg/response"
	"PortalPiloto/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TipHandler struct {
	tipSvc service.TipService
}

func NewTipHandler(tipSvc service.TipService) *TipHandler {
	return &TipHandler{tipSvc: tipSvc}
}

func (s *TipHandler) Submit(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var tipDTO dto.TipCreateDTO
	if err := c.ShouldBindJSON(&tipDTO); err != nil {
		response.Error(c, err)
		return
	}
	tip, err := s.tipSvc.SubmitTip(c.Request.Context(), userID, &tipDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tip)
}

func (s *TipHandler) Get(c *gin.Context) {
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, "id inválido")
		return
	}
	tip, err := s.tipSvc.GetTip(c.Request.Context(), userID, roles, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, tip)
}

// ListApproved vitrine pública de dicas aprovadas
func (s *TipHandler) ListApproved(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	result, err := s.tipSvc.ListApproved(c.Request.Context(), page, pageSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// ListModeration fila de moderação (admin)
func (s *TipHandler) ListModeration(c *gin.Context) {
	var listDTO dto.TipListDTO
	if err := c.ShouldBindQuery(&listDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.tipSvc.ListForModeration(c.Request.Context(), &listDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// SetStatus aprova ou rejeita uma dica pendente (admin)
func (s *TipHandler) SetStatus(c *gin.Context) {
	actorID := c.GetUint64("user_id")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, "id inválido")
		return
	}

	var statusDTO dto.TipStatusDTO
	if err = c.ShouldBindJSON(&statusDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.tipSvc.SetStatus(c.Request.Context(), actorID, id, statusDTO.Status); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *TipHandler) Delete(c *gin.Context) {
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, "id inválido")
		return
	}
	if err = s.tipSvc.DeleteTip(c.Request.Context(), userID, roles, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// History trilha de decisões de moderação de uma dica (admin)
func (s *TipHandler) History(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, "id inválido")
		return
	}
	history, err := s.tipSvc.ModerationHistory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, history)
}
