package handler

import (
	"PortalPiloto/internal/api/dto"
	"PortalPiloto/internal/pkg/response"
	"PortalPiloto/internal/service"
	"time"

	"github.com/gin-gonic/gin"
)

type GenerationHandler struct {
	generationSvc service.GenerationService
}

func NewGenerationHandler(generationSvc service.GenerationService) *GenerationHandler {
	return &GenerationHandler{generationSvc: generationSvc}
}

func (s *GenerationHandler) GetConfig(c *gin.Context) {
	cfg, err := s.generationSvc.GetConfig(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, cfg)
}

func (s *GenerationHandler) UpdateConfig(c *gin.Context) {
	var configDTO dto.GenerationConfigDTO
	if err := c.ShouldBindJSON(&configDTO); err != nil {
		response.Error(c, err)
		return
	}
	cfg, err := s.generationSvc.UpdateConfig(c.Request.Context(), &configDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, cfg)
}

// RunManual dispara a geração com parâmetros do admin, passando pelo
// pipeline completo de produção
func (s *GenerationHandler) RunManual(c *gin.Context) {
	var manualDTO dto.ManualGenerationDTO
	if err := c.ShouldBindJSON(&manualDTO); err != nil {
		response.Error(c, err)
		return
	}
	post, err := s.generationSvc.RunManual(c.Request.Context(), &manualDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

// RunScheduled gatilho externo de agendamento, protegido por segredo
func (s *GenerationHandler) RunScheduled(c *gin.Context) {
	post, err := s.generationSvc.RunScheduled(c.Request.Context(), time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}
	if post == nil {
		response.Success(c, map[string]bool{"generated": false})
		return
	}
	response.Success(c, post)
}
