package handler

import (
	"PortalPiloto/internal/api/dto"
	"PortalPiloto/internal/pkg/response"
	"PortalPiloto/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type SponsorHandler struct {
	sponsorSvc service.SponsorService
}

func NewSponsorHandler(sponsorSvc service.SponsorService) *SponsorHandler {
	return &SponsorHandler{sponsorSvc: sponsorSvc}
}

// ListActive vitrine pública de patrocinadores ativos
func (s *SponsorHandler) ListActive(c *gin.Context) {
	sponsors, err := s.sponsorSvc.ListSponsors(c.Request.Context(), true)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sponsors)
}

func (s *SponsorHandler) ListAll(c *gin.Context) {
	sponsors, err := s.sponsorSvc.ListSponsors(c.Request.Context(), false)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sponsors)
}

func (s *SponsorHandler) Create(c *gin.Context) {
	var sponsorDTO dto.SponsorDTO
	if err := c.ShouldBindJSON(&sponsorDTO); err != nil {
		response.Error(c, err)
		return
	}
	sponsor, err := s.sponsorSvc.CreateSponsor(c.Request.Context(), &sponsorDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sponsor)
}

func (s *SponsorHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, "id inválido")
		return
	}

	var sponsorDTO dto.SponsorDTO
	if err = c.ShouldBindJSON(&sponsorDTO); err != nil {
		response.Error(c, err)
		return
	}
	sponsor, err := s.sponsorSvc.UpdateSponsor(c.Request.Context(), id, &sponsorDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, sponsor)
}

func (s *SponsorHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, "id inválido")
		return
	}
	if err = s.sponsorSvc.DeleteSponsor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
