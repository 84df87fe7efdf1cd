package handler

import (
	"PortalPiloto/internal/api/dto"
	"PortalPiloto/internal/pkg/response"
	"PortalPiloto/internal/service"

	"github.com/gin-gonic/gin"
)

type DonationHandler struct {
	donationSvc service.DonationService
}

func NewDonationHandler(donationSvc service.DonationService) *DonationHandler {
	return &DonationHandler{donationSvc: donationSvc}
}

// Get configuração pública de doação
func (s *DonationHandler) Get(c *gin.Context) {
	setting, err := s.donationSvc.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, setting)
}

func (s *DonationHandler) Update(c *gin.Context) {
	var donationDTO dto.DonationDTO
	if err := c.ShouldBindJSON(&donationDTO); err != nil {
		response.Error(c, err)
		return
	}
	setting, err := s.donationSvc.UpdateSettings(c.Request.Context(), &donationDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, setting)
}
