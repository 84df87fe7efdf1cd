package handler

import (
	"PortalPiloto/internal/api/dto"
	"PortalPiloto/internal/pkg/response"
	"PortalPiloto/internal/service"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userSvc      service.UserService
	userRolesSvc service.UserRolesService
}

func NewUserHandler(userSvc service.UserService, userRolesSvc service.UserRolesService) *UserHandler {
	return &UserHandler{
		userSvc:      userSvc,
		userRolesSvc: userRolesSvc,
	}
}

func (s *UserHandler) Register(c *gin.Context) {
	var registerDTO dto.RegisterDTO
	if err := c.ShouldBindJSON(&registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userSvc.Register(c.Request.Context(), &registerDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Login(c *gin.Context) {
	var loginDTO dto.CredentialDTO
	if err := c.ShouldBindJSON(&loginDTO); err != nil {
		response.Error(c, err)
		return
	}
	result, err := s.userSvc.Login(c.Request.Context(), &loginDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

func (s *UserHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := s.userSvc.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) Me(c *gin.Context) {
	userID := c.GetUint64("user_id")
	user, err := s.userSvc.GetUserInfo(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, user)
}

func (s *UserHandler) UpdateMe(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var updateDTO dto.UpdateUserDTO
	if err := c.ShouldBindJSON(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userSvc.UpdateUserInfo(c.Request.Context(), userID, &updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *UserHandler) GetRoles(c *gin.Context) {
	roles, err := s.userRolesSvc.GetRoles(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, roles)
}

func (s *UserHandler) GetUserRoles(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, "id inválido")
		return
	}
	roles, err := s.userRolesSvc.GetUserRoles(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, roles)
}

// SetUserRole promove ou rebaixa um usuário (admin)
func (s *UserHandler) SetUserRole(c *gin.Context) {
	actorID := c.GetUint64("user_id")

	var changeDTO dto.RoleChangeDTO
	if err := c.ShouldBindJSON(&changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := s.userRolesSvc.SetUserRole(c.Request.Context(), actorID, &changeDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
