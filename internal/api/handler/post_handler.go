package handler

import (
	"PortalPiloto/internal/api/dto"
	"PortalPiloto/internal/pkg/response"
	"PortalPiloto/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

func (s *PostHandler) Create(c *gin.Context) {
	userID := c.GetUint64("user_id")

	var postDTO dto.PostBaseDTO
	if err := c.ShouldBindJSON(&postDTO); err != nil {
		response.Error(c, err)
		return
	}
	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, &postDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, "id inválido")
		return
	}
	post, err := s.postSvc.GetPost(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) List(c *gin.Context) {
	var listDTO dto.PostListDTO
	if err := c.ShouldBindQuery(&listDTO); err != nil {
		response.Error(c, err)
		return
	}
	page, err := s.postSvc.ListPosts(c.Request.Context(), &listDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *PostHandler) Update(c *gin.Context) {
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, "id inválido")
		return
	}

	var postDTO dto.PostBaseDTO
	if err = c.ShouldBindJSON(&postDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err = s.postSvc.UpdatePost(c.Request.Context(), userID, roles, id, &postDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostHandler) Delete(c *gin.Context) {
	userID := c.GetUint64("user_id")
	roles := c.GetStringSlice("roles")

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, response.BadRequest, "id inválido")
		return
	}
	if err = s.postSvc.DeletePost(c.Request.Context(), userID, roles, id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// BackfillAuthorNames preenche author_name em lote nas linhas antigas (admin)
func (s *PostHandler) BackfillAuthorNames(c *gin.Context) {
	updated, err := s.postSvc.BackfillAuthorNames(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, map[string]int64{"updated": updated})
}
