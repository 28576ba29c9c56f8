package handlers

import (
	"net/http"

	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/dto"
	"github.com/ClarkAshida/Kanban-API/internal/service"

	"github.com/gin-gonic/gin"
)

// TagHandler serves the global tag catalog.
type TagHandler struct {
	svc *service.TagService
}

func NewTagHandler(svc *service.TagService) *TagHandler {
	return &TagHandler{svc: svc}
}

// Create godoc
// @Summary      Create a tag
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateTagRequest  true  "Tag body"
// @Success      201   {object}  dto.TagResponse
// @Failure      409   {object}  map[string]string
// @Router       /tags [post]
func (h *TagHandler) Create(c *gin.Context) {
	var req dto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tag, err := h.svc.Create(c.Request.Context(), req.Name, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tagToResponse(tag))
}

// List godoc
// @Summary      List all tags
// @Tags         tags
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListTagsResponse
// @Router       /tags [get]
func (h *TagHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.TagResponse, len(list))
	for i := range list {
		out[i] = tagToResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListTagsResponse{Items: out})
}

// GetByID godoc
// @Summary      Get a tag by ID
// @Tags         tags
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Tag ID"
// @Success      200  {object}  dto.TagResponse
// @Router       /tags/{id} [get]
func (h *TagHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	tag, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tagToResponse(tag))
}

// Update godoc
// @Summary      Update a tag's name or color
// @Tags         tags
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "Tag ID"
// @Param        body  body      dto.UpdateTagRequest  true  "Partial update"
// @Success      200   {object}  dto.TagResponse
// @Failure      409   {object}  map[string]string
// @Router       /tags/{id} [patch]
func (h *TagHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tag, err := h.svc.Update(c.Request.Context(), id, req.Name, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tagToResponse(tag))
}

// Delete godoc
// @Summary      Delete a tag; its card links are removed
// @Tags         tags
// @Security     BearerAuth
// @Param        id   path  int  true  "Tag ID"
// @Success      204
// @Router       /tags/{id} [delete]
func (h *TagHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func tagToResponse(t dom.Tag) dto.TagResponse {
	return dto.TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}
