package handlers

import (
	"net/http"

	"github.com/ClarkAshida/Kanban-API/internal/auth"
	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/dto"
	"github.com/ClarkAshida/Kanban-API/internal/service"

	"github.com/gin-gonic/gin"
)

// CommentHandler serves card comments.
type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler(svc *service.CommentService) *CommentHandler {
	return &CommentHandler{svc: svc}
}

// Create godoc
// @Summary      Comment on a card
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateCommentRequest  true  "Comment body"
// @Success      201   {object}  dto.CommentResponse
// @Router       /comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comment, err := h.svc.Create(c.Request.Context(), auth.PrincipalFromContext(c),
		req.FkCardID, req.CommentText)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, commentToResponse(comment))
}

// ListByCard godoc
// @Summary      List a card's comments in order
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Card ID"
// @Success      200  {object}  dto.ListCommentsResponse
// @Router       /cards/{id}/comments [get]
func (h *CommentHandler) ListByCard(c *gin.Context) {
	cardID, ok := parseID(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.ListByCard(c.Request.Context(), auth.PrincipalFromContext(c), cardID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.CommentResponse, len(list))
	for i := range list {
		out[i] = commentToResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListCommentsResponse{Items: out})
}

// Delete godoc
// @Summary      Delete a comment (author or board admin)
// @Tags         comments
// @Security     BearerAuth
// @Param        id   path  int  true  "Comment ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Router       /comments/{id} [delete]
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), auth.PrincipalFromContext(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func commentToResponse(cm dom.Comment) dto.CommentResponse {
	return dto.CommentResponse{
		ID:          cm.ID,
		FkCardID:    cm.CardID,
		FkUserID:    cm.UserID,
		CommentText: cm.Text,
		CreatedAt:   cm.CreatedAt,
	}
}
