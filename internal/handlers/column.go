package handlers

import (
	"net/http"

	"github.com/ClarkAshida/Kanban-API/internal/auth"
	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/dto"
	"github.com/ClarkAshida/Kanban-API/internal/service"

	"github.com/gin-gonic/gin"
)

// ColumnHandler serves column CRUD.
type ColumnHandler struct {
	svc *service.ColumnService
}

func NewColumnHandler(svc *service.ColumnService) *ColumnHandler {
	return &ColumnHandler{svc: svc}
}

// Create godoc
// @Summary      Create a column on a board
// @Tags         columns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateColumnRequest  true  "Column body"
// @Success      201   {object}  dto.ColumnResponse
// @Failure      409   {object}  map[string]string
// @Router       /columns [post]
func (h *ColumnHandler) Create(c *gin.Context) {
	var req dto.CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	col, err := h.svc.Create(c.Request.Context(), auth.PrincipalFromContext(c),
		req.FkBoardID, req.Name, *req.Position)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, columnToResponse(col))
}

// GetByID godoc
// @Summary      Get a column by ID
// @Tags         columns
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Column ID"
// @Success      200  {object}  dto.ColumnResponse
// @Router       /columns/{id} [get]
func (h *ColumnHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	col, err := h.svc.Get(c.Request.Context(), auth.PrincipalFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, columnToResponse(col))
}

// ListByBoard godoc
// @Summary      List a board's columns ordered by position
// @Tags         columns
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Board ID"
// @Success      200  {object}  dto.ListColumnsResponse
// @Router       /boards/{id}/columns [get]
func (h *ColumnHandler) ListByBoard(c *gin.Context) {
	boardID, ok := parseID(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.ListByBoard(c.Request.Context(), auth.PrincipalFromContext(c), boardID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.ColumnResponse, len(list))
	for i := range list {
		out[i] = columnToResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListColumnsResponse{Items: out})
}

// Update godoc
// @Summary      Rename or reposition a column
// @Tags         columns
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "Column ID"
// @Param        body  body      dto.UpdateColumnRequest  true  "Partial update"
// @Success      200   {object}  dto.ColumnResponse
// @Failure      409   {object}  map[string]string
// @Router       /columns/{id} [patch]
func (h *ColumnHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	col, err := h.svc.Update(c.Request.Context(), auth.PrincipalFromContext(c), id, req.Name, req.Position)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, columnToResponse(col))
}

// Delete godoc
// @Summary      Delete a column and its cards
// @Tags         columns
// @Security     BearerAuth
// @Param        id   path  int  true  "Column ID"
// @Success      204
// @Router       /columns/{id} [delete]
func (h *ColumnHandler) Delete(c *gin.Context) {
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

func columnToResponse(col dom.Column) dto.ColumnResponse {
	return dto.ColumnResponse{
		ID:        col.ID,
		FkBoardID: col.BoardID,
		Name:      col.Name,
		Position:  col.Position,
		CreatedAt: col.CreatedAt,
		UpdatedAt: col.UpdatedAt,
	}
}
