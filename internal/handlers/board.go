package handlers

import (
	"net/http"

	"github.com/ClarkAshida/Kanban-API/internal/auth"
	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/dto"
	"github.com/ClarkAshida/Kanban-API/internal/service"

	"github.com/gin-gonic/gin"
)

// BoardHandler serves board CRUD and collaborator management.
type BoardHandler struct {
	svc *service.BoardService
}

func NewBoardHandler(svc *service.BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// Create godoc
// @Summary      Create a board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateBoardRequest  true  "Board body"
// @Success      201   {object}  dto.BoardResponse
// @Router       /boards [post]
func (h *BoardHandler) Create(c *gin.Context) {
	var req dto.CreateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.svc.Create(c.Request.Context(), auth.PrincipalFromContext(c), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, boardToResponse(b))
}

// List godoc
// @Summary      List boards the user owns or collaborates on
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListBoardsResponse
// @Router       /boards [get]
func (h *BoardHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), auth.PrincipalFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.BoardResponse, len(list))
	for i := range list {
		out[i] = boardToResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListBoardsResponse{Items: out})
}

// GetByID godoc
// @Summary      Get a board by ID
// @Tags         boards
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Board ID"
// @Success      200  {object}  dto.BoardResponse
// @Failure      404  {object}  map[string]string
// @Router       /boards/{id} [get]
func (h *BoardHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	b, err := h.svc.Get(c.Request.Context(), auth.PrincipalFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boardToResponse(b))
}

// Update godoc
// @Summary      Rename a board
// @Tags         boards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "Board ID"
// @Param        body  body      dto.UpdateBoardRequest  true  "New name"
// @Success      200   {object}  dto.BoardResponse
// @Failure      403   {object}  map[string]string
// @Router       /boards/{id} [patch]
func (h *BoardHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.svc.Update(c.Request.Context(), auth.PrincipalFromContext(c), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boardToResponse(b))
}

// Delete godoc
// @Summary      Delete a board and everything under it
// @Tags         boards
// @Security     BearerAuth
// @Param        id   path  int  true  "Board ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Router       /boards/{id} [delete]
func (h *BoardHandler) Delete(c *gin.Context) {
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

// ListCollaborators godoc
// @Summary      List collaborators of a board
// @Tags         collaborators
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  int  true  "Board ID"
// @Success      200  {object}  dto.ListCollaboratorsResponse
// @Router       /boards/{id}/collaborators [get]
func (h *BoardHandler) ListCollaborators(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.ListCollaborators(c.Request.Context(), auth.PrincipalFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, collaboratorsToResponse(list))
}

// ListAllCollaborators godoc
// @Summary      List all collaborator grants system-wide (staff only)
// @Tags         collaborators
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.ListCollaboratorsResponse
// @Failure      403  {object}  map[string]string
// @Router       /collaborators [get]
func (h *BoardHandler) ListAllCollaborators(c *gin.Context) {
	list, err := h.svc.ListAllCollaborators(c.Request.Context(), auth.PrincipalFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, collaboratorsToResponse(list))
}

// AddCollaborator godoc
// @Summary      Grant a user a role on a board
// @Tags         collaborators
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  int  true  "Board ID"
// @Param        body  body  dto.AddCollaboratorRequest  true  "Grant"
// @Success      201   {object}  dto.CollaboratorResponse
// @Failure      409   {object}  map[string]string
// @Router       /boards/{id}/collaborators [post]
func (h *BoardHandler) AddCollaborator(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AddCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	collab, err := h.svc.AddCollaborator(c.Request.Context(), auth.PrincipalFromContext(c),
		id, req.UserID, dom.Role(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, collaboratorToResponse(collab))
}

// UpdateCollaborator godoc
// @Summary      Change a collaborator's role
// @Tags         collaborators
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id        path  int  true  "Board ID"
// @Param        collabID  path  int  true  "Collaborator ID"
// @Param        body      body  dto.UpdateCollaboratorRequest  true  "New role"
// @Success      200       {object}  dto.CollaboratorResponse
// @Router       /boards/{id}/collaborators/{collabID} [patch]
func (h *BoardHandler) UpdateCollaborator(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	collabID, ok := parseID(c, "collabID")
	if !ok {
		return
	}
	var req dto.UpdateCollaboratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	collab, err := h.svc.UpdateCollaboratorRole(c.Request.Context(), auth.PrincipalFromContext(c),
		id, collabID, dom.Role(req.Role))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, collaboratorToResponse(collab))
}

// RemoveCollaborator godoc
// @Summary      Revoke a collaborator grant
// @Tags         collaborators
// @Security     BearerAuth
// @Param        id        path  int  true  "Board ID"
// @Param        collabID  path  int  true  "Collaborator ID"
// @Success      204
// @Router       /boards/{id}/collaborators/{collabID} [delete]
func (h *BoardHandler) RemoveCollaborator(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	collabID, ok := parseID(c, "collabID")
	if !ok {
		return
	}
	if err := h.svc.RemoveCollaborator(c.Request.Context(), auth.PrincipalFromContext(c), id, collabID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func boardToResponse(b dom.Board) dto.BoardResponse {
	return dto.BoardResponse{
		ID:        b.ID,
		Name:      b.Name,
		OwnerID:   b.OwnerID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func collaboratorToResponse(c dom.BoardCollaborator) dto.CollaboratorResponse {
	return dto.CollaboratorResponse{
		ID:        c.ID,
		BoardID:   c.BoardID,
		UserID:    c.UserID,
		Role:      string(c.Role),
		CreatedAt: c.CreatedAt,
	}
}

func collaboratorsToResponse(list []dom.BoardCollaborator) dto.ListCollaboratorsResponse {
	out := make([]dto.CollaboratorResponse, len(list))
	for i := range list {
		out[i] = collaboratorToResponse(list[i])
	}
	return dto.ListCollaboratorsResponse{Items: out}
}
