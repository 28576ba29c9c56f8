package handlers

import (
	"net/http"

	"github.com/ClarkAshida/Kanban-API/internal/auth"
	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/dto"
	"github.com/ClarkAshida/Kanban-API/internal/service"

	"github.com/gin-gonic/gin"
)

// CardHandler serves card CRUD and the card-tag relation.
type CardHandler struct {
	svc *service.CardService
}

func NewCardHandler(svc *service.CardService) *CardHandler {
	return &CardHandler{svc: svc}
}

// Create godoc
// @Summary      Create a card in a column
// @Tags         cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      dto.CreateCardRequest  true  "Card body"
// @Success      201   {object}  dto.CardResponse
// @Failure      409   {object}  map[string]string
// @Router       /cards [post]
func (h *CardHandler) Create(c *gin.Context) {
	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	card := dom.Card{
		ColumnID:       req.FkColumnID,
		Title:          req.Title,
		Description:    req.Description,
		Position:       req.Position,
		AssignedUserID: req.FkAssignedUserID,
	}
	if req.StartDate != nil {
		card.StartDate = req.StartDate.Ptr()
	}
	if req.DueDate != nil {
		card.DueDate = req.DueDate.Ptr()
	}
	if req.Priority != nil {
		card.Priority = dom.Priority(*req.Priority)
	}
	if req.Category != nil {
		card.Category = dom.Category(*req.Category)
	}
	out, err := h.svc.Create(c.Request.Context(), auth.PrincipalFromContext(c), card)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cardToResponse(out, nil))
}

// GetByID godoc
// @Summary      Get a card with its tags
// @Tags         cards
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Card ID"
// @Success      200  {object}  dto.CardResponse
// @Router       /cards/{id} [get]
func (h *CardHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p := auth.PrincipalFromContext(c)
	card, err := h.svc.Get(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, err)
		return
	}
	tags, err := h.svc.ListTags(c.Request.Context(), p, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cardToResponse(card, tags))
}

// ListByColumn godoc
// @Summary      List a column's cards ordered by position
// @Tags         cards
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Column ID"
// @Success      200  {object}  dto.ListCardsResponse
// @Router       /columns/{id}/cards [get]
func (h *CardHandler) ListByColumn(c *gin.Context) {
	columnID, ok := parseID(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.ListByColumn(c.Request.Context(), auth.PrincipalFromContext(c), columnID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.CardResponse, len(list))
	for i := range list {
		out[i] = cardToResponse(list[i], nil)
	}
	c.JSON(http.StatusOK, dto.ListCardsResponse{Items: out})
}

// Update godoc
// @Summary      Update a card, including moving it between columns
// @Tags         cards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int  true  "Card ID"
// @Param        body  body      dto.UpdateCardRequest  true  "Partial update"
// @Success      200   {object}  dto.CardResponse
// @Failure      409   {object}  map[string]string
// @Router       /cards/{id} [patch]
func (h *CardHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	in := service.CardInput{
		ColumnID:    req.FkColumnID,
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Position != nil {
		in.Position = req.Position
		in.HasPosition = true
	}
	if req.StartDate != nil {
		in.StartDate = req.StartDate.Ptr()
		in.HasStart = true
	}
	if req.DueDate != nil {
		in.DueDate = req.DueDate.Ptr()
		in.HasDue = true
	}
	if req.Priority != nil {
		pr := dom.Priority(*req.Priority)
		in.Priority = &pr
	}
	if req.Category != nil {
		cat := dom.Category(*req.Category)
		in.Category = &cat
	}
	if req.FkAssignedUserID != nil {
		in.AssignedUserID = req.FkAssignedUserID
		in.HasAssignee = true
	}
	out, err := h.svc.Update(c.Request.Context(), auth.PrincipalFromContext(c), id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cardToResponse(out, nil))
}

// Delete godoc
// @Summary      Delete a card
// @Tags         cards
// @Security     BearerAuth
// @Param        id   path  int  true  "Card ID"
// @Success      204
// @Router       /cards/{id} [delete]
func (h *CardHandler) Delete(c *gin.Context) {
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

// AttachTag godoc
// @Summary      Attach a tag to a card
// @Tags         cards
// @Security     BearerAuth
// @Param        id     path  int  true  "Card ID"
// @Param        tagID  path  int  true  "Tag ID"
// @Success      204
// @Router       /cards/{id}/tags/{tagID} [put]
func (h *CardHandler) AttachTag(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	tagID, ok := parseID(c, "tagID")
	if !ok {
		return
	}
	if err := h.svc.AttachTag(c.Request.Context(), auth.PrincipalFromContext(c), id, tagID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DetachTag godoc
// @Summary      Detach a tag from a card
// @Tags         cards
// @Security     BearerAuth
// @Param        id     path  int  true  "Card ID"
// @Param        tagID  path  int  true  "Tag ID"
// @Success      204
// @Router       /cards/{id}/tags/{tagID} [delete]
func (h *CardHandler) DetachTag(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	tagID, ok := parseID(c, "tagID")
	if !ok {
		return
	}
	if err := h.svc.DetachTag(c.Request.Context(), auth.PrincipalFromContext(c), id, tagID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListTags godoc
// @Summary      List a card's tags
// @Tags         cards
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Card ID"
// @Success      200  {object}  dto.ListTagsResponse
// @Router       /cards/{id}/tags [get]
func (h *CardHandler) ListTags(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	tags, err := h.svc.ListTags(c.Request.Context(), auth.PrincipalFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.TagResponse, len(tags))
	for i := range tags {
		out[i] = tagToResponse(tags[i])
	}
	c.JSON(http.StatusOK, dto.ListTagsResponse{Items: out})
}

func cardToResponse(card dom.Card, tags []dom.Tag) dto.CardResponse {
	resp := dto.CardResponse{
		ID:               card.ID,
		FkColumnID:       card.ColumnID,
		Title:            card.Title,
		Description:      card.Description,
		Position:         card.Position,
		StartDate:        card.StartDate,
		DueDate:          card.DueDate,
		Priority:         string(card.Priority),
		Category:         string(card.Category),
		FkUserID:         card.UserID,
		FkAssignedUserID: card.AssignedUserID,
		CreatedAt:        card.CreatedAt,
		UpdatedAt:        card.UpdatedAt,
	}
	for _, t := range tags {
		resp.Tags = append(resp.Tags, tagToResponse(t))
	}
	return resp
}
