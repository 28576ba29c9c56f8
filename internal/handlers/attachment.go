package handlers

import (
	"net/http"

	"github.com/ClarkAshida/Kanban-API/internal/auth"
	dom "github.com/ClarkAshida/Kanban-API/internal/domain"
	"github.com/ClarkAshida/Kanban-API/internal/dto"
	"github.com/ClarkAshida/Kanban-API/internal/service"

	"github.com/gin-gonic/gin"
)

// AttachmentHandler serves card file attachments.
type AttachmentHandler struct {
	svc *service.AttachmentService
}

func NewAttachmentHandler(svc *service.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{svc: svc}
}

// Upload godoc
// @Summary      Upload a file to a card
// @Description  Multipart form with a "file" field. Max 5 MiB; .jpg, .png, .pdf only.
// @Tags         attachments
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int   true  "Card ID"
// @Param        file  formData  file  true  "File"
// @Success      201   {object}  dto.AttachmentResponse
// @Failure      400   {object}  map[string]string
// @Router       /cards/{id}/attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	cardID, ok := parseID(c, "id")
	if !ok {
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field required"})
		return
	}
	src, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file"})
		return
	}
	defer src.Close()

	a, err := h.svc.Upload(c.Request.Context(), auth.PrincipalFromContext(c),
		cardID, header.Filename, header.Size, src)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attachmentToResponse(a))
}

// ListByCard godoc
// @Summary      List a card's attachments
// @Tags         attachments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Card ID"
// @Success      200  {object}  dto.ListAttachmentsResponse
// @Router       /cards/{id}/attachments [get]
func (h *AttachmentHandler) ListByCard(c *gin.Context) {
	cardID, ok := parseID(c, "id")
	if !ok {
		return
	}
	list, err := h.svc.ListByCard(c.Request.Context(), auth.PrincipalFromContext(c), cardID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]dto.AttachmentResponse, len(list))
	for i := range list {
		out[i] = attachmentToResponse(list[i])
	}
	c.JSON(http.StatusOK, dto.ListAttachmentsResponse{Items: out})
}

// Download godoc
// @Summary      Download an attachment
// @Tags         attachments
// @Produce      octet-stream
// @Security     BearerAuth
// @Param        id   path  int  true  "Attachment ID"
// @Success      200  {file}  file
// @Router       /attachments/{id}/download [get]
func (h *AttachmentHandler) Download(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	a, path, err := h.svc.FilePathFor(c.Request.Context(), auth.PrincipalFromContext(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, a.FileName)
}

// Delete godoc
// @Summary      Delete an attachment (uploader or board admin)
// @Tags         attachments
// @Security     BearerAuth
// @Param        id   path  int  true  "Attachment ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Router       /attachments/{id} [delete]
func (h *AttachmentHandler) Delete(c *gin.Context) {
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

func attachmentToResponse(a dom.Attachment) dto.AttachmentResponse {
	return dto.AttachmentResponse{
		ID:           a.ID,
		FkCardID:     a.CardID,
		UploadedByID: a.UploadedByID,
		FileName:     a.FileName,
		Size:         a.Size,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
