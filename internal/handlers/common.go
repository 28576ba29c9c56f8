package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ClarkAshida/Kanban-API/internal/position"
	"github.com/ClarkAshida/Kanban-API/internal/service"

	"github.com/gin-gonic/gin"
)

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// respondError maps service sentinels to HTTP codes. Anything unmapped is a
// 500 with a generic message so storage details never leak.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, position.ErrConflict),
		errors.Is(err, service.ErrTagNameTaken),
		errors.Is(err, service.ErrCollaboratorExists),
		errors.Is(err, service.ErrOwnerAsCollaborator):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrDueBeforeStart),
		errors.Is(err, position.ErrInvalid),
		errors.Is(err, position.ErrRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
