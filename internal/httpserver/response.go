package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"museumsouk/internal/domain"
)

func message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// fail maps a service error onto the wire: a missing entity is 404 with the
// given message, anything else (including a dangling-reference invariant
// break) is logged and becomes 500.
func (h *handlers) fail(c *gin.Context, err error, notFoundMsg, internalMsg string) {
	if errors.Is(err, domain.ErrNotFound) {
		message(c, http.StatusNotFound, notFoundMsg)
		return
	}
	h.logger.Printf("%s: %v", internalMsg, err)
	message(c, http.StatusInternalServerError, internalMsg)
}
