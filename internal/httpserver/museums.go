package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *handlers) listMuseums(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.Catalog.Museums(c.Request.Context()))
}

func (h *handlers) getMuseum(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		message(c, http.StatusBadRequest, "Invalid museum id")
		return
	}
	museum, err := h.deps.Catalog.Museum(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Museum not found", "Failed to fetch museum")
		return
	}
	c.JSON(http.StatusOK, museum)
}
