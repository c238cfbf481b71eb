package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"museumsouk/internal/domain"
)

func (h *handlers) listCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.deps.Catalog.Categories(c.Request.Context()))
}

// getCategory resolves the path key by id when it parses as an integer and
// by slug otherwise. Slugs are kebab-case, never all-digit, so the two
// namespaces cannot collide.
func (h *handlers) getCategory(c *gin.Context) {
	key := c.Param("key")

	var (
		category domain.Category
		err      error
	)
	if id, convErr := strconv.Atoi(key); convErr == nil {
		category, err = h.deps.Catalog.Category(c.Request.Context(), id)
	} else {
		category, err = h.deps.Catalog.CategoryBySlug(c.Request.Context(), key)
	}
	if err != nil {
		h.fail(c, err, "Category not found", "Failed to fetch category")
		return
	}
	c.JSON(http.StatusOK, category)
}
