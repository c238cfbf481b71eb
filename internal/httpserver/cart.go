package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type addToCartRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *handlers) getCart(c *gin.Context) {
	items, err := h.deps.Cart.Items(c.Request.Context(), sessionID(c))
	if err != nil {
		h.fail(c, err, "Cart not found", "Failed to fetch cart items")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *handlers) addToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		message(c, http.StatusBadRequest, "Invalid cart item data")
		return
	}
	if req.ProductID < 1 {
		message(c, http.StatusBadRequest, "Invalid product id")
		return
	}
	if req.Quantity < 1 {
		message(c, http.StatusBadRequest, "Invalid quantity")
		return
	}

	item, err := h.deps.Cart.Add(c.Request.Context(), sessionID(c), req.ProductID, req.Quantity)
	if err != nil {
		h.fail(c, err, "Product not found", "Failed to add item to cart")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *handlers) updateCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		message(c, http.StatusBadRequest, "Invalid cart item id")
		return
	}
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity < 1 {
		message(c, http.StatusBadRequest, "Invalid quantity")
		return
	}

	item, err := h.deps.Cart.UpdateQuantity(c.Request.Context(), id, req.Quantity)
	if err != nil {
		h.fail(c, err, "Cart item not found", "Failed to update cart item")
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *handlers) removeCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		message(c, http.StatusBadRequest, "Invalid cart item id")
		return
	}
	if err := h.deps.Cart.Remove(c.Request.Context(), id); err != nil {
		h.fail(c, err, "Cart item not found", "Failed to remove item from cart")
		return
	}
	message(c, http.StatusOK, "Item removed from cart")
}

func (h *handlers) clearCart(c *gin.Context) {
	h.deps.Cart.Clear(c.Request.Context(), sessionID(c))
	message(c, http.StatusOK, "Cart cleared")
}
