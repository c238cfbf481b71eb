package httpserver

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"museumsouk/internal/domain"
	"museumsouk/internal/service/catalog"
)

func (h *handlers) listProducts(c *gin.Context) {
	filter, err := parseProductFilter(c)
	if err != nil {
		message(c, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.deps.Catalog.Products(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err, "Product not found", "Failed to fetch products")
		return
	}

	if err := sortProducts(products, c.Query("sort")); err != nil {
		message(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) getProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		message(c, http.StatusBadRequest, "Invalid product id")
		return
	}
	product, err := h.deps.Catalog.Product(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Product not found", "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// parseProductFilter translates query parameters into the typed filter.
// Malformed values are rejected here; the engine assumes well-formed input.
func parseProductFilter(c *gin.Context) (catalog.Filter, error) {
	var f catalog.Filter

	if v := c.Query("museumId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return f, fmt.Errorf("invalid museumId %q", v)
		}
		f.MuseumID = &id
	}
	if v := c.Query("categoryId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return f, fmt.Errorf("invalid categoryId %q", v)
		}
		f.CategoryID = &id
	}
	if v := c.Query("priceMin"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return f, fmt.Errorf("invalid priceMin %q", v)
		}
		f.PriceMin = &d
	}
	if v := c.Query("priceMax"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return f, fmt.Errorf("invalid priceMax %q", v)
		}
		f.PriceMax = &d
	}
	if v := c.Query("inStock"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, fmt.Errorf("invalid inStock %q", v)
		}
		f.InStock = &b
	}
	if v := c.Query("featured"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return f, fmt.Errorf("invalid featured %q", v)
		}
		f.Featured = &b
	}
	f.Material = c.Query("material")
	f.CountryOfOrigin = c.Query("countryOfOrigin")
	f.Search = c.Query("search")
	return f, nil
}

// sortProducts applies the optional presentation ordering. The engine
// returns store enumeration order; every sort here is stable so ties keep
// that order.
func sortProducts(products []domain.ProductWithMuseum, key string) error {
	switch key {
	case "":
	case "price_asc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case "price_desc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].Price.LessThan(products[i].Price)
		})
	case "newest":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	case "featured":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
	default:
		return fmt.Errorf("invalid sort %q", key)
	}
	return nil
}
