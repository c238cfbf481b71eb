// Package store owns the in-memory collections backing the storefront:
// museums, categories, products and cart items, keyed by generated integer
// identifiers. A Store is built once at process start and passed by handle
// to every consumer; nothing survives a restart.
package store

import (
	"sync"

	"museumsouk/internal/domain"
)

// Store holds all four collections and the per-kind identifier counters.
// A single mutex guards every operation; each exported method is the unit
// of atomicity.
type Store struct {
	mu sync.RWMutex

	museums    map[int]domain.Museum
	categories map[int]domain.Category
	products   map[int]domain.Product
	cartItems  map[int]domain.CartItem

	museumOrder   []int
	categoryOrder []int
	productOrder  []int
	cartItemOrder []int

	nextMuseumID   int
	nextCategoryID int
	nextProductID  int
	nextCartItemID int
}

func New() *Store {
	return &Store{
		museums:        make(map[int]domain.Museum),
		categories:     make(map[int]domain.Category),
		products:       make(map[int]domain.Product),
		cartItems:      make(map[int]domain.CartItem),
		nextMuseumID:   1,
		nextCategoryID: 1,
		nextProductID:  1,
		nextCartItemID: 1,
	}
}
