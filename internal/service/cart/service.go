// Package cart maintains per-session cart contents on top of the entity
// store. The session id is an opaque partition key supplied by the request
// layer; the service only insists that it is present.
package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"museumsouk/internal/domain"
)

type cartStore interface {
	MergeCartItem(sessionID string, productID, quantity int) domain.CartItem
	CartItemsBySession(sessionID string) []domain.CartItem
	SetCartItemQuantity(id, quantity int) (domain.CartItem, error)
	DeleteCartItem(id int) bool
	ClearCart(sessionID string)
	Product(id int) (domain.Product, error)
}

type productJoiner interface {
	Join(p domain.Product) (domain.ProductWithMuseum, error)
}

type Service struct {
	store  cartStore
	joiner productJoiner
}

func New(store cartStore, joiner productJoiner) *Service {
	return &Service{store: store, joiner: joiner}
}

// Add merges quantity into the (session, product) cart item, creating it
// when absent. There is deliberately no fallback session id: an empty one
// is a caller bug, not an anonymous user.
func (s *Service) Add(_ context.Context, sessionID string, productID, quantity int) (domain.CartItem, error) {
	if strings.TrimSpace(sessionID) == "" {
		return domain.CartItem{}, errors.New("session id required")
	}
	if _, err := s.store.Product(productID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.CartItem{}, fmt.Errorf("product %d: %w", productID, domain.ErrNotFound)
		}
		return domain.CartItem{}, err
	}
	return s.store.MergeCartItem(sessionID, productID, quantity), nil
}

// UpdateQuantity replaces the quantity on an existing cart item. Positivity
// of the quantity is validated at the request layer.
func (s *Service) UpdateQuantity(_ context.Context, id, quantity int) (domain.CartItem, error) {
	return s.store.SetCartItemQuantity(id, quantity)
}

// Remove deletes the item, returning domain.ErrNotFound when there was
// nothing to delete.
func (s *Service) Remove(_ context.Context, id int) error {
	if !s.store.DeleteCartItem(id) {
		return domain.ErrNotFound
	}
	return nil
}

// Clear empties the session's cart. Clearing an empty cart is a no-op and
// other sessions are untouched.
func (s *Service) Clear(_ context.Context, sessionID string) {
	s.store.ClearCart(sessionID)
}

// Items returns the session's cart items, each joined with the full
// product projection.
func (s *Service) Items(_ context.Context, sessionID string) ([]domain.CartItemWithProduct, error) {
	items := s.store.CartItemsBySession(sessionID)
	result := make([]domain.CartItemWithProduct, 0, len(items))
	for _, item := range items {
		product, err := s.store.Product(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("cart item %d references product %d: %w", item.ID, item.ProductID, domain.ErrDanglingReference)
		}
		joined, err := s.joiner.Join(product)
		if err != nil {
			return nil, err
		}
		result = append(result, domain.CartItemWithProduct{CartItem: item, Product: joined})
	}
	return result, nil
}
