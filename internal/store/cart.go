package store

import (
	"time"

	"museumsouk/internal/domain"
)

// MergeCartItem adds quantity for (sessionID, productID), incrementing an
// existing item when one exists and creating a new one otherwise. The
// find-or-create runs under the write lock, so concurrent adds for the same
// pair serialize to one item with the summed quantity.
func (s *Store) MergeCartItem(sessionID string, productID, quantity int) domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range s.cartItemOrder {
		item := s.cartItems[id]
		if item.SessionID == sessionID && item.ProductID == productID {
			item.Quantity += quantity
			s.cartItems[id] = item
			return item
		}
	}

	item := domain.CartItem{
		ID:        s.nextCartItemID,
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: time.Now().UTC(),
	}
	s.nextCartItemID++
	s.cartItems[item.ID] = item
	s.cartItemOrder = append(s.cartItemOrder, item.ID)
	return item
}

func (s *Store) CartItem(id int) (domain.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.cartItems[id]
	if !ok {
		return domain.CartItem{}, domain.ErrNotFound
	}
	return item, nil
}

// SetCartItemQuantity replaces the quantity on an existing item.
func (s *Store) SetCartItemQuantity(id, quantity int) (domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cartItems[id]
	if !ok {
		return domain.CartItem{}, domain.ErrNotFound
	}
	item.Quantity = quantity
	s.cartItems[id] = item
	return item, nil
}

// DeleteCartItem removes the item and reports whether a delete happened.
func (s *Store) DeleteCartItem(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cartItems[id]; !ok {
		return false
	}
	delete(s.cartItems, id)
	s.cartItemOrder = deleteID(s.cartItemOrder, id)
	return true
}

func (s *Store) CartItemsBySession(sessionID string) []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []domain.CartItem
	for _, id := range s.cartItemOrder {
		if item := s.cartItems[id]; item.SessionID == sessionID {
			result = append(result, item)
		}
	}
	return result
}

// ClearCart removes every item for the session. Clearing a session with no
// items is a no-op.
func (s *Store) ClearCart(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := s.cartItemOrder[:0]
	for _, id := range s.cartItemOrder {
		if s.cartItems[id].SessionID == sessionID {
			delete(s.cartItems, id)
			continue
		}
		remaining = append(remaining, id)
	}
	s.cartItemOrder = remaining
}

func deleteID(ids []int, id int) []int {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
