package store

import (
	"time"

	"museumsouk/internal/domain"
)

// CreateProduct assigns the next product id, stamps CreatedAt and stores
// the record. Referential integrity of MuseumID and CategoryID is the
// caller's responsibility.
func (s *Store) CreateProduct(p domain.Product) domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.nextProductID
	s.nextProductID++
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	s.products[p.ID] = p
	s.productOrder = append(s.productOrder, p.ID)
	return p
}

func (s *Store) Product(id int) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		result = append(result, s.products[id])
	}
	return result
}
