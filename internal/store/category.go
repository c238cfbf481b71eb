package store

import "museumsouk/internal/domain"

func (s *Store) CreateCategory(c domain.Category) domain.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextCategoryID
	s.nextCategoryID++
	s.categories[c.ID] = c
	s.categoryOrder = append(s.categoryOrder, c.ID)
	return c
}

func (s *Store) Category(id int) (domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	if !ok {
		return domain.Category{}, domain.ErrNotFound
	}
	return c, nil
}

func (s *Store) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Category, 0, len(s.categoryOrder))
	for _, id := range s.categoryOrder {
		result = append(result, s.categories[id])
	}
	return result
}

// CategoryBySlug scans categories in insertion order and returns the first
// one with the given slug. Slugs are unique, so first match is the match.
func (s *Store) CategoryBySlug(slug string) (domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.categoryOrder {
		if c := s.categories[id]; c.Slug == slug {
			return c, nil
		}
	}
	return domain.Category{}, domain.ErrNotFound
}
