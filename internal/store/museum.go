package store

import "museumsouk/internal/domain"

// CreateMuseum assigns the next museum id and stores the record. The store
// does not validate the supplied fields.
func (s *Store) CreateMuseum(m domain.Museum) domain.Museum {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = s.nextMuseumID
	s.nextMuseumID++
	s.museums[m.ID] = m
	s.museumOrder = append(s.museumOrder, m.ID)
	return m
}

func (s *Store) Museum(id int) (domain.Museum, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.museums[id]
	if !ok {
		return domain.Museum{}, domain.ErrNotFound
	}
	return m, nil
}

// Museums returns every museum in insertion order.
func (s *Store) Museums() []domain.Museum {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Museum, 0, len(s.museumOrder))
	for _, id := range s.museumOrder {
		result = append(result, s.museums[id])
	}
	return result
}
