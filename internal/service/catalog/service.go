// Package catalog serves catalog reads: museums, categories and products,
// the latter filtered and joined with their owning museum and category.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"museumsouk/internal/domain"
)

type entityStore interface {
	Museums() []domain.Museum
	Museum(id int) (domain.Museum, error)
	Categories() []domain.Category
	Category(id int) (domain.Category, error)
	CategoryBySlug(slug string) (domain.Category, error)
	Products() []domain.Product
	Product(id int) (domain.Product, error)
}

type Service struct {
	store entityStore
}

func New(store entityStore) *Service {
	return &Service{store: store}
}

// Filter is the set of optional product predicates. A nil pointer or empty
// string means "do not filter on this dimension"; active predicates are
// applied conjunctively.
type Filter struct {
	MuseumID        *int
	CategoryID      *int
	PriceMin        *decimal.Decimal
	PriceMax        *decimal.Decimal
	Material        string
	CountryOfOrigin string
	InStock         *bool
	Featured        *bool
	Search          string
}

func (f Filter) matches(p domain.Product) bool {
	if f.MuseumID != nil && p.MuseumID != *f.MuseumID {
		return false
	}
	if f.CategoryID != nil && p.CategoryID != *f.CategoryID {
		return false
	}
	if f.PriceMin != nil && p.Price.LessThan(*f.PriceMin) {
		return false
	}
	if f.PriceMax != nil && p.Price.GreaterThan(*f.PriceMax) {
		return false
	}
	if f.Material != "" && !containsFold(p.Material, f.Material) {
		return false
	}
	if f.CountryOfOrigin != "" && !containsFold(p.CountryOfOrigin, f.CountryOfOrigin) {
		return false
	}
	if f.InStock != nil && p.InStock != *f.InStock {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	if f.Search != "" {
		if !containsFold(p.Name, f.Search) &&
			!containsFold(p.Description, f.Search) &&
			!containsFold(p.ShortDescription, f.Search) {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func (s *Service) Museums(_ context.Context) []domain.Museum {
	return s.store.Museums()
}

func (s *Service) Museum(_ context.Context, id int) (domain.Museum, error) {
	return s.store.Museum(id)
}

func (s *Service) Categories(_ context.Context) []domain.Category {
	return s.store.Categories()
}

func (s *Service) Category(_ context.Context, id int) (domain.Category, error) {
	return s.store.Category(id)
}

func (s *Service) CategoryBySlug(_ context.Context, slug string) (domain.Category, error) {
	return s.store.CategoryBySlug(slug)
}

// Products returns the products matching every active predicate, each
// joined with its museum and category, in store enumeration order. No sort
// is applied; ordering beyond that is a presentation concern.
func (s *Service) Products(_ context.Context, filter Filter) ([]domain.ProductWithMuseum, error) {
	result := make([]domain.ProductWithMuseum, 0)
	for _, p := range s.store.Products() {
		if !filter.matches(p) {
			continue
		}
		joined, err := s.join(p)
		if err != nil {
			return nil, err
		}
		result = append(result, joined)
	}
	return result, nil
}

// Product joins a single product, or returns domain.ErrNotFound.
func (s *Service) Product(_ context.Context, id int) (domain.ProductWithMuseum, error) {
	p, err := s.store.Product(id)
	if err != nil {
		return domain.ProductWithMuseum{}, err
	}
	return s.join(p)
}

// Join resolves the museum and category for a raw product record. It is
// exported for the cart service, which attaches the projection to cart
// items.
func (s *Service) Join(p domain.Product) (domain.ProductWithMuseum, error) {
	return s.join(p)
}

func (s *Service) join(p domain.Product) (domain.ProductWithMuseum, error) {
	museum, err := s.store.Museum(p.MuseumID)
	if err != nil {
		return domain.ProductWithMuseum{}, fmt.Errorf("product %d references museum %d: %w", p.ID, p.MuseumID, domain.ErrDanglingReference)
	}
	category, err := s.store.Category(p.CategoryID)
	if err != nil {
		return domain.ProductWithMuseum{}, fmt.Errorf("product %d references category %d: %w", p.ID, p.CategoryID, domain.ErrDanglingReference)
	}
	return domain.ProductWithMuseum{Product: p, Museum: museum, Category: category}, nil
}
