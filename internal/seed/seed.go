// Package seed installs the sample catalog the storefront starts with. The
// store is in-memory, so Apply runs in-process at startup and a restart
// resets everything, carts included.
package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"museumsouk/internal/domain"
	"museumsouk/internal/store"
)

// Apply inserts the fixed sample museums, categories and products. Entity
// ids are assigned by the store in order, starting at 1, and the product
// fixtures reference museums and categories by those ids.
func Apply(s *store.Store) {
	for _, m := range museumFixtures() {
		s.CreateMuseum(m)
	}
	for _, c := range categoryFixtures() {
		s.CreateCategory(c)
	}
	for _, p := range productFixtures() {
		s.CreateProduct(p)
	}
}

// LoadFile reads a JSON catalog file and appends its museums, categories
// and products to the store, in that order. Product references in the file
// point at store ids, so a file meant to extend the built-in seed must
// account for the ids Apply already assigned.
func LoadFile(s *store.Store, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog file: %w", err)
	}

	var catalog struct {
		Museums    []domain.Museum   `json:"museums"`
		Categories []domain.Category `json:"categories"`
		Products   []domain.Product  `json:"products"`
	}
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	for _, m := range catalog.Museums {
		s.CreateMuseum(m)
	}
	for _, c := range catalog.Categories {
		s.CreateCategory(c)
	}
	for _, p := range catalog.Products {
		if _, err := s.Museum(p.MuseumID); err != nil {
			return fmt.Errorf("catalog product %q references unknown museum %d", p.Name, p.MuseumID)
		}
		if _, err := s.Category(p.CategoryID); err != nil {
			return fmt.Errorf("catalog product %q references unknown category %d", p.Name, p.CategoryID)
		}
		s.CreateProduct(p)
	}
	return nil
}

func museumFixtures() []domain.Museum {
	return []domain.Museum{
		{Name: "Louvre Museum", Location: "Paris", Country: "France", Description: "World's largest art museum", Website: "https://louvre.fr", ImageURL: "https://images.unsplash.com/photo-1499856871958-5b9627545d1a"},
		{Name: "Museum of Modern Art (MoMA)", Location: "New York", Country: "USA", Description: "Leading museum of modern and contemporary art", Website: "https://moma.org", ImageURL: "https://images.unsplash.com/photo-1566471785347-9dc2d2b0a0e5"},
		{Name: "British Museum", Location: "London", Country: "UK", Description: "World history and culture museum", Website: "https://britishmuseum.org", ImageURL: "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0"},
		{Name: "Metropolitan Museum of Art", Location: "New York", Country: "USA", Description: "Comprehensive art collection", Website: "https://metmuseum.org", ImageURL: "https://images.unsplash.com/photo-1518998053901-5348d3961a04"},
		{Name: "Smithsonian Institution", Location: "Washington DC", Country: "USA", Description: "World's largest museum complex", Website: "https://si.edu", ImageURL: "https://images.unsplash.com/photo-1578662996442-48f60103fc96"},
		{Name: "Uffizi Gallery", Location: "Florence", Country: "Italy", Description: "Renaissance art collection", Website: "https://uffizi.it", ImageURL: "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c"},
	}
}

func categoryFixtures() []domain.Category {
	return []domain.Category{
		{Name: "Art Prints", Slug: "art-prints", Description: "High-quality reproductions of famous artworks"},
		{Name: "Clothing", Slug: "clothing", Description: "Museum-themed apparel and accessories"},
		{Name: "T-Shirts", Slug: "t-shirts", Description: "Comfortable museum-themed t-shirts", ParentID: intPtr(2)},
		{Name: "Scarves", Slug: "scarves", Description: "Elegant scarves with artistic designs", ParentID: intPtr(2)},
		{Name: "Souvenirs", Slug: "souvenirs", Description: "Memorable keepsakes from museum visits"},
		{Name: "Mugs", Slug: "mugs", Description: "Coffee mugs with museum artwork", ParentID: intPtr(5)},
		{Name: "Postcards", Slug: "postcards", Description: "Beautiful postcards featuring museum pieces", ParentID: intPtr(5)},
		{Name: "Cultural Artifacts", Slug: "cultural-artifacts", Description: "Replica artifacts and historical items"},
		{Name: "Books", Slug: "books", Description: "Art books and museum publications"},
		{Name: "Jewelry", Slug: "jewelry", Description: "Museum-inspired jewelry and accessories"},
		{Name: "Home Decor", Slug: "home-decor", Description: "Decorative items for your home"},
		{Name: "Tickets", Slug: "tickets", Description: "Museum admission and special event tickets"},
	}
}

func productFixtures() []domain.Product {
	return []domain.Product{
		{
			Name:             "Van Gogh Starry Night Print",
			Description:      "High-quality canvas reproduction of Van Gogh's iconic masterpiece, printed with archival inks on premium canvas.",
			ShortDescription: "Iconic Van Gogh canvas reproduction",
			Price:            decimal.RequireFromString("45.00"),
			Currency:         "USD",
			ImageURL:         "https://images.unsplash.com/photo-1578662996442-48f60103fc96",
			MuseumID:         2,
			CategoryID:       1,
			Material:         "Canvas",
			CountryOfOrigin:  "USA",
			InStock:          true,
			StockQuantity:    25,
			Featured:         true,
		},
		{
			Name:             "Egyptian Sphinx Miniature Replica",
			Description:      "Detailed miniature replica of the Great Sphinx, handcrafted with museum-quality attention to detail.",
			ShortDescription: "Handcrafted Sphinx miniature replica",
			Price:            decimal.RequireFromString("32.99"),
			Currency:         "USD",
			ImageURL:         "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0",
			MuseumID:         3,
			CategoryID:       8,
			Material:         "Resin",
			CountryOfOrigin:  "UK",
			InStock:          true,
			StockQuantity:    15,
			Featured:         true,
		},
		{
			Name:             "Mona Lisa Inspired Silk Scarf",
			Description:      "Luxurious silk scarf featuring an elegant interpretation of the Mona Lisa, perfect for art lovers.",
			ShortDescription: "Elegant Mona Lisa silk scarf",
			Price:            decimal.RequireFromString("68.00"),
			Currency:         "USD",
			ImageURL:         "https://images.unsplash.com/photo-1544947950-fa07a98d237f",
			MuseumID:         1,
			CategoryID:       4,
			Material:         "Silk",
			CountryOfOrigin:  "France",
			InStock:          true,
			StockQuantity:    12,
			Featured:         true,
		},
		{
			Name:             "Abstract Art Collection Mug",
			Description:      "Modern coffee mug featuring abstract art designs from contemporary exhibitions.",
			ShortDescription: "Modern abstract art coffee mug",
			Price:            decimal.RequireFromString("24.95"),
			Currency:         "USD",
			ImageURL:         "https://images.unsplash.com/photo-1506905925346-21bda4d32df4",
			MuseumID:         2,
			CategoryID:       6,
			Material:         "Ceramic",
			CountryOfOrigin:  "USA",
			InStock:          true,
			StockQuantity:    30,
			Featured:         true,
		},
		{
			Name:             "Ancient Greek Amphora Replica",
			Description:      "Museum-quality replica of an ancient Greek amphora with authentic geometric patterns.",
			ShortDescription: "Authentic Greek amphora replica",
			Price:            decimal.RequireFromString("89.00"),
			Currency:         "USD",
			ImageURL:         "https://images.unsplash.com/photo-1518998053901-5348d3961a04",
			MuseumID:         4,
			CategoryID:       8,
			Material:         "Ceramic",
			CountryOfOrigin:  "USA",
			InStock:          true,
			StockQuantity:    8,
			Featured:         true,
		},
		{
			Name:             "Da Vinci Codex Journal",
			Description:      "Leather-bound journal featuring pages inspired by Leonardo da Vinci's notebooks.",
			ShortDescription: "Da Vinci inspired leather journal",
			Price:            decimal.RequireFromString("28.50"),
			Currency:         "USD",
			ImageURL:         "https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c",
			MuseumID:         5,
			CategoryID:       9,
			Material:         "Leather",
			CountryOfOrigin:  "USA",
			InStock:          true,
			StockQuantity:    20,
			Featured:         true,
		},
		{
			Name:             "Museum Quality T-Shirt",
			Description:      "Comfortable cotton t-shirt featuring iconic museum artwork in a modern design.",
			ShortDescription: "Comfortable museum artwork t-shirt",
			Price:            decimal.RequireFromString("19.99"),
			Currency:         "USD",
			ImageURL:         "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab",
			MuseumID:         1,
			CategoryID:       3,
			Material:         "Cotton",
			CountryOfOrigin:  "France",
			InStock:          true,
			StockQuantity:    50,
			Featured:         false,
		},
		{
			Name:             "Renaissance Art Postcards Set",
			Description:      "Beautiful set of 12 postcards featuring Renaissance masterpieces from the Uffizi collection.",
			ShortDescription: "Renaissance masterpieces postcard set",
			Price:            decimal.RequireFromString("12.99"),
			Currency:         "USD",
			ImageURL:         "https://images.unsplash.com/photo-1578662996442-48f60103fc96",
			MuseumID:         6,
			CategoryID:       7,
			Material:         "Paper",
			CountryOfOrigin:  "Italy",
			InStock:          true,
			StockQuantity:    40,
			Featured:         false,
		},
	}
}

func intPtr(v int) *int {
	return &v
}
