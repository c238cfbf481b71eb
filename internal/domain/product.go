package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"shortDescription"`
	Price            decimal.Decimal `json:"price"`
	Currency         string          `json:"currency"`
	ImageURL         string          `json:"imageUrl"`
	MuseumID         int             `json:"museumId"`
	CategoryID       int             `json:"categoryId"`
	Material         string          `json:"material,omitempty"`
	CountryOfOrigin  string          `json:"countryOfOrigin,omitempty"`
	InStock          bool            `json:"inStock"`
	StockQuantity    int             `json:"stockQuantity"`
	Featured         bool            `json:"featured"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ProductWithMuseum is the read-side projection of a product joined with
// its owning museum and category. It is built on read and never stored.
type ProductWithMuseum struct {
	Product
	Museum   Museum   `json:"museum"`
	Category Category `json:"category"`
}
