package domain

import "time"

type CartItem struct {
	ID        int       `json:"id"`
	SessionID string    `json:"sessionId"`
	ProductID int       `json:"productId"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"createdAt"`
}

type CartItemWithProduct struct {
	CartItem
	Product ProductWithMuseum `json:"product"`
}
