package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// Product represents a single catalog product from any source.
type Product struct {
	CreatedAt   time.Time
	Name        string
	Description string
	Brand       string
	Category    string // taxonomy key of the currently stored category
	Subcategory string // taxonomy key of the currently stored subcategory
	Hash        string
	ImageFile   string
	ID          int64
	Price       float64
	StockQty    int
}

// GenerateHash creates a content hash for duplicate detection on import.
func (p *Product) GenerateHash() string {
	data := fmt.Sprintf("%s:%s:%.2f",
		p.Name,
		p.Brand,
		p.Price)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
