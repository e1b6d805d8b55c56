package model

import "bazaar/internal/domain/entity"

// ProductModel is the Firestore-specific struct for the 'products'
// collection. The catalog is maintained by an external administrative
// surface; this service only ever reads these documents.
type ProductModel struct {
	Name        string  `firestore:"name"`
	Category    string  `firestore:"category"`
	Price       int64   `firestore:"price"`
	Image       string  `firestore:"image"`
	Description string  `firestore:"description"`
	Rating      float64 `firestore:"rating"`
	Stock       int     `firestore:"stock"`
}

// ToProductDomain converts a stored product document to the domain entity.
func ToProductDomain(id string, m *ProductModel) *entity.Product {
	return &entity.Product{
		ID:          id,
		Name:        m.Name,
		Category:    m.Category,
		Price:       entity.Money(m.Price),
		Image:       m.Image,
		Description: m.Description,
		Rating:      m.Rating,
		Stock:       m.Stock,
	}
}
