package entity

// Product is a catalog entry. The catalog is owned by an external
// administrative surface; this service only reads it.
type Product struct {
	ID          string  `json:"id"`          // Document ID in the catalog collection.
	Name        string  `json:"name"`        // Display name.
	Category    string  `json:"category"`    // Category label used for filtering.
	Price       Money   `json:"price"`       // Unit price in minor units.
	Image       string  `json:"image"`       // Image URL.
	Description string  `json:"description"` // Long description.
	Rating      float64 `json:"rating"`      // Average rating, catalog-maintained.
	Stock       int     `json:"stock"`       // Stock count, catalog-maintained.
}

// Snapshot copies the displayable product fields into a priced snapshot.
// Snapshots are what carts and orders hold; later catalog changes must not
// retroactively affect them.
func (p *Product) Snapshot() PricedSnapshot {
	return PricedSnapshot{
		ProductID: p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Image:     p.Image,
	}
}
