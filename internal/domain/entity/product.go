package entity

// Product represents a sellable item in the catalog.
// Price is a non-negative decimal and stock a non-negative integer; both are
// validated at the delivery layer, not here.
type Product struct {
	ID          string  // The store-assigned identifier for the product.
	Name        string  // Display name of the product.
	Description string  // Free-form product description.
	Price       float64 // Unit price.
	Stock       int     // Units currently in stock.
	ImageURL    string  // Reference to the product image.
}
