package domain

// Product is a catalog entry. The catalog is owned by the storefront;
// the assistant only reads it.
type Product struct {
	ProductID     string  `json:"product_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"original_price,omitempty"`
	Rating        float64 `json:"rating"`
	IsSale        bool    `json:"is_sale"`
	IsNew         bool    `json:"is_new"`
	Image         string  `json:"image"`
}
