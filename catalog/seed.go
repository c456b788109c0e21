package catalog

import "github.com/globalantic/globot/domain"

// seedProducts is the Globalantic storefront product set.
var seedProducts = []domain.Product{
	{
		ProductID:     "prod_001",
		Name:          "Running Shoes Pro",
		Category:      "Footwear",
		Description:   "Lightweight running shoes with responsive cushioning for daily training",
		Price:         89.99,
		OriginalPrice: 119.99,
		Rating:        4.7,
		IsSale:        true,
		Image:         "/images/products/running-shoes-pro.jpg",
	},
	{
		ProductID:   "prod_002",
		Name:        "Classic Leather Sneakers",
		Category:    "Footwear",
		Description: "Timeless low-top sneakers in full-grain leather",
		Price:       74.50,
		Rating:      4.4,
		Image:       "/images/products/classic-leather-sneakers.jpg",
	},
	{
		ProductID:   "prod_003",
		Name:        "Wireless Noise-Cancelling Headphones",
		Category:    "Electronics",
		Description: "Over-ear headphones with active noise cancelling and 30-hour battery",
		Price:       199.00,
		Rating:      4.8,
		IsNew:       true,
		Image:       "/images/products/wireless-headphones.jpg",
	},
	{
		ProductID:     "prod_004",
		Name:          "Smart Fitness Watch",
		Category:      "Electronics",
		Description:   "Fitness tracker with heart-rate monitoring and GPS",
		Price:         129.99,
		OriginalPrice: 159.99,
		Rating:        4.5,
		IsSale:        true,
		Image:         "/images/products/smart-fitness-watch.jpg",
	},
	{
		ProductID:   "prod_005",
		Name:        "Organic Cotton T-Shirt",
		Category:    "Clothing",
		Description: "Soft organic cotton tee available in six colors",
		Price:       24.99,
		Rating:      4.2,
		Image:       "/images/products/organic-cotton-tshirt.jpg",
	},
	{
		ProductID:   "prod_006",
		Name:        "Denim Jacket",
		Category:    "Clothing",
		Description: "Relaxed-fit denim jacket with a vintage wash",
		Price:       64.00,
		Rating:      4.3,
		IsNew:       true,
		Image:       "/images/products/denim-jacket.jpg",
	},
	{
		ProductID:     "prod_007",
		Name:          "Ceramic Table Lamp",
		Category:      "Home Decor",
		Description:   "Handmade ceramic lamp with a warm linen shade",
		Price:         48.75,
		OriginalPrice: 65.00,
		Rating:        4.6,
		IsSale:        true,
		Image:         "/images/products/ceramic-table-lamp.jpg",
	},
	{
		ProductID:   "prod_008",
		Name:        "Woven Throw Blanket",
		Category:    "Home Decor",
		Description: "Chunky-knit throw blanket in recycled wool",
		Price:       39.99,
		Rating:      4.5,
		Image:       "/images/products/woven-throw-blanket.jpg",
	},
	{
		ProductID:   "prod_009",
		Name:        "Leather Crossbody Bag",
		Category:    "Accessories",
		Description: "Compact crossbody bag with adjustable strap",
		Price:       88.00,
		Rating:      4.7,
		IsNew:       true,
		Image:       "/images/products/leather-crossbody-bag.jpg",
	},
	{
		ProductID:     "prod_010",
		Name:          "Polarized Sunglasses",
		Category:      "Accessories",
		Description:   "UV400 polarized sunglasses with acetate frame",
		Price:         34.99,
		OriginalPrice: 49.99,
		Rating:        4.1,
		IsSale:        true,
		Image:         "/images/products/polarized-sunglasses.jpg",
	},
	{
		ProductID:   "prod_011",
		Name:        "Stainless Steel Water Bottle",
		Category:    "Accessories",
		Description: "Insulated bottle that keeps drinks cold for 24 hours",
		Price:       21.50,
		Rating:      4.6,
		Image:       "/images/products/steel-water-bottle.jpg",
	},
	{
		ProductID:   "prod_012",
		Name:        "Trail Hiking Boots",
		Category:    "Footwear",
		Description: "Waterproof hiking boots with aggressive grip for rough trails",
		Price:       139.00,
		Rating:      4.8,
		IsNew:       true,
		Image:       "/images/products/trail-hiking-boots.jpg",
	},
}
