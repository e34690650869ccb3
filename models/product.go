package models

// DefaultCategory is assigned when a product is created without one.
const DefaultCategory = "uncategorized"

type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category"`
	Image    string  `json:"image"`
	Active   bool    `json:"active"`
}

type CreateProductRequest struct {
	Name     string  `form:"name" binding:"required"`
	Price    float64 `form:"price"`
	Category string  `form:"category"`
	Image    string  `form:"image"`
}

type UpdateProductRequest struct {
	Name     string  `form:"name" binding:"required"`
	Price    float64 `form:"price"`
	Category string  `form:"category"`
	Image    string  `form:"image"`
}
