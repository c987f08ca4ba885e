package model

// Product is a single catalog item. The catalog is a fixed in-memory table,
// so products are plain value structs shared read-only across sessions.
type Product struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Category    string            `json:"category"`
	Brand       string            `json:"brand"`
	Price       int               `json:"price"`
	Rating      float64           `json:"rating"`
	Thumbnail   string            `json:"thumbnail"`
	Specs       map[string]string `json:"specs"`
	InStock     bool              `json:"in_stock"`
	Description string            `json:"description"`
}
