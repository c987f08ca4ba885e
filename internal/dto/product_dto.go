package dto

import (
	"voice-ecommerce-be/internal/model"
	"voice-ecommerce-be/internal/service"
)

// SearchProductsRequest mirrors the query parameters of GET /api/products.
// The same criteria reach the catalog service whether they come from here or
// from a voice command.
type SearchProductsRequest struct {
	Query    string `query:"query"`
	Category string `query:"category" validate:"omitempty,oneof=mobiles laptops accessories"`
	MinPrice *int   `query:"min_price" validate:"omitempty,min=0"`
	MaxPrice *int   `query:"max_price" validate:"omitempty,min=0"`
	Brand    string `query:"brand"`
	SortBy   string `query:"sort_by" validate:"omitempty,oneof=price_asc price_desc rating relevance"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=100"`
}

type SearchProductsData struct {
	Products       []model.Product        `json:"products"`
	Total          int                    `json:"total"`
	Returned       int                    `json:"returned"`
	FiltersApplied map[string]interface{} `json:"filters_applied"`
}

type SearchMetadata struct {
	AvailableCategories []string           `json:"available_categories"`
	AvailableBrands     []string           `json:"available_brands"`
	PriceRange          service.PriceRange `json:"price_range"`
}

type SearchProductsResponse struct {
	Success  bool               `json:"success"`
	Data     SearchProductsData `json:"data"`
	Metadata SearchMetadata     `json:"metadata"`
}

type MetadataResponse struct {
	Categories []string           `json:"categories"`
	Brands     []string           `json:"brands"`
	PriceRange service.PriceRange `json:"price_range"`
}
