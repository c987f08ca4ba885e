package service

import (
	"sort"
	"strings"

	"voice-ecommerce-be/internal/model"
	"voice-ecommerce-be/internal/repository/memory"
)

const DefaultSearchLimit = 20

// SearchParams are the filter criteria shared by the HTTP API and voice
// commands. Nil price pointers mean "no bound".
type SearchParams struct {
	Query    string
	Category string
	MinPrice *int
	MaxPrice *int
	Brand    string
	SortBy   string
	Limit    int
}

// SearchResult carries the filtered page plus the pre-truncation match count.
type SearchResult struct {
	Products       []model.Product
	Total          int
	Returned       int
	FiltersApplied map[string]interface{}
}

// PriceRange is the min/max price across the whole catalog.
type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type ICatalogService interface {
	Search(params SearchParams) SearchResult
	GetByID(id string) (model.Product, bool)
	All() []model.Product
	Categories() []string
	Brands() []string
	PriceRange() PriceRange
}

type catalogService struct {
	repo *memory.CatalogRepository
}

func NewCatalogService(repo *memory.CatalogRepository) ICatalogService {
	return &catalogService{repo: repo}
}

// Search filters, sorts and truncates the catalog. It is the single source of
// truth for product queries: the HTTP endpoint and the voice function
// dispatcher both call it, so manual UI filters and voice commands behave
// identically.
func (s *catalogService) Search(params SearchParams) SearchResult {
	filtered := make([]model.Product, 0, len(s.repo.All()))
	filtered = append(filtered, s.repo.All()...)
	applied := map[string]interface{}{}

	if params.Category != "" {
		categoryLower := strings.ToLower(params.Category)
		filtered = keep(filtered, func(p model.Product) bool {
			return strings.ToLower(p.Category) == categoryLower
		})
		applied["category"] = categoryLower
	}

	if params.Brand != "" {
		brandLower := strings.ToLower(params.Brand)
		filtered = keep(filtered, func(p model.Product) bool {
			return strings.ToLower(p.Brand) == brandLower
		})
		applied["brand"] = params.Brand
	}

	if params.MinPrice != nil {
		min := *params.MinPrice
		filtered = keep(filtered, func(p model.Product) bool { return p.Price >= min })
		applied["min_price"] = min
	}

	if params.MaxPrice != nil {
		max := *params.MaxPrice
		filtered = keep(filtered, func(p model.Product) bool { return p.Price <= max })
		applied["max_price"] = max
	}

	if params.Query != "" {
		words := strings.Fields(strings.ToLower(params.Query))
		filtered = keep(filtered, func(p model.Product) bool {
			searchable := strings.ToLower(p.Name + " " + p.Description + " " + p.Brand + " " + p.Category)
			for _, w := range words {
				if !strings.Contains(searchable, w) {
					return false
				}
			}
			return true
		})
		applied["query"] = params.Query
	}

	switch params.SortBy {
	case "price_asc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case "price_desc":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case "rating":
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Rating > filtered[j].Rating })
	default:
		// relevance: canonical catalog order.
	}
	if params.SortBy != "" && params.SortBy != "relevance" {
		applied["sort_by"] = params.SortBy
	}

	total := len(filtered)

	limit := params.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if len(filtered) > limit {
		filtered = filtered[:limit]
	}

	return SearchResult{
		Products:       filtered,
		Total:          total,
		Returned:       len(filtered),
		FiltersApplied: applied,
	}
}

func (s *catalogService) GetByID(id string) (model.Product, bool) {
	return s.repo.FindByID(id)
}

func (s *catalogService) All() []model.Product {
	return s.repo.All()
}

func (s *catalogService) Categories() []string {
	return uniqueSorted(s.repo.All(), func(p model.Product) string { return p.Category })
}

func (s *catalogService) Brands() []string {
	return uniqueSorted(s.repo.All(), func(p model.Product) string { return p.Brand })
}

func (s *catalogService) PriceRange() PriceRange {
	all := s.repo.All()
	pr := PriceRange{}
	for i, p := range all {
		if i == 0 || p.Price < pr.Min {
			pr.Min = p.Price
		}
		if p.Price > pr.Max {
			pr.Max = p.Price
		}
	}
	return pr
}

func keep(products []model.Product, pred func(model.Product) bool) []model.Product {
	out := products[:0]
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func uniqueSorted(products []model.Product, key func(model.Product) string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, p := range products {
		k := key(p)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
