package voice

import (
	"encoding/json"
	"fmt"
	"strings"

	"voice-ecommerce-be/internal/model"
	"voice-ecommerce-be/internal/service"
)

// PageRoutes is the fixed table of pages the assistant may navigate to.
var PageRoutes = map[string]string{
	"home":     "/",
	"products": "/products",
	"profile":  "/profile",
	"cart":     "/cart",
	"checkout": "/checkout",
}

// Dispatcher executes one named function against session state and the
// catalog service. Calls are strictly sequential per session: the upstream
// event loop processes one message at a time.
type Dispatcher struct {
	catalog service.ICatalogService
	state   *State
}

func NewDispatcher(catalog service.ICatalogService, state *State) *Dispatcher {
	return &Dispatcher{catalog: catalog, state: state}
}

// Dispatch runs the function named by the upstream tool call. Unknown names
// and malformed arguments yield a failure Result, never an error: the result
// is always fed back upstream so the model can narrate the failure.
func (d *Dispatcher) Dispatch(name string, rawArgs []byte) Result {
	switch name {
	case "search_products":
		return d.searchProducts(rawArgs)
	case "get_product_details":
		return d.getProductDetails(rawArgs)
	case "compare_products":
		return d.compareProducts(rawArgs)
	case "add_to_cart":
		return d.addToCart(rawArgs)
	case "navigate_to_page":
		return d.navigateToPage(rawArgs)
	default:
		return failure(fmt.Sprintf("Unknown function: %s", name))
	}
}

type searchArgs struct {
	Query    string `json:"query"`
	Category string `json:"category"`
	MinPrice *int   `json:"min_price"`
	MaxPrice *int   `json:"max_price"`
	Brand    string `json:"brand"`
	SortBy   string `json:"sort_by"`
}

func (d *Dispatcher) searchProducts(rawArgs []byte) Result {
	var args searchArgs
	if err := unmarshalArgs(rawArgs, &args); err != nil {
		return failure("Invalid search arguments.")
	}

	result := d.catalog.Search(service.SearchParams{
		Query:    args.Query,
		Category: args.Category,
		MinPrice: args.MinPrice,
		MaxPrice: args.MaxPrice,
		Brand:    args.Brand,
		SortBy:   args.SortBy,
	})

	// Remember the shown set for follow-up ordinal references.
	d.state.SetProducts(result.Products, result.FiltersApplied)

	return Result{
		Success: true,
		Data: map[string]interface{}{
			"products":        result.Products,
			"total":           result.Total,
			"returned":        result.Returned,
			"filters_applied": result.FiltersApplied,
		},
		UIAction: UIAction{
			Kind:       ActionShowProducts,
			NavigateTo: "/products",
			Filters:    result.FiltersApplied,
		},
	}
}

type itemRefArgs struct {
	Position    *int   `json:"position"`
	ProductName string `json:"product_name"`
}

func (d *Dispatcher) getProductDetails(rawArgs []byte) Result {
	var args itemRefArgs
	if err := unmarshalArgs(rawArgs, &args); err != nil {
		return failure("Invalid arguments.")
	}

	product, ok := d.resolve(args.Position, args.ProductName)
	if !ok {
		return failure("Could not find the requested product. Please try again with a different position or name.")
	}

	data := map[string]interface{}{"product": product}
	if args.Position != nil {
		data["position"] = *args.Position
	}
	return Result{
		Success:  true,
		Data:     data,
		UIAction: UIAction{Kind: ActionShowDetails, ProductID: product.ID},
	}
}

type compareArgs struct {
	Positions    []int    `json:"positions"`
	ProductNames []string `json:"product_names"`
}

func (d *Dispatcher) compareProducts(rawArgs []byte) Result {
	var args compareArgs
	if err := unmarshalArgs(rawArgs, &args); err != nil {
		return failure("Invalid arguments.")
	}

	var chosen []model.Product
	seen := map[string]struct{}{}
	add := func(p model.Product) {
		if _, dup := seen[p.ID]; dup {
			return
		}
		seen[p.ID] = struct{}{}
		chosen = append(chosen, p)
	}

	for _, pos := range args.Positions {
		if p, ok := d.resolveByPosition(pos); ok {
			add(p)
		}
	}
	for _, name := range args.ProductNames {
		if p, ok := d.resolveByName(name, seen); ok {
			add(p)
		}
	}

	if len(chosen) < 2 {
		return failure(fmt.Sprintf("Need at least 2 products to compare. Found %d.", len(chosen)))
	}
	return Result{
		Success: true,
		Data: map[string]interface{}{
			"products": chosen,
			"count":    len(chosen),
		},
		UIAction: UIAction{Kind: ActionCompareProducts},
	}
}

func (d *Dispatcher) addToCart(rawArgs []byte) Result {
	var args itemRefArgs
	if err := unmarshalArgs(rawArgs, &args); err != nil {
		return failure("Invalid arguments.")
	}

	product, ok := d.resolve(args.Position, args.ProductName)
	if !ok {
		return failure("Could not find the product. Please specify which product you want to add.")
	}
	// Availability is checked only after resolution succeeds.
	if !product.InStock {
		return failure(fmt.Sprintf("%s is currently out of stock.", product.Name))
	}

	return Result{
		Success: true,
		Data: map[string]interface{}{
			"product": product,
			"message": fmt.Sprintf("Added %s to cart", product.Name),
		},
		UIAction: UIAction{Kind: ActionAddToCart},
	}
}

type navigateArgs struct {
	Page string `json:"page"`
}

func (d *Dispatcher) navigateToPage(rawArgs []byte) Result {
	var args navigateArgs
	if err := unmarshalArgs(rawArgs, &args); err != nil {
		return failure("Invalid arguments.")
	}

	route, ok := PageRoutes[args.Page]
	if !ok {
		return failure(fmt.Sprintf("Unknown page: %s", args.Page))
	}
	return Result{
		Success: true,
		Data: map[string]interface{}{
			"page":  args.Page,
			"route": route,
		},
		UIAction: UIAction{Kind: ActionNavigate, NavigateTo: route},
	}
}

// resolve applies the ordinal-or-name rule: position takes precedence, name is
// tried only when no position was supplied.
func (d *Dispatcher) resolve(position *int, name string) (model.Product, bool) {
	if position != nil {
		return d.resolveByPosition(*position)
	}
	if name != "" {
		return d.resolveByName(name, nil)
	}
	return model.Product{}, false
}

// resolveByPosition resolves a 1-based ordinal against the last shown list if
// non-empty, otherwise against the full catalog. Out of range is a miss, not a
// fault.
func (d *Dispatcher) resolveByPosition(position int) (model.Product, bool) {
	source := d.state.LastProducts()
	if len(source) == 0 {
		source = d.catalog.All()
	}
	if position < 1 || position > len(source) {
		return model.Product{}, false
	}
	return source[position-1], true
}

// resolveByName does a case-insensitive substring match, scanning the last
// shown list first and falling back to the full catalog. First match wins;
// products in skip are passed over (used by compare to avoid duplicates).
func (d *Dispatcher) resolveByName(name string, skip map[string]struct{}) (model.Product, bool) {
	nameLower := strings.ToLower(name)
	scan := func(products []model.Product) (model.Product, bool) {
		for _, p := range products {
			if _, skipped := skip[p.ID]; skipped {
				continue
			}
			if strings.Contains(strings.ToLower(p.Name), nameLower) {
				return p, true
			}
		}
		return model.Product{}, false
	}
	if p, ok := scan(d.state.LastProducts()); ok {
		return p, true
	}
	return scan(d.catalog.All())
}

func unmarshalArgs(rawArgs []byte, v interface{}) error {
	if len(rawArgs) == 0 {
		return nil
	}
	return json.Unmarshal(rawArgs, v)
}
