package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-ecommerce-be/internal/model"
	"voice-ecommerce-be/internal/repository/memory"
	"voice-ecommerce-be/internal/service"
)

func newTestDispatcher() (*Dispatcher, *State) {
	state := NewState()
	catalog := service.NewCatalogService(memory.NewCatalogRepository())
	return NewDispatcher(catalog, state), state
}

func shownProducts(t *testing.T, result Result) []model.Product {
	t.Helper()
	products, ok := result.Data["products"].([]model.Product)
	require.True(t, ok)
	return products
}

func TestDispatch_UnknownFunction(t *testing.T) {
	d, _ := newTestDispatcher()

	result := d.Dispatch("foo", []byte(`{}`))
	assert.False(t, result.Success)
	assert.Equal(t, "Unknown function: foo", result.Error)
	assert.Equal(t, ActionNone, result.UIAction.Kind)
}

func TestDispatch_SearchReplacesSessionState(t *testing.T) {
	d, state := newTestDispatcher()

	result := d.Dispatch("search_products", []byte(`{"category": "laptops"}`))
	require.True(t, result.Success)
	assert.Equal(t, ActionShowProducts, result.UIAction.Kind)
	assert.Equal(t, "/products", result.UIAction.NavigateTo)
	assert.Equal(t, "laptops", result.UIAction.Filters["category"])
	assert.Len(t, state.LastProducts(), 10)

	// A second search overwrites, never merges.
	result = d.Dispatch("search_products", []byte(`{"category": "mobiles", "brand": "Apple"}`))
	require.True(t, result.Success)
	assert.Len(t, state.LastProducts(), 2)
	assert.Equal(t, "Apple", state.LastFilters()["brand"])
}

func TestDispatch_DetailsByPositionUsesLastShownList(t *testing.T) {
	d, _ := newTestDispatcher()

	search := d.Dispatch("search_products", []byte(`{"category": "laptops", "sort_by": "price_asc"}`))
	shown := shownProducts(t, search)
	require.GreaterOrEqual(t, len(shown), 2)

	result := d.Dispatch("get_product_details", []byte(`{"position": 2}`))
	require.True(t, result.Success)
	assert.Equal(t, ActionShowDetails, result.UIAction.Kind)
	assert.Equal(t, shown[1].ID, result.UIAction.ProductID)
	assert.Equal(t, shown[1], result.Data["product"])
	assert.Equal(t, 2, result.Data["position"])
}

func TestDispatch_PositionFallsBackToCatalogWhenNothingShown(t *testing.T) {
	d, _ := newTestDispatcher()

	// No search yet: ordinal resolves against the full catalog.
	result := d.Dispatch("get_product_details", []byte(`{"position": 1}`))
	require.True(t, result.Success)
	assert.Equal(t, "MOB001", result.UIAction.ProductID)
}

func TestDispatch_PositionOutOfRange(t *testing.T) {
	d, _ := newTestDispatcher()

	result := d.Dispatch("get_product_details", []byte(`{"position": 35}`))
	assert.False(t, result.Success)
	assert.Equal(t, ActionNone, result.UIAction.Kind)
}

func TestDispatch_DetailsByNameSubstringMatch(t *testing.T) {
	d, _ := newTestDispatcher()

	result := d.Dispatch("get_product_details", []byte(`{"product_name": "macbook"}`))
	require.True(t, result.Success)
	product := result.Data["product"].(model.Product)
	assert.Contains(t, product.Name, "MacBook")
	// First match in catalog order wins.
	assert.Equal(t, "LAP001", product.ID)
	// No position argument, so none is echoed back.
	_, hasPosition := result.Data["position"]
	assert.False(t, hasPosition)
}

func TestDispatch_PositionTakesPrecedenceOverName(t *testing.T) {
	d, _ := newTestDispatcher()

	result := d.Dispatch("get_product_details", []byte(`{"position": 1, "product_name": "macbook"}`))
	require.True(t, result.Success)
	assert.Equal(t, "MOB001", result.UIAction.ProductID)
}

func TestDispatch_CompareByPositions(t *testing.T) {
	d, _ := newTestDispatcher()

	search := d.Dispatch("search_products", []byte(`{"category": "mobiles"}`))
	shown := shownProducts(t, search)
	require.GreaterOrEqual(t, len(shown), 3)

	result := d.Dispatch("compare_products", []byte(`{"positions": [1, 3]}`))
	require.True(t, result.Success)
	assert.Equal(t, ActionCompareProducts, result.UIAction.Kind)
	assert.Equal(t, 2, result.Data["count"])

	chosen := result.Data["products"].([]model.Product)
	assert.Equal(t, []model.Product{shown[0], shown[2]}, chosen)
}

func TestDispatch_CompareDeduplicatesAndNeedsTwo(t *testing.T) {
	d, _ := newTestDispatcher()

	// Same item twice by position: only one resolved product.
	result := d.Dispatch("compare_products", []byte(`{"positions": [1, 1]}`))
	assert.False(t, result.Success)
	assert.Equal(t, "Need at least 2 products to compare. Found 1.", result.Error)
	assert.Equal(t, ActionNone, result.UIAction.Kind)

	// Nothing resolvable at all.
	result = d.Dispatch("compare_products", []byte(`{"positions": [99]}`))
	assert.False(t, result.Success)
	assert.Equal(t, "Need at least 2 products to compare. Found 0.", result.Error)
}

func TestDispatch_CompareMixesPositionsAndNames(t *testing.T) {
	d, _ := newTestDispatcher()

	result := d.Dispatch("compare_products", []byte(`{"positions": [1], "product_names": ["macbook"]}`))
	require.True(t, result.Success)
	assert.Equal(t, 2, result.Data["count"])
}

func TestDispatch_AddToCart(t *testing.T) {
	d, _ := newTestDispatcher()

	result := d.Dispatch("add_to_cart", []byte(`{"position": 1}`))
	require.True(t, result.Success)
	assert.Equal(t, ActionAddToCart, result.UIAction.Kind)
	assert.Equal(t, "Added Samsung Galaxy M14 5G to cart", result.Data["message"])
}

func TestDispatch_AddToCartOutOfStock(t *testing.T) {
	d, _ := newTestDispatcher()

	// iPhone 15 Pro Max is out of stock; the lookup itself must still resolve.
	result := d.Dispatch("add_to_cart", []byte(`{"product_name": "iPhone 15 Pro Max"}`))
	assert.False(t, result.Success)
	assert.Equal(t, "iPhone 15 Pro Max is currently out of stock.", result.Error)
	assert.Equal(t, ActionNone, result.UIAction.Kind)
}

func TestDispatch_AddToCartWithoutReference(t *testing.T) {
	d, _ := newTestDispatcher()

	result := d.Dispatch("add_to_cart", []byte(`{}`))
	assert.False(t, result.Success)
	assert.Equal(t, ActionNone, result.UIAction.Kind)
}

func TestDispatch_Navigate(t *testing.T) {
	d, _ := newTestDispatcher()

	result := d.Dispatch("navigate_to_page", []byte(`{"page": "cart"}`))
	require.True(t, result.Success)
	assert.Equal(t, ActionNavigate, result.UIAction.Kind)
	assert.Equal(t, "/cart", result.UIAction.NavigateTo)
	assert.Equal(t, "cart", result.Data["page"])

	result = d.Dispatch("navigate_to_page", []byte(`{"page": "settings"}`))
	assert.False(t, result.Success)
	assert.Equal(t, "Unknown page: settings", result.Error)
	assert.Equal(t, ActionNone, result.UIAction.Kind)
}

func TestDispatch_MalformedArguments(t *testing.T) {
	d, _ := newTestDispatcher()

	result := d.Dispatch("search_products", []byte(`{not json`))
	assert.False(t, result.Success)
	assert.Equal(t, ActionNone, result.UIAction.Kind)
}

func TestDispatch_EmptyArgumentsAreAllowed(t *testing.T) {
	d, _ := newTestDispatcher()

	result := d.Dispatch("search_products", nil)
	require.True(t, result.Success)
	assert.Equal(t, 34, result.Data["total"])
}
