package voice

// ToolDefinitions returns the function-calling schema declared to the upstream
// model at session-configuration time. The parameter shapes and enumerations
// constrain the arguments the model may produce, so they must match the
// dispatcher exactly.
func ToolDefinitions() []map[string]interface{} {
	return []map[string]interface{}{
		{
			"type": "function",
			"name": "search_products",
			"description": `Search and filter products in the e-commerce store.
Use this function when the user wants to:
- Find products (e.g., "show me laptops", "find phones under 20000")
- Filter products by category, brand, or price
- Sort products by price or rating
- Clear filters and show all products

The function returns matching products that will be displayed in the UI.`,
			"parameters": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"query": map[string]interface{}{
						"type":        "string",
						"description": "Text to search in product names and descriptions. Use for specific product searches.",
					},
					"category": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"mobiles", "laptops", "accessories"},
						"description": "Filter by product category. Use 'mobiles' for phones/smartphones.",
					},
					"min_price": map[string]interface{}{
						"type":        "integer",
						"description": "Minimum price in INR (Indian Rupees). Example: 10000 for ₹10,000",
					},
					"max_price": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum price in INR (Indian Rupees). Example: 50000 for ₹50,000. Common shortcuts: '10k' = 10000, '1 lakh' = 100000",
					},
					"brand": map[string]interface{}{
						"type":        "string",
						"description": "Filter by brand name. Examples: Samsung, Apple, OnePlus, Dell, HP, Sony",
					},
					"sort_by": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"price_asc", "price_desc", "rating", "relevance"},
						"description": "Sort order. price_asc = low to high, price_desc = high to low, rating = best rated first",
					},
				},
				"required": []string{},
			},
		},
		{
			"type": "function",
			"name": "get_product_details",
			"description": `Get detailed information about a specific product and show it in a popup.
Use when the user asks about a particular product by:
- Position: "tell me about the first product", "details of the third one", "what are the specs of second one"
- Name: "tell me more about the iPhone", "show me details of MacBook"

This opens a popup showing full specifications and details.`,
			"parameters": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"position": map[string]interface{}{
						"type":        "integer",
						"description": "Position of the product in the current list (1-based). Use when user says 'first', 'second', 'third', etc. First=1, Second=2, Third=3.",
					},
					"product_name": map[string]interface{}{
						"type":        "string",
						"description": "Partial or full product name to search for",
					},
				},
				"required": []string{},
			},
		},
		{
			"type": "function",
			"name": "compare_products",
			"description": `Compare two or more products side by side.
Use when the user wants to compare products:
- "compare first and third product"
- "compare iPhone and Samsung"
- "show me comparison of first three products"

This opens a comparison popup showing products side by side.`,
			"parameters": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"positions": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer"},
						"description": "List of product positions (1-based) to compare. Example: [1, 3] for first and third products.",
					},
					"product_names": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "List of product names to compare",
					},
				},
				"required": []string{},
			},
		},
		{
			"type": "function",
			"name": "add_to_cart",
			"description": `Add a product to the shopping cart.
Use when the user wants to:
- "add first product to cart"
- "add this to my cart"
- "I want to buy the second one"
- "put the iPhone in cart"

This adds the product to cart and updates the UI.`,
			"parameters": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"position": map[string]interface{}{
						"type":        "integer",
						"description": "Position of the product in the current list (1-based).",
					},
					"product_name": map[string]interface{}{
						"type":        "string",
						"description": "Product name to add to cart",
					},
				},
				"required": []string{},
			},
		},
		{
			"type": "function",
			"name": "navigate_to_page",
			"description": `Navigate to a different page in the application.
Use when the user wants to:
- Go to home page: "take me home", "go to homepage"
- Go to products: "show products", "go to shop"
- Go to profile: "open my profile", "go to account"
- Go to cart: "open my cart", "show cart", "go to cart"
- Checkout: "checkout", "proceed to payment", "place order"
`,
			"parameters": map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"page": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"home", "products", "profile", "cart", "checkout"},
						"description": "The page to navigate to",
					},
				},
				"required": []string{"page"},
			},
		},
	}
}
