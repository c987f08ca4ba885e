package voice

// UI action kinds emitted alongside function results. The frontend switches on
// these to mutate the page.
const (
	ActionShowProducts    = "SHOW_PRODUCTS"
	ActionShowDetails     = "SHOW_PRODUCT_DETAILS"
	ActionCompareProducts = "COMPARE_PRODUCTS"
	ActionAddToCart       = "ADD_TO_CART"
	ActionNavigate        = "NAVIGATE"
	ActionNone            = "NO_ACTION"
)

// UIAction tells the client what to change on screen as a side effect of a
// function call.
type UIAction struct {
	Kind       string                 `json:"type"`
	NavigateTo string                 `json:"navigate_to,omitempty"`
	Filters    map[string]interface{} `json:"filters,omitempty"`
	ProductID  string                 `json:"product_id,omitempty"`
}

// Result is the outcome of one dispatched function call. Every handler
// populates UIAction, failures included (ActionNone), so the client is never
// left without a directive.
type Result struct {
	Success  bool                   `json:"success"`
	Data     map[string]interface{} `json:"data,omitempty"`
	Error    string                 `json:"error,omitempty"`
	UIAction UIAction               `json:"ui_action"`
}

func failure(msg string) Result {
	return Result{
		Success:  false,
		Error:    msg,
		UIAction: UIAction{Kind: ActionNone},
	}
}
