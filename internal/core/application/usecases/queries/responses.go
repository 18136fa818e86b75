package queries

// OrderResponse represents one order in the read model used by the report
// views. All monetary values are plain integers; the total is derived once
// when the response is built.
type OrderResponse struct {
	ID       string
	Customer string
	Items    []ItemResponse
	Total    int
}

// ItemResponse represents one product line in the read model, including the
// precomputed line subtotal.
type ItemResponse struct {
	Name     string
	Price    int
	Quantity int
	Subtotal int
}
