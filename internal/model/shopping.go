package model

// ShoppingTotalRequest is the body of POST /shopping/total.
//
// Tax is a fraction (0.1 = 10%). It is a pointer so that an omitted tax is
// told apart from an explicit zero.
type ShoppingTotalRequest struct {
	Costs map[string]float64 `json:"costs" validate:"required"`
	Items []string           `json:"items" validate:"required"`
	Tax   *float64           `json:"tax" validate:"required,gte=0"`
}

func (r *ShoppingTotalRequest) Validate() error {
	return validate.Struct(r)
}

// ShoppingTotalResponse carries the rounded breakdown and the partition of
// the requested items.
type ShoppingTotalResponse struct {
	Subtotal      float64  `json:"subtotal"`
	TaxAmount     float64  `json:"tax_amount"`
	Total         float64  `json:"total"`
	ItemsFound    []string `json:"items_found"`
	ItemsNotFound []string `json:"items_not_found"`
}
