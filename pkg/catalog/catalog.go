package catalog

// Money is a price in the smallest currency unit (cents for USD).
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type Variation struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	PriceMoney  *Money `json:"priceMoney"`
	PricingType string `json:"pricingType"`
}

// Item is a flattened catalog entry. CategoryName is resolved from the
// category listing when the category exists.
type Item struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	CategoryID   string      `json:"category"`
	CategoryName string      `json:"categoryName,omitempty"`
	Variations   []Variation `json:"variations"`
}

// Catalog is the combined payload served to the browser. It is rebuilt
// wholesale on every refresh and never partially updated.
type Catalog struct {
	Items      []Item            `json:"items"`
	Categories map[string]string `json:"categories"`
	UpdatedAt  string            `json:"updatedAt"`
}
