package models

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Anime       string  `json:"anime"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Stock       int     `json:"stock"`
	Rating      float64 `json:"rating"`
	Reviews     int     `json:"reviews"`
	Description string  `json:"description"`
}

// CartItem is a catalog product plus the selected quantity. The embedded
// product fields are flattened in JSON so the cart payload matches the
// product payload with an extra quantity field.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// ProductFilter narrows List results. Zero values mean "no filter";
// category and anime also treat "all" as no filter.
type ProductFilter struct {
	Category string
	Anime    string
	Search   string
}
