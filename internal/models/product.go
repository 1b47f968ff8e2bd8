package models

// Product is a top-level catalog entry. The id is stored as given but
// matched case-insensitively; every other field is optional free text.
// A nil SubProducts slice means the caller did not touch the sequence,
// which the store's full update relies on to preserve existing
// sub-products.
type Product struct {
	ID          string       `json:"id" binding:"required"`
	Brand       string       `json:"brand,omitempty"`
	Name        string       `json:"name,omitempty"`
	Type        string       `json:"type,omitempty"`
	URL         string       `json:"url,omitempty"`
	Description string       `json:"description,omitempty"`
	Category    string       `json:"category,omitempty"`
	SubCategory string       `json:"subCategory,omitempty"`
	Image       string       `json:"image,omitempty"`
	Ratings     []int        `json:"ratings,omitempty"`
	SubProducts []SubProduct `json:"subProducts,omitempty"`
}

// SubProduct is owned by exactly one product. Its id only has to be unique
// within the parent's sequence and is matched case-sensitively.
type SubProduct struct {
	ID          string `json:"id,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Name        string `json:"name,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	SubCategory string `json:"subCategory,omitempty"`
	Image       string `json:"image,omitempty"`
}

// ProductDetails carries the top-level fields of a product for partial
// edits that must not touch ratings or sub-products.
type ProductDetails struct {
	ID          string `json:"id"`
	Brand       string `json:"brand,omitempty"`
	Name        string `json:"name,omitempty"`
	Type        string `json:"type,omitempty"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	SubCategory string `json:"subCategory,omitempty"`
	Image       string `json:"image,omitempty"`
}
