package models

type Part struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"` // never negative
	UnitPrice float64 `json:"unitPrice"`
	Category  string  `json:"category"`
	Image     string  `json:"image,omitempty"`
}

type PartRequest struct {
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Category  string  `json:"category"`
	Image     string  `json:"image,omitempty"`
}

type PartUpdate struct {
	Name      *string  `json:"name,omitempty"`
	SKU       *string  `json:"sku,omitempty"`
	Quantity  *int     `json:"quantity,omitempty"`
	UnitPrice *float64 `json:"unitPrice,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Image     *string  `json:"image,omitempty"`
}

func (u PartUpdate) Apply(p *Part) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.SKU != nil {
		p.SKU = *u.SKU
	}
	if u.Quantity != nil {
		p.Quantity = *u.Quantity
	}
	if u.UnitPrice != nil {
		p.UnitPrice = *u.UnitPrice
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
}
