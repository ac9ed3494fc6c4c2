package models

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// ParentCategory is the category metadata attached to a product.
type ParentCategory struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DisplayLabel string `json:"displayLabel"`
}

// Product represents one entry of the remote product catalog.
type Product struct {
	ID                    int64               `json:"id"`
	SKU                   string              `json:"sku"`
	Name                  *string             `json:"name"` // null upstream means the product is never shown
	Description           string              `json:"description"`
	MinimumOrderQuantity  *int                `json:"minimumOrderQuantity"`
	MaximumOrderQuantity  *int                `json:"maximumOrderQuantity"`
	IsTejasProduct        bool                `json:"isTejasProduct"`
	HSNCode               Code                `json:"hsnCode"`
	RawMaterialCost       decimal.NullDecimal `json:"rawMaterialCost"`
	WorkHours             decimal.NullDecimal `json:"workHours"`
	HourlyWage            decimal.NullDecimal `json:"hourlyWage"`
	ProfitMargin          decimal.NullDecimal `json:"profitMargin"`
	DefaultLivehoodPoints *float64            `json:"defaultLivehoodPoints"`
	ParentCategory        ParentCategory      `json:"parentCategory"`
	Images                []string            `json:"images"`
	Price                 decimal.NullDecimal `json:"price"` // Valid == false means "price not set"
	Rating                *float64            `json:"rating"`
	Index                 int                 `json:"index"`
}

// HasName reports whether the product carries a display name.
func (p Product) HasName() bool {
	return p.Name != nil
}

// HasPrice reports whether the product price is set.
func (p Product) HasPrice() bool {
	return p.Price.Valid
}

// HasImage reports whether the product lists at least one image.
func (p Product) HasImage() bool {
	return len(p.Images) > 0
}

// Code is an identifier the catalog sends either as a JSON string or a JSON number.
type Code string

// UnmarshalJSON accepts strings, numbers and null.
func (c *Code) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = Code(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*c = Code(strings.TrimSpace(n.String()))
	return nil
}

// StringPtr returns a pointer to s. Handy for building fixtures with names.
func StringPtr(s string) *string {
	return &s
}
