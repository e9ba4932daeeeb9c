package models

// ProductSize is an available T-shirt size
type ProductSize string

const (
	SizeS  ProductSize = "S"
	SizeM  ProductSize = "M"
	SizeL  ProductSize = "L"
	SizeXL ProductSize = "XL"
)

// ProductSizes lists all valid sizes
var ProductSizes = []ProductSize{SizeS, SizeM, SizeL, SizeXL}

// IsValid reports whether the size is a known member of the enum
func (s ProductSize) IsValid() bool {
	switch s {
	case SizeS, SizeM, SizeL, SizeXL:
		return true
	}
	return false
}

// ProductColor is a T-shirt color option
type ProductColor string

const (
	ColorRed   ProductColor = "red"
	ColorBlack ProductColor = "black"
	ColorWhite ProductColor = "white"
)

// ProductColors lists all valid colors
var ProductColors = []ProductColor{ColorRed, ColorBlack, ColorWhite}

// IsValid reports whether the color is a known member of the enum
func (c ProductColor) IsValid() bool {
	switch c {
	case ColorRed, ColorBlack, ColorWhite:
		return true
	}
	return false
}

// DefaultRequiredPcs is the standard pack size used as the reorder threshold
const DefaultRequiredPcs = 24

// UnknownItemName is the placeholder used when a persisted record has no usable name
const UnknownItemName = "Unknown Item"

// TShirtItem is a blank T-shirt inventory record.
// JSON field names match the persisted storage layout, so records written by
// earlier versions of the dashboard load without translation.
type TShirtItem struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Size        ProductSize  `json:"size"`
	Color       ProductColor `json:"color"`
	Quantity    int          `json:"quantity"`
	RequiredPcs int          `json:"requiredPcs"`
}

// IsLowStock reports whether on-hand quantity is below the reorder threshold
func (t TShirtItem) IsLowStock() bool {
	return t.Quantity < t.RequiredPcs
}

// CreateTShirtItem is the data required to create a new item, before an
// identity is assigned by the inventory store
type CreateTShirtItem struct {
	Name        string       `json:"name"`
	Size        ProductSize  `json:"size"`
	Color       ProductColor `json:"color"`
	Quantity    int          `json:"quantity"`
	RequiredPcs int          `json:"requiredPcs"`
}
