package models

// DefaultInventory returns the built-in inventory data set used when nothing
// has been persisted yet, or when persisted inventory data is unusable.
// Callers receive a fresh slice and may mutate it freely.
func DefaultInventory() []TShirtItem {
	return []TShirtItem{
		{ID: 1, Name: "Gildan T-Shirt - Red", Size: SizeM, Color: ColorRed, Quantity: 13, RequiredPcs: DefaultRequiredPcs},
		{ID: 2, Name: "Gildan T-Shirt - Red", Size: SizeL, Color: ColorRed, Quantity: 46, RequiredPcs: DefaultRequiredPcs},
		{ID: 3, Name: "Gildan T-Shirt - Black", Size: SizeS, Color: ColorBlack, Quantity: 21, RequiredPcs: DefaultRequiredPcs},
		{ID: 4, Name: "Gildan T-Shirt - Black", Size: SizeM, Color: ColorBlack, Quantity: 34, RequiredPcs: DefaultRequiredPcs},
		{ID: 5, Name: "Gildan T-Shirt - Black", Size: SizeL, Color: ColorBlack, Quantity: 27, RequiredPcs: DefaultRequiredPcs},
		{ID: 6, Name: "Gildan T-Shirt - White", Size: SizeS, Color: ColorWhite, Quantity: 34, RequiredPcs: DefaultRequiredPcs},
		{ID: 7, Name: "Gildan T-Shirt - White", Size: SizeM, Color: ColorWhite, Quantity: 51, RequiredPcs: DefaultRequiredPcs},
		{ID: 8, Name: "Gildan T-Shirt - White", Size: SizeL, Color: ColorWhite, Quantity: 29, RequiredPcs: DefaultRequiredPcs},
	}
}
