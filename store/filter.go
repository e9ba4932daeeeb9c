package store

import (
	"sort"
	"strings"

	"github.com/lena-laurent/blanks-inventory-api/models"
)

// SortOption selects the attribute a filtered view is ordered by
type SortOption string

const (
	SortByName        SortOption = "name"
	SortBySize        SortOption = "size"
	SortByColor       SortOption = "color"
	SortByQuantity    SortOption = "quantity"
	SortByRequiredPcs SortOption = "requiredPcs"
)

// SortDirection is the ordering direction
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// FilterOptions is the active attribute filter set. Empty size and color
// sets are pass-throughs.
type FilterOptions struct {
	Sizes    []models.ProductSize
	Colors   []models.ProductColor
	LowStock bool
}

// FilterSortState is the full derived-view input: search text, attribute
// filters, and sort key/direction. It is per-session UI state and never
// persisted.
type FilterSortState struct {
	Search  string
	Filters FilterOptions
	SortBy  SortOption
	SortDir SortDirection
}

// sizeRank orders sizes by garment size rather than alphabetically
var sizeRank = map[models.ProductSize]int{
	models.SizeS:  0,
	models.SizeM:  1,
	models.SizeL:  2,
	models.SizeXL: 3,
}

// FilterSortInventory computes a derived, ordered view over the inventory
// collection. It applies text search, then attribute filters, then a stable
// sort, and never mutates its input; identical inputs produce identical
// output.
func FilterSortInventory(items []models.TShirtItem, state FilterSortState) []models.TShirtItem {
	search := strings.ToLower(strings.TrimSpace(state.Search))

	result := make([]models.TShirtItem, 0, len(items))
	for _, item := range items {
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		if len(state.Filters.Sizes) > 0 && !containsSize(state.Filters.Sizes, item.Size) {
			continue
		}
		if len(state.Filters.Colors) > 0 && !containsColor(state.Filters.Colors, item.Color) {
			continue
		}
		if state.Filters.LowStock && !item.IsLowStock() {
			continue
		}
		result = append(result, item)
	}

	sortBy := state.SortBy
	switch sortBy {
	case SortByName, SortBySize, SortByColor, SortByQuantity, SortByRequiredPcs:
	default:
		sortBy = SortByName
	}
	desc := state.SortDir == SortDesc

	sort.SliceStable(result, func(i, j int) bool {
		if desc {
			return lessInventory(result[j], result[i], sortBy)
		}
		return lessInventory(result[i], result[j], sortBy)
	})

	return result
}

// lessInventory compares two items on the selected attribute. String
// attributes compare case-insensitively, numeric ones by value.
func lessInventory(a, b models.TShirtItem, sortBy SortOption) bool {
	switch sortBy {
	case SortBySize:
		return sizeRank[a.Size] < sizeRank[b.Size]
	case SortByColor:
		return strings.ToLower(string(a.Color)) < strings.ToLower(string(b.Color))
	case SortByQuantity:
		return a.Quantity < b.Quantity
	case SortByRequiredPcs:
		return a.RequiredPcs < b.RequiredPcs
	default:
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	}
}

// FilterOrders computes a derived view over the order queue: case-insensitive
// substring match of the search term against the embedded item's name, size
// and color plus the order status. A blank term is a pass-through. Relative
// order is preserved and the input is never mutated.
func FilterOrders(orders []models.OrderItem, search string) []models.OrderItem {
	search = strings.ToLower(strings.TrimSpace(search))

	result := make([]models.OrderItem, 0, len(orders))
	for _, order := range orders {
		if search != "" && !orderMatches(order, search) {
			continue
		}
		result = append(result, order)
	}
	return result
}

func orderMatches(order models.OrderItem, search string) bool {
	return strings.Contains(strings.ToLower(order.Item.Name), search) ||
		strings.Contains(strings.ToLower(string(order.Item.Size)), search) ||
		strings.Contains(strings.ToLower(string(order.Item.Color)), search) ||
		strings.Contains(strings.ToLower(string(order.Status)), search)
}

func containsSize(sizes []models.ProductSize, size models.ProductSize) bool {
	for _, s := range sizes {
		if s == size {
			return true
		}
	}
	return false
}

func containsColor(colors []models.ProductColor, color models.ProductColor) bool {
	for _, c := range colors {
		if c == color {
			return true
		}
	}
	return false
}
