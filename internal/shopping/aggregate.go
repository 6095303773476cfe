package shopping

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/timeline-dev/timeline/internal/model"
)

// SortItems orders items by priority, high before medium before low. The
// input is left untouched.
func SortItems(items []model.ShoppingItem) []model.ShoppingItem {
	sorted := append([]model.ShoppingItem(nil), items...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority.Rank() < sorted[j].Priority.Rank()
	})
	return sorted
}

// Pending returns items not yet bought, in priority order.
func Pending(items []model.ShoppingItem) []model.ShoppingItem {
	var pending []model.ShoppingItem
	for _, it := range items {
		if !it.Bought {
			pending = append(pending, it)
		}
	}
	return SortItems(pending)
}

// EstimatedCost sums the expected prices of not-yet-bought items.
func EstimatedCost(items []model.ShoppingItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		if !it.Bought {
			total = total.Add(it.ExpectedPrice)
		}
	}
	return total
}
