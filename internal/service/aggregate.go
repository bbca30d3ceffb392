package service

import (
	"github.com/shopspring/decimal"

	"github.com/openretail/multicoupon/internal/domain"
	"github.com/openretail/multicoupon/internal/rules"
)

// cartCost sums originalPrice × qty over countable items. When qualified
// is true only items passing the filter set contribute. An empty cart
// sums to zero.
func (e *Evaluator) cartCost(items []domain.CartItem, qualified bool, filters rules.FilterSet) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		if qualified && !e.itemMatches(it, filters) {
			continue
		}
		if !e.isCountable(it) {
			continue
		}
		total = total.Add(it.OriginalPrice.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	return total
}

// cartCount sums quantities under the same filtering rules as cartCost.
func (e *Evaluator) cartCount(items []domain.CartItem, qualified bool, filters rules.FilterSet) int {
	count := 0
	for _, it := range items {
		if qualified && !e.itemMatches(it, filters) {
			continue
		}
		if !e.isCountable(it) {
			continue
		}
		count += it.Qty
	}
	return count
}
