package service

import (
	"sort"

	"github.com/openretail/multicoupon/internal/domain"
)

// validItems returns the cart lines the resolver would price, in cart
// order. Selection strategies only ever look at these.
func (e *Evaluator) validItems(cart *domain.Cart) []domain.CartItem {
	var valid []domain.CartItem
	for _, it := range cart.Items() {
		if _, ok := e.resolve(it, cart); ok {
			valid = append(valid, it)
		}
	}
	return valid
}

// isHighest reports whether the item is the highest-priced valid line,
// ties broken by ascending quantity then ascending sku id. The result is
// deterministic across repeated calls over the same snapshot.
func (e *Evaluator) isHighest(item domain.CartItem, cart *domain.Cart) bool {
	valid := e.validItems(cart)
	if len(valid) == 0 {
		return false
	}
	sort.Slice(valid, func(i, j int) bool {
		if !valid[i].OriginalPrice.Equal(valid[j].OriginalPrice) {
			return valid[i].OriginalPrice.GreaterThan(valid[j].OriginalPrice)
		}
		if valid[i].Qty != valid[j].Qty {
			return valid[i].Qty < valid[j].Qty
		}
		return valid[i].SkuID < valid[j].SkuID
	})
	return valid[0].SkuID == item.SkuID
}

// isLowest is the mirror of isHighest, selecting the minimum original
// price with the same tie-breaks.
func (e *Evaluator) isLowest(item domain.CartItem, cart *domain.Cart) bool {
	valid := e.validItems(cart)
	if len(valid) == 0 {
		return false
	}
	sort.Slice(valid, func(i, j int) bool {
		if !valid[i].OriginalPrice.Equal(valid[j].OriginalPrice) {
			return valid[i].OriginalPrice.LessThan(valid[j].OriginalPrice)
		}
		if valid[i].Qty != valid[j].Qty {
			return valid[i].Qty < valid[j].Qty
		}
		return valid[i].SkuID < valid[j].SkuID
	})
	return valid[0].SkuID == item.SkuID
}

// isSecondHighest picks the line a SECOND-mode discount lands on: lines
// sorted by current price descending, sku id ascending. A top line with
// quantity above one already covers the first and second unit, so it is
// the target itself; otherwise the second line is, and nothing is
// selected when fewer than two lines are valid.
func (e *Evaluator) isSecondHighest(item domain.CartItem, cart *domain.Cart) bool {
	valid := e.validItems(cart)
	if len(valid) == 0 {
		return false
	}
	sort.Slice(valid, func(i, j int) bool {
		if !valid[i].Price.Equal(valid[j].Price) {
			return valid[i].Price.GreaterThan(valid[j].Price)
		}
		return valid[i].SkuID < valid[j].SkuID
	})
	if valid[0].Qty > 1 {
		return valid[0].SkuID == item.SkuID
	}
	if len(valid) < 2 {
		return false
	}
	return valid[1].SkuID == item.SkuID
}
