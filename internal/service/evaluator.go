package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/openretail/multicoupon/internal/domain"
	"github.com/openretail/multicoupon/internal/rules"
)

// Evaluator interprets a coupon's multi-rule discount configuration
// against a cart snapshot. The rule document is parsed once at
// construction and immutable afterwards; every method is a pure function
// of the coupon, one item and the cart, so a single Evaluator is safe to
// reuse across items as long as the cart snapshot does not change
// mid-pass.
type Evaluator struct {
	coupon     domain.Coupon
	rules      *rules.RuleSet
	categories domain.CategoryFinder
}

// NewEvaluator parses the coupon's rule document and aggregates the
// attribute catalog. A nil categories finder disables excludeCat checks.
func NewEvaluator(coupon domain.Coupon, categories domain.CategoryFinder) (*Evaluator, error) {
	rs, err := rules.ParseRuleSet(coupon.PluginData)
	if err != nil {
		return nil, fmt.Errorf("coupon %s: %w", coupon.Code, err)
	}
	return &Evaluator{coupon: coupon, rules: rs, categories: categories}, nil
}

// Price returns the discounted price for one item given the full cart.
// ok is false when no discount applies to the item.
func (e *Evaluator) Price(item domain.CartItem, cart *domain.Cart) (price decimal.Decimal, ok bool) {
	if e.excludedByCategory(item) {
		return decimal.Zero, false
	}
	if !e.preMatch(item, cart.Items()) {
		return decimal.Zero, false
	}
	if !e.isCountable(item) {
		return decimal.Zero, false
	}
	if !e.coupon.DiscountPercent.IsPositive() {
		return decimal.Zero, false
	}

	switch e.coupon.ApplyTo {
	case domain.ApplyToHighest:
		if !e.isHighest(item, cart) {
			return decimal.Zero, false
		}
	case domain.ApplyToLowest:
		if !e.isLowest(item, cart) {
			return decimal.Zero, false
		}
	case domain.ApplyToSecond:
		if !e.isSecondHighest(item, cart) {
			return decimal.Zero, false
		}
	}

	amount, valid := e.resolve(item, cart)
	if !valid {
		return decimal.Zero, false
	}
	return amount, true
}

// preMatch is a cheap necessary condition for pricing: the item must
// appear in the aggregated attribute catalog, or some rule's minCartQty
// must already be met by the cart as a whole.
func (e *Evaluator) preMatch(item domain.CartItem, items []domain.CartItem) bool {
	if e.rules.Catalog().MatchesItem(item) {
		return true
	}
	for i := range e.rules.Discounts {
		d := &e.rules.Discounts[i]
		if d.MinCartQty != nil && e.cartCount(items, false, nil) >= *d.MinCartQty {
			return true
		}
	}
	return false
}

// excludedByCategory reports whether any rule's excludeCat list covers
// one of the item's categories.
func (e *Evaluator) excludedByCategory(item domain.CartItem) bool {
	for i := range e.rules.Discounts {
		if e.itemExcluded(item, e.rules.Discounts[i].ExcludeCat) {
			return true
		}
	}
	return false
}

// itemExcluded reports whether the item belongs to any of the given
// excluded categories.
func (e *Evaluator) itemExcluded(item domain.CartItem, excluded []int64) bool {
	if len(excluded) == 0 || e.categories == nil {
		return false
	}
	for _, cat := range e.categories.FindByModelID(item.ModelID) {
		for _, id := range excluded {
			if cat.ID == id {
				return true
			}
		}
	}
	return false
}
