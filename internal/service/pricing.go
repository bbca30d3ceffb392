package service

import (
	"github.com/shopspring/decimal"

	"github.com/openretail/multicoupon/internal/domain"
	"github.com/openretail/multicoupon/internal/rules"
)

var one = decimal.NewFromInt(1)

// resolve computes the best applicable discount fraction for one item
// across the whole rule list and turns it into a price. valid is false
// when no rule prices the item; an item in an excluded category is never
// priced, regardless of any other rule.
func (e *Evaluator) resolve(item domain.CartItem, cart *domain.Cart) (amount decimal.Decimal, valid bool) {
	items := cart.Items()
	qualifiedCost := e.coupon.ApplyTo == domain.ApplyToQualified

	best := decimal.Zero
	for i := range e.rules.Discounts {
		d := &e.rules.Discounts[i]

		if len(d.Qualifiers) > 0 && !e.ruleQualifies(d, items, qualifiedCost) {
			continue
		}
		if e.itemExcluded(item, d.ExcludeCat) {
			return decimal.Zero, false
		}
		if frac, ok := e.ruleFraction(d, item, items, qualifiedCost); ok && frac.GreaterThan(best) {
			best = frac
		}
	}

	if !best.IsPositive() {
		return decimal.Zero, false
	}

	// HIGHEST/LOWEST fractions are stated against the line's accumulated
	// value; normalize back to a per-unit fraction.
	if (e.coupon.ApplyTo == domain.ApplyToHighest || e.coupon.ApplyTo == domain.ApplyToLowest) && item.Qty > 0 {
		best = best.Div(decimal.NewFromInt(int64(item.Qty)))
	}

	return item.OriginalPrice.Mul(one.Sub(best)), true
}

// ruleQualifies applies the nested qualifier gates. Qualifiers whose
// minCartTotal is not met are skipped, not fatal; the rule qualifies as
// soon as any cart item passes one surviving qualifier's filters.
func (e *Evaluator) ruleQualifies(d *rules.Discount, items []domain.CartItem, qualifiedCost bool) bool {
	for i := range d.Qualifiers {
		q := &d.Qualifiers[i]
		filters := q.Set()
		if q.MinCartTotal != nil && e.cartCost(items, qualifiedCost, filters).LessThan(*q.MinCartTotal) {
			continue
		}
		for _, it := range items {
			if e.itemMatches(it, filters) {
				return true
			}
		}
	}
	return false
}

// ruleFraction evaluates the rule's own attribute filters against the
// item. A rule declaring more than one counted kind requires every one
// of them to match; a rule declaring one (or only special) takes the
// single-kind path. Either path honors the rule's minCartTotal gate.
func (e *Evaluator) ruleFraction(d *rules.Discount, item domain.CartItem, items []domain.CartItem, qualifiedCost bool) (decimal.Decimal, bool) {
	if d.Fraction == nil {
		return decimal.Zero, false
	}
	set := d.Set()

	if declared := d.DeclaredAndKinds(); len(declared) > 1 {
		for _, a := range declared {
			if !set.Matches(a, item) {
				return decimal.Zero, false
			}
		}
		if d.MinCartTotal != nil && e.cartCost(items, qualifiedCost, set).LessThan(*d.MinCartTotal) {
			return decimal.Zero, false
		}
		return *d.Fraction, true
	}

	for _, a := range rules.Attributes {
		if _, declared := set[a]; !declared {
			continue
		}
		if d.MinCartTotal != nil && e.cartCost(items, qualifiedCost, set).LessThan(*d.MinCartTotal) {
			continue
		}
		if set.Matches(a, item) {
			return *d.Fraction, true
		}
	}
	return decimal.Zero, false
}
