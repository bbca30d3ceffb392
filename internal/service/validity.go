package service

import (
	"fmt"

	"github.com/openretail/multicoupon/internal/domain"
	"github.com/openretail/multicoupon/internal/rules"
)

// Validate reports why the cart as a whole is not eligible for the
// coupon, or nil when at least one rule is satisfiable. The returned
// error wraps a domain sentinel and reads as a display-ready reason.
func (e *Evaluator) Validate(cart *domain.Cart) error {
	items := cart.Items()
	code := e.coupon.Code
	qualifiedCost := e.coupon.ApplyTo == domain.ApplyToQualified

	var reason error
	for i := range e.rules.Discounts {
		d := &e.rules.Discounts[i]

		if len(d.Qualifiers) > 0 {
			var qReason error
			met := false
			for j := range d.Qualifiers {
				q := &d.Qualifiers[j]
				filters := q.Set()
				if q.MinCartQty != nil && e.cartCount(items, true, filters) < *q.MinCartQty {
					qReason = fmt.Errorf("not enough qualifying items required for coupon %s: %w", code, domain.ErrMinQtyNotMet)
					continue
				}
				if q.MinCartTotal != nil && e.cartCost(items, true, filters).LessThan(*q.MinCartTotal) {
					qReason = fmt.Errorf("total cost of qualifying items is not high enough for coupon %s: %w", code, domain.ErrMinTotalNotMet)
					continue
				}
				met = true
			}
			if !met {
				reason = qReason
				continue
			}
		}

		if d.MinCartQty != nil && e.cartCount(items, false, nil) < *d.MinCartQty {
			reason = fmt.Errorf("not enough items required for coupon %s: %w", code, domain.ErrMinQtyNotMet)
			continue
		}
		if d.MinCartTotal != nil && e.cartCost(items, qualifiedCost, d.Set()).LessThan(*d.MinCartTotal) {
			reason = fmt.Errorf("total cost of qualifying items is not high enough for coupon %s: %w", code, domain.ErrMinTotalNotMet)
			continue
		}

		pFilters := d.Set()
		var qSets []rules.FilterSet
		for j := range d.Qualifiers {
			if s := d.Qualifiers[j].Set(); len(s) > 0 {
				qSets = append(qSets, s)
			}
		}

		// The rule is satisfiable when some item covers one qualifier
		// filter set and some item (not necessarily the same one) covers
		// the rule's own filters.
		isQualified := len(qSets) == 0
		itemValid := false
		excluded := false
		for _, it := range items {
			if e.itemExcluded(it, d.ExcludeCat) {
				reason = fmt.Errorf("some items in your cart are not available with coupon %s: %w", code, domain.ErrCategoryExcluded)
				excluded = true
				break
			}
			if !isQualified {
				for _, qs := range qSets {
					if e.itemMatches(it, qs) {
						isQualified = true
						break
					}
				}
			}
			if !itemValid && len(pFilters) > 0 && e.itemMatches(it, pFilters) {
				itemValid = true
			}
		}
		if excluded {
			continue
		}
		if isQualified && itemValid {
			return nil
		}
	}

	if reason != nil {
		return reason
	}
	return fmt.Errorf("no items in your cart are valid for coupon %s: %w", code, domain.ErrNoEligibleItems)
}
