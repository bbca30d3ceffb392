package service

import (
	"strings"

	"github.com/openretail/multicoupon/internal/domain"
)

// FreeShipping returns the carrier/method list the rule set grants, or
// nil. Rules are scanned in order: a top-level freeShipping field wins
// outright; a qualifier-level one only applies when its minCartTotal (if
// any) is met by the unqualified cart cost, and only when a cart was
// supplied at all.
func (e *Evaluator) FreeShipping(cart *domain.Cart) []string {
	for i := range e.rules.Discounts {
		d := &e.rules.Discounts[i]
		if d.FreeShipping != "" {
			return splitCarriers(d.FreeShipping)
		}
		if cart == nil {
			continue
		}
		for j := range d.Qualifiers {
			q := &d.Qualifiers[j]
			if q.FreeShipping == "" {
				continue
			}
			if q.MinCartTotal == nil || e.cartCost(cart.Items(), false, nil).GreaterThanOrEqual(*q.MinCartTotal) {
				return splitCarriers(q.FreeShipping)
			}
		}
	}
	return nil
}

func splitCarriers(list string) []string {
	parts := strings.Split(list, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
