package rules

import "github.com/openretail/multicoupon/internal/domain"

// Catalog pre-aggregates, per attribute kind, every value the rule set
// mentions at either the qualifier or the discount level. It only
// answers membership questions, so duplicates are left in place.
type Catalog map[Attribute]ValueList

func aggregateCatalog(discounts []Discount) Catalog {
	c := make(Catalog, len(Attributes))
	for _, a := range Attributes {
		var vals ValueList
		for i := range discounts {
			d := &discounts[i]
			for j := range d.Qualifiers {
				vals = append(vals, d.Qualifiers[j].list(a)...)
			}
			vals = append(vals, d.list(a)...)
		}
		c[a] = vals
	}
	return c
}

// Contains reports whether any rule mentions the value under this kind.
func (c Catalog) Contains(a Attribute, v Value) bool {
	return c[a].Contains(v)
}

// MatchesItem reports whether the item appears, under any kind, in the
// aggregated value lists. A cheap necessary condition for the item to be
// priceable at all.
func (c Catalog) MatchesItem(it domain.CartItem) bool {
	for _, a := range Attributes {
		if matchKind(a, c[a], it) {
			return true
		}
	}
	return false
}
