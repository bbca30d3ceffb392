package rules

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// AttributeFilters holds the optional per-kind filter lists shared by
// discounts and their qualifiers. A nil list means the kind is not
// declared.
type AttributeFilters struct {
	Models  ValueList `json:"models,omitempty"`
	Mfg     ValueList `json:"mfg,omitempty"`
	Grade   ValueList `json:"grade,omitempty"`
	Classes ValueList `json:"classes,omitempty"`
	Brands  ValueList `json:"brands,omitempty"`
	Strike  ValueList `json:"strike,omitempty"`
	Special ValueList `json:"special,omitempty"`
	Sku     ValueList `json:"sku,omitempty"`
	Tag     ValueList `json:"tag,omitempty"`
	Format  ValueList `json:"format,omitempty"`
}

func (f *AttributeFilters) list(a Attribute) ValueList {
	switch a {
	case AttrModel:
		return f.Models
	case AttrMfg:
		return f.Mfg
	case AttrGrade:
		return f.Grade
	case AttrClass:
		return f.Classes
	case AttrBrand:
		return f.Brands
	case AttrStrike:
		return f.Strike
	case AttrSpecial:
		return f.Special
	case AttrSku:
		return f.Sku
	case AttrTag:
		return f.Tag
	case AttrFormat:
		return f.Format
	}
	return nil
}

// Set collects the declared kinds into a FilterSet.
func (f *AttributeFilters) Set() FilterSet {
	set := make(FilterSet)
	for _, a := range Attributes {
		if l := f.list(a); len(l) > 0 {
			set[a] = l
		}
	}
	return set
}

// Qualifier is a nested cart-level gate on a discount. Its filters
// decide which items count toward the gate, not which items receive the
// discount.
type Qualifier struct {
	AttributeFilters
	MinCartTotal *decimal.Decimal `json:"minCartTotal,omitempty"`
	MinCartQty   *int             `json:"minCartQty,omitempty"`
	FreeShipping string           `json:"freeShipping,omitempty"`
}

// Discount is one rule of the coupon's rule list.
type Discount struct {
	AttributeFilters
	Qualifiers   []Qualifier      `json:"qualifier,omitempty"`
	MinCartTotal *decimal.Decimal `json:"minCartTotal,omitempty"`
	MinCartQty   *int             `json:"minCartQty,omitempty"`
	ExcludeCat   []int64          `json:"excludeCat,omitempty"`
	Fraction     *decimal.Decimal `json:"discount,omitempty"`
	FreeShipping string           `json:"freeShipping,omitempty"`
}

// andKinds are the kinds counted when deciding between all-must-match
// and single-kind matching. Special is deliberately not counted; rule
// documents in the wild rely on that.
var andKinds = []Attribute{
	AttrModel, AttrMfg, AttrGrade, AttrClass, AttrBrand,
	AttrStrike, AttrSku, AttrFormat, AttrTag,
}

// DeclaredAndKinds returns the counted kinds this rule declares.
func (d *Discount) DeclaredAndKinds() []Attribute {
	var declared []Attribute
	for _, a := range andKinds {
		if len(d.list(a)) > 0 {
			declared = append(declared, a)
		}
	}
	return declared
}

type pluginData struct {
	Multi []Discount `json:"multi"`
}

// RuleSet is a parsed, immutable coupon rule document.
type RuleSet struct {
	Discounts []Discount

	catalog Catalog
}

// ParseRuleSet decodes a pluginData document ({"multi": [...]}) and
// aggregates the attribute catalog. Shape errors surface here, once;
// absent optional fields are not errors, and an empty document yields a
// rule set with no discounts.
func ParseRuleSet(data []byte) (*RuleSet, error) {
	var doc pluginData
	if len(data) > 0 {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse rule set: %w", err)
		}
	}
	return &RuleSet{
		Discounts: doc.Multi,
		catalog:   aggregateCatalog(doc.Multi),
	}, nil
}

// Catalog returns the aggregated per-kind value lists.
func (rs *RuleSet) Catalog() Catalog {
	return rs.catalog
}
