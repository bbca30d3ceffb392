package rules

import "github.com/openretail/multicoupon/internal/domain"

// Attribute identifies one matchable item dimension.
type Attribute int

const (
	AttrModel Attribute = iota
	AttrMfg
	AttrGrade
	AttrClass
	AttrBrand
	AttrStrike
	AttrSpecial
	AttrSku
	AttrTag
	AttrFormat
)

// Attributes lists every kind in rule-document field order.
var Attributes = []Attribute{
	AttrModel, AttrMfg, AttrGrade, AttrClass, AttrBrand,
	AttrStrike, AttrSpecial, AttrSku, AttrTag, AttrFormat,
}

// String returns the rule-document field name for the kind.
func (a Attribute) String() string {
	switch a {
	case AttrModel:
		return "models"
	case AttrMfg:
		return "mfg"
	case AttrGrade:
		return "grade"
	case AttrClass:
		return "classes"
	case AttrBrand:
		return "brands"
	case AttrStrike:
		return "strike"
	case AttrSpecial:
		return "special"
	case AttrSku:
		return "sku"
	case AttrTag:
		return "tag"
	case AttrFormat:
		return "format"
	}
	return "unknown"
}

// ItemValues returns the item's value(s) under this attribute. Tag is
// the only kind that yields more than one.
func (a Attribute) ItemValues(it domain.CartItem) []Value {
	switch a {
	case AttrModel:
		return []Value{IntValue(it.ModelID)}
	case AttrMfg:
		return []Value{IntValue(it.MfgID)}
	case AttrGrade:
		return []Value{IntValue(it.GradeID)}
	case AttrClass:
		return []Value{IntValue(it.ClassID)}
	case AttrBrand:
		return []Value{IntValue(it.BrandID)}
	case AttrStrike:
		return []Value{DecimalValue(it.StrikePrice)}
	case AttrSpecial:
		return []Value{BoolValue(it.Special)}
	case AttrSku:
		return []Value{IntValue(it.SkuID)}
	case AttrTag:
		vals := make([]Value, len(it.Tags))
		for i, tag := range it.Tags {
			vals[i] = Value(tag)
		}
		return vals
	case AttrFormat:
		return []Value{Value(it.Format)}
	}
	return nil
}

// matchKind reports whether the item satisfies one filter list. Tag
// filters match when the first listed tag appears in the item's tag
// list; every other kind matches when the item's scalar value appears
// in the filter list.
func matchKind(a Attribute, vals ValueList, it domain.CartItem) bool {
	if len(vals) == 0 {
		return false
	}
	if a == AttrTag {
		for _, tag := range it.Tags {
			if vals[0].Equal(Value(tag)) {
				return true
			}
		}
		return false
	}
	return vals.Contains(a.ItemValues(it)[0])
}

// FilterSet maps attribute kinds to their allowed values.
type FilterSet map[Attribute]ValueList

// Matches reports whether the item satisfies the filter declared for one
// kind. Undeclared kinds never match.
func (s FilterSet) Matches(a Attribute, it domain.CartItem) bool {
	return matchKind(a, s[a], it)
}
