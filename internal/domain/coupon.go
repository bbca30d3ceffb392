package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// ApplyMode controls which cart item(s) a coupon's discount lands on.
type ApplyMode string

const (
	ApplyToAll       ApplyMode = "ALL"
	ApplyToHighest   ApplyMode = "HIGHEST"
	ApplyToLowest    ApplyMode = "LOWEST"
	ApplyToSecond    ApplyMode = "SECOND"
	ApplyToQualified ApplyMode = "QUALIFIED"
)

// Coupon is the read-only configuration one evaluation runs under.
// PluginData carries the JSON rule document ({"multi": [...]}).
type Coupon struct {
	Code            string          `json:"code"`
	IncludeNew      bool            `json:"includeNew"`
	IncludeAll      bool            `json:"includeAll"`
	ApplyTo         ApplyMode       `json:"applyToItem"`
	DiscountPercent decimal.Decimal `json:"discountPercent"`
	PluginData      json.RawMessage `json:"pluginData"`
}
