package domain

import "github.com/shopspring/decimal"

// GradeNew is the grade id of factory-new stock, excluded from most
// aggregates unless the coupon opts in.
const GradeNew int64 = 1

// CartItem is an immutable snapshot of one cart line. Price is the
// current (possibly already discounted) unit price; OriginalPrice is the
// pre-discount unit price every threshold and discount computation uses.
type CartItem struct {
	SkuID         int64           `json:"sku_id"`
	Qty           int             `json:"qty"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	ModelID       int64           `json:"model_id"`
	MfgID         int64           `json:"mfg_id"`
	GradeID       int64           `json:"grade_id"`
	ClassID       int64           `json:"class_id"`
	BrandID       int64           `json:"brand_id"`
	StrikePrice   decimal.Decimal `json:"strike_price"`
	Special       bool            `json:"special"`
	Tags          []string        `json:"tags"`
	Format        string          `json:"format"`
}

// Cart is an ordered, read-only collection of cart lines. Callers must
// not mutate the snapshot while a sequence of per-item evaluations is in
// flight.
type Cart struct {
	items []CartItem
}

func NewCart(items ...CartItem) *Cart {
	return &Cart{items: items}
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []CartItem {
	if c == nil {
		return nil
	}
	return c.items
}
