package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/openretail/multicoupon/internal/domain"
	"github.com/openretail/multicoupon/internal/rules"
)

func TestCartAggregatesEmptyCart(t *testing.T) {
	ev := newTestEvaluator(t, testCoupon(domain.ApplyToAll, `{"multi": []}`), nil)

	assert.True(t, ev.cartCost(nil, false, nil).IsZero())
	assert.Zero(t, ev.cartCount(nil, false, nil))
}

func TestCartCostMultipliesByQuantity(t *testing.T) {
	ev := newTestEvaluator(t, testCoupon(domain.ApplyToAll, `{"multi": []}`), nil)

	items := []domain.CartItem{
		testItem(1, "100", 2, 5),
		testItem(2, "25.50", 1, 5),
	}
	assert.True(t, ev.cartCost(items, false, nil).Equal(decimal.RequireFromString("225.50")))
	assert.Equal(t, 3, ev.cartCount(items, false, nil))
}

func TestCartAggregatesSkipNewGrade(t *testing.T) {
	items := []domain.CartItem{
		testItem(1, "100", 1, 5),
		testItem(2, "100", 1, domain.GradeNew),
	}

	ev := newTestEvaluator(t, testCoupon(domain.ApplyToAll, `{"multi": []}`), nil)
	assert.True(t, ev.cartCost(items, false, nil).Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 1, ev.cartCount(items, false, nil))

	c := testCoupon(domain.ApplyToAll, `{"multi": []}`)
	c.IncludeNew = true
	ev = newTestEvaluator(t, c, nil)
	assert.True(t, ev.cartCost(items, false, nil).Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 2, ev.cartCount(items, false, nil))
}

func TestCartAggregatesQualifiedFilter(t *testing.T) {
	ev := newTestEvaluator(t, testCoupon(domain.ApplyToAll, `{"multi": []}`), nil)

	wanted := testItem(1, "100", 2, 5)
	wanted.ModelID = 7
	other := testItem(2, "100", 1, 5)
	other.ModelID = 8
	items := []domain.CartItem{wanted, other}

	filters := rules.FilterSet{rules.AttrModel: {"7"}}
	assert.True(t, ev.cartCost(items, true, filters).Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 2, ev.cartCount(items, true, filters))
}
