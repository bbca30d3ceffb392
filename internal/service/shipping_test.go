package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openretail/multicoupon/internal/domain"
)

func TestFreeShippingTopLevel(t *testing.T) {
	ev := newTestEvaluator(t, testCoupon(domain.ApplyToAll,
		`{"multi": [{"models": [7], "freeShipping": "ups, fedex"}]}`), nil)

	assert.Equal(t, []string{"ups", "fedex"}, ev.FreeShipping(nil))
}

func TestFreeShippingQualifierThreshold(t *testing.T) {
	ev := newTestEvaluator(t, testCoupon(domain.ApplyToAll,
		`{"multi": [{"qualifier": [{"freeShipping": "usps", "minCartTotal": 100}]}]}`), nil)

	below := domain.NewCart(testItem(1, "60", 1, 5))
	assert.Nil(t, ev.FreeShipping(below))

	above := domain.NewCart(testItem(1, "60", 2, 5))
	assert.Equal(t, []string{"usps"}, ev.FreeShipping(above))

	// qualifier lists need a cart to evaluate against
	assert.Nil(t, ev.FreeShipping(nil))
}

func TestFreeShippingQualifierWithoutThreshold(t *testing.T) {
	ev := newTestEvaluator(t, testCoupon(domain.ApplyToAll,
		`{"multi": [{"qualifier": [{"freeShipping": "usps"}]}]}`), nil)

	assert.Equal(t, []string{"usps"}, ev.FreeShipping(domain.NewCart()))
}

func TestFreeShippingAbsent(t *testing.T) {
	ev := newTestEvaluator(t, testCoupon(domain.ApplyToAll,
		`{"multi": [{"models": [7], "discount": 0.1}]}`), nil)

	assert.Nil(t, ev.FreeShipping(domain.NewCart(testItem(1, "60", 1, 5))))
}
