package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openretail/multicoupon/internal/domain"
	"github.com/openretail/multicoupon/internal/rules"
)

func TestIsCountable(t *testing.T) {
	base := testCoupon(domain.ApplyToAll, `{"multi": []}`)
	ev := newTestEvaluator(t, base, nil)

	assert.False(t, ev.isCountable(testItem(1, "10", 1, domain.GradeNew)))
	assert.True(t, ev.isCountable(testItem(1, "10", 1, 2)))
	assert.True(t, ev.isCountable(testItem(1, "10", 1, 8)))
	assert.False(t, ev.isCountable(testItem(1, "10", 1, 9)))

	withNew := base
	withNew.IncludeNew = true
	ev = newTestEvaluator(t, withNew, nil)
	assert.True(t, ev.isCountable(testItem(1, "10", 1, domain.GradeNew)))

	withAll := base
	withAll.IncludeAll = true
	ev = newTestEvaluator(t, withAll, nil)
	assert.True(t, ev.isCountable(testItem(1, "10", 1, 9)))
}

func TestItemMatchesRequiresEveryFilter(t *testing.T) {
	ev := newTestEvaluator(t, testCoupon(domain.ApplyToAll, `{"multi": []}`), nil)

	item := testItem(1, "10", 1, 5)
	item.ModelID = 7
	item.BrandID = 4

	both := rules.FilterSet{rules.AttrModel: {"7"}, rules.AttrBrand: {"4"}}
	assert.True(t, ev.itemMatches(item, both))

	mismatch := rules.FilterSet{rules.AttrModel: {"7"}, rules.AttrBrand: {"9"}}
	assert.False(t, ev.itemMatches(item, mismatch))

	// empty filter set gates on grade alone
	assert.True(t, ev.itemMatches(item, rules.FilterSet{}))
	assert.False(t, ev.itemMatches(testItem(2, "10", 1, domain.GradeNew), rules.FilterSet{}))
}
