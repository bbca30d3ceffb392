package service

import (
	"github.com/openretail/multicoupon/internal/domain"
	"github.com/openretail/multicoupon/internal/rules"
)

// Grades 2 through 8 are the used-stock window counted by default.
const (
	gradeMin int64 = 2
	gradeMax int64 = 8
)

// isCountable is the grade-inclusion policy shared by every aggregator
// and matcher: new-grade items and grades outside [2,8] only count when
// the coupon opts in via includeNew or includeAll.
func (e *Evaluator) isCountable(item domain.CartItem) bool {
	if e.coupon.IncludeNew || e.coupon.IncludeAll {
		return true
	}
	return item.GradeID >= gradeMin && item.GradeID <= gradeMax
}

// itemMatches reports whether the item passes every declared filter in
// the set and the grade policy. An empty set gates on grade alone.
func (e *Evaluator) itemMatches(item domain.CartItem, filters rules.FilterSet) bool {
	if !e.isCountable(item) {
		return false
	}
	for a := range filters {
		if !filters.Matches(a, item) {
			return false
		}
	}
	return true
}
