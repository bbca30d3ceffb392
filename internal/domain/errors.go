package domain

import "errors"

var (
	ErrMinQtyNotMet     = errors.New("not enough qualifying items")
	ErrMinTotalNotMet   = errors.New("qualifying cart total too low")
	ErrCategoryExcluded = errors.New("cart contains excluded items")
	ErrNoEligibleItems  = errors.New("no eligible items")
)
