package category

import "FinanceTracker/pkg/response"

var (
	ErrCategoryNotFound = response.NewError(400, "The category specified not found")
)
