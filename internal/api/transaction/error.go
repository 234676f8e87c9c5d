package transaction

import "FinanceTracker/pkg/response"

var (
	ErrTransactionNotFound    = response.NewError(404, "Transaction not found")
	ErrInvalidTransactionType = response.NewError(400, "Invalid transaction type")
)
