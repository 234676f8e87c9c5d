package transaction

import (
	"FinanceTracker/internal/entity"
	"time"
)

const DateLayout = "2006-01-02"

// TransactionRequest is the body of create and update. Pointers tell a
// missing number apart from zero.
type TransactionRequest struct {
	Description string `json:"description" validate:"required"`
	Value       *int64 `json:"value" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Date        string `json:"date" validate:"required,calendar_date"`
	CategoryID  *int64 `json:"category_id" validate:"required,gt=0"`
}

// TransactionInput is a TransactionRequest that passed validation.
type TransactionInput struct {
	Description string
	Value       int64
	Type        string
	Date        time.Time
	CategoryID  int64
}

type ListQuery struct {
	Skip        int
	Take        int
	CategoryIDs []int64
}

type TransactionResponse struct {
	ID           int64  `json:"id"`
	Description  string `json:"description"`
	Value        int64  `json:"value"`
	Type         string `json:"type"`
	Date         string `json:"date"`
	UserID       int64  `json:"user_id"`
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name,omitempty"`
}

type TransactionDetailResponse struct {
	ID           int64   `json:"id"`
	Description  string  `json:"description"`
	Value        float64 `json:"value"`
	Type         string  `json:"type"`
	Date         string  `json:"date"`
	UserID       int64   `json:"user_id"`
	CategoryID   int64   `json:"category_id"`
	CategoryName string  `json:"category_name"`
}

type TransactionListResponse struct {
	Total int64                 `json:"total"`
	Items []TransactionResponse `json:"items"`
}

type SummaryResponse struct {
	Earnings int64 `json:"earnings"`
	Expenses int64 `json:"expenses"`
	Balance  int64 `json:"balance"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func NewTransactionResponse(t entity.Transaction, categoryName string) TransactionResponse {
	return TransactionResponse{
		ID:           t.ID,
		Description:  t.Description,
		Value:        t.Value,
		Type:         t.Type,
		Date:         t.Date.Format(DateLayout),
		UserID:       t.UserID,
		CategoryID:   t.CategoryID,
		CategoryName: categoryName,
	}
}

func NewTransactionListResponse(page entity.TransactionPage) TransactionListResponse {
	items := make([]TransactionResponse, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, NewTransactionResponse(item.Transaction, item.CategoryName))
	}

	return TransactionListResponse{
		Total: page.Total,
		Items: items,
	}
}

func NewTransactionDetailResponse(d entity.TransactionDetail) TransactionDetailResponse {
	return TransactionDetailResponse{
		ID:           d.ID,
		Description:  d.Description,
		Value:        d.MajorValue,
		Type:         d.Type,
		Date:         d.Date.Format(DateLayout),
		UserID:       d.UserID,
		CategoryID:   d.CategoryID,
		CategoryName: d.CategoryName,
	}
}

func NewSummaryResponse(s entity.BalanceSummary) SummaryResponse {
	return SummaryResponse{
		Earnings: s.Earnings,
		Expenses: s.Expenses,
		Balance:  s.Balance,
	}
}
