package transaction

import (
	"FinanceTracker/pkg/response"
	"FinanceTracker/pkg/validation"
	"strconv"
	"strings"
)

const (
	DefaultTake = 10
	MaxTake     = 100
)

// ParseTransactionRequest validates a create or update body. The type enum
// is not checked here: an unknown type is a domain error raised by the
// service.
func ParseTransactionRequest(v *validation.Validator, req TransactionRequest) (TransactionInput, error) {
	if verr := v.Struct(req); verr != nil {
		return TransactionInput{}, verr
	}

	date, err := validation.ParseDate(req.Date)
	if err != nil {
		return TransactionInput{}, response.NewValidationError("date", "date must be a date formatted as YYYY-MM-DD")
	}

	return TransactionInput{
		Description: req.Description,
		Value:       *req.Value,
		Type:        req.Type,
		Date:        date,
		CategoryID:  *req.CategoryID,
	}, nil
}

// ParseListQuery reads skip, take and the category filter. Absent skip and
// take default to 0 and DefaultTake.
func ParseListQuery(skipRaw, takeRaw string, categoryValues []string) (ListQuery, error) {
	verr := &response.ValidationError{}
	query := ListQuery{Take: DefaultTake}

	if skipRaw != "" {
		skip, err := strconv.Atoi(skipRaw)
		switch {
		case err != nil:
			verr.Add("skip", "skip must be an integer")
		case skip < 0:
			verr.Add("skip", "skip must be 0 or greater")
		default:
			query.Skip = skip
		}
	}

	if takeRaw != "" {
		take, err := strconv.Atoi(takeRaw)
		switch {
		case err != nil:
			verr.Add("take", "take must be an integer")
		case take < 1 || take > MaxTake:
			verr.Add("take", "take must be between 1 and "+strconv.Itoa(MaxTake))
		default:
			query.Take = take
		}
	}

	ids, err := ParseCategoryIDs(categoryValues)
	if err != nil {
		verr.Add("categories", err.Error())
	}
	query.CategoryIDs = ids

	if verr.HasErrors() {
		return ListQuery{}, verr
	}
	return query, nil
}

// ParseCategoryIDs accepts repeated values, each of which may itself be a
// comma separated list, and returns the distinct ids in first-seen order.
func ParseCategoryIDs(values []string) ([]int64, error) {
	seen := make(map[int64]struct{})
	ids := make([]int64, 0)

	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, &categoryIDError{value: part}
			}

			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	return ids, nil
}

type categoryIDError struct {
	value string
}

func (e *categoryIDError) Error() string {
	return "categories must be integers, got " + strconv.Quote(e.value)
}

func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, response.NewValidationError("id", "id must be a positive integer")
	}
	return id, nil
}
