package transactionRepository

import "FinanceTracker/internal/entity"

const (
	queryCreateTransaction = `
		INSERT INTO transactions (
			description,
			value,
			type,
			date,
			user_id,
			category_id
		) VALUES (
			:description,
			:value,
			:type,
			:date,
			:user_id,
			:category_id
		)
		RETURNING id, description, value, type, date, user_id, category_id
	`

	queryGetTransactionByID = `
		SELECT
			id,
			description,
			value,
			type,
			date,
			user_id,
			category_id
		FROM transactions
		WHERE id = :id
	`

	querySelectTransactions = `
		SELECT
			id,
			description,
			value,
			type,
			date,
			user_id,
			category_id
		FROM transactions
	`

	queryCountTransactions = `
		SELECT COUNT(*)
		FROM transactions
	`

	queryTransactionsPage = `
		ORDER BY date DESC, id DESC
		LIMIT :take OFFSET :skip
	`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			description = :description,
			value = :value,
			type = :type,
			date = :date,
			user_id = :user_id,
			category_id = :category_id
		WHERE id = :id
	`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id
	`

	querySumTransactionValue = `
		SELECT COALESCE(SUM(value), 0)
		FROM transactions
		WHERE
			user_id = :user_id
			AND type = :type
	`
)

// transactionFilterClause is the single source of the listing predicate, so
// the count and the page always walk the same rows.
func transactionFilterClause(filter entity.TransactionFilter) (string, map[string]interface{}) {
	clause := `
		WHERE user_id = :user_id`
	argsKV := map[string]interface{}{
		"user_id": filter.UserID,
	}

	if filter.HasCategories() {
		clause += `
			AND category_id IN (:category_ids)`
		argsKV["category_ids"] = filter.CategoryIDs
	}

	return clause, argsKV
}
