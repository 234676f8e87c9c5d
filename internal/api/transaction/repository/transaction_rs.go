package transactionRepository

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const dateLayout = "2006-01-02"

type TransactionDB struct {
	ID          int64          `db:"id"`
	Description sql.NullString `db:"description"`
	Value       sql.NullInt64  `db:"value"`
	Type        sql.NullString `db:"type"`
	Date        time.Time      `db:"date"`
	UserID      sql.NullInt64  `db:"user_id"`
	CategoryID  sql.NullInt64  `db:"category_id"`
}

// bind expands named parameters, IN lists and the driver placeholder style.
func (r *transactionRepository) bind(namedQuery string, argsKV map[string]interface{}) (string, []interface{}, error) {
	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		return "", nil, err
	}

	query, args, err = sqlx.In(query, args...)
	if err != nil {
		return "", nil, err
	}

	return r.q.Rebind(query), args, nil
}

func (r *transactionRepository) CreateTransaction(ctx context.Context, t entity.Transaction) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row TransactionDB

	query, args, err := r.bind(queryCreateTransaction, map[string]interface{}{
		"description": t.Description,
		"value":       t.Value,
		"type":        t.Type,
		"date":        t.Date.Format(dateLayout),
		"user_id":     t.UserID,
		"category_id": t.CategoryID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateTransaction")
		return entity.Transaction{}, err
	}

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")
		return entity.Transaction{}, err
	}

	return makeTransaction(row), nil
}

func (r *transactionRepository) GetTransactionByID(ctx context.Context, id int64) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row TransactionDB

	query, args, err := r.bind(queryGetTransactionByID, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID named query preparation err")
		return entity.Transaction{}, err
	}

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id":     requestID,
				"transaction_id": id,
			}).Warn("GetTransactionByID no rows found")
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactionByID execution err")
		return entity.Transaction{}, err
	}

	return makeTransaction(row), nil
}

func (r *transactionRepository) GetTransactions(ctx context.Context, filter entity.TransactionFilter) ([]entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []TransactionDB

	clause, argsKV := transactionFilterClause(filter)
	argsKV["skip"] = filter.Skip
	argsKV["take"] = filter.Take

	query, args, err := r.bind(querySelectTransactions+clause+queryTransactionsPage, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetTransactions named query preparation err")
		return nil, err
	}

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    filter.UserID,
			"error":      err.Error(),
		}).Error("GetTransactions execution err")
		return nil, err
	}

	result := make([]entity.Transaction, 0, len(rows))
	for _, row := range rows {
		result = append(result, makeTransaction(row))
	}

	return result, nil
}

func (r *transactionRepository) CountTransactions(ctx context.Context, filter entity.TransactionFilter) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var total int64

	clause, argsKV := transactionFilterClause(filter)

	query, args, err := r.bind(queryCountTransactions+clause, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountTransactions named query preparation err")
		return 0, err
	}

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    filter.UserID,
			"error":      err.Error(),
		}).Error("CountTransactions execution err")
		return 0, err
	}

	return total, nil
}

func (r *transactionRepository) UpdateTransaction(ctx context.Context, t entity.Transaction) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := r.bind(queryUpdateTransaction, map[string]interface{}{
		"id":          t.ID,
		"description": t.Description,
		"value":       t.Value,
		"type":        t.Type,
		"date":        t.Date.Format(dateLayout),
		"user_id":     t.UserID,
		"category_id": t.CategoryID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction named query preparation err")
		return err
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateTransaction execution err")
		return err
	}

	return r.expectAffected(requestID, result, "UpdateTransaction")
}

func (r *transactionRepository) DeleteTransaction(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	query, args, err := r.bind(queryDeleteTransaction, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction named query preparation err")
		return err
	}

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteTransaction execution err")
		return err
	}

	return r.expectAffected(requestID, result, "DeleteTransaction")
}

func (r *transactionRepository) SumTransactionValue(ctx context.Context, userID int64, transactionType entity.TransactionType) (int64, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var sum int64

	query, args, err := r.bind(querySumTransactionValue, map[string]interface{}{
		"user_id": userID,
		"type":    string(transactionType),
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SumTransactionValue named query preparation err")
		return 0, err
	}

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&sum); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"type":       transactionType,
			"error":      err.Error(),
		}).Error("SumTransactionValue execution err")
		return 0, err
	}

	return sum, nil
}

func (r *transactionRepository) expectAffected(requestID string, result sql.Result, operation string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error(operation + " rows affected err")
		return err
	}

	if rowsAffected == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn(operation + " no rows affected")
		return transaction.ErrTransactionNotFound
	}

	return nil
}

func makeTransaction(row TransactionDB) entity.Transaction {
	return entity.Transaction{
		ID:          row.ID,
		Description: row.Description.String,
		Value:       row.Value.Int64,
		Type:        row.Type.String,
		Date:        row.Date,
		UserID:      row.UserID.Int64,
		CategoryID:  row.CategoryID.Int64,
	}
}
