package transactionService

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

func (s *transactionService) CreateTransaction(ctx context.Context, userID int64, input transaction.TransactionInput) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidTransactionType(input.Type) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       input.Type,
		}).Warn("Invalid transaction type")
		return entity.Transaction{}, transaction.ErrInvalidTransactionType
	}

	// The category check and the insert are separate statements; a category
	// removed in between surfaces as a foreign key failure on insert.
	category, err := s.categoryService.ResolveCategory(ctx, input.CategoryID)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"category_id": input.CategoryID,
			"error":       err.Error(),
		}).Warn("Failed to authorize category")
		return entity.Transaction{}, err
	}

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.Transaction{}, err
	}

	created, err := repo.Transactions.CreateTransaction(ctx, entity.Transaction{
		Description: input.Description,
		Value:       input.Value,
		Type:        input.Type,
		Date:        input.Date,
		UserID:      userID,
		CategoryID:  category.ID,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return entity.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	return created, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID int64, query transaction.ListQuery) (entity.TransactionPage, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.TransactionPage{}, err
	}

	filter := entity.TransactionFilter{
		UserID:      userID,
		CategoryIDs: query.CategoryIDs,
		Skip:        query.Skip,
		Take:        query.Take,
	}

	var (
		total int64
		rows  []entity.Transaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = repo.Transactions.CountTransactions(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = repo.Transactions.GetTransactions(gctx, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to list transactions")
		return entity.TransactionPage{}, fmt.Errorf("list transactions: %w", err)
	}

	items, err := s.withCategoryNames(ctx, rows)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to resolve category names")
		return entity.TransactionPage{}, err
	}

	return entity.TransactionPage{
		Total: total,
		Items: items,
	}, nil
}

func (s *transactionService) withCategoryNames(ctx context.Context, rows []entity.Transaction) ([]entity.CategorizedTransaction, error) {
	items := make([]entity.CategorizedTransaction, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)

	for i, row := range rows {
		g.Go(func() error {
			name, err := s.categoryService.ResolveCategoryName(gctx, row.CategoryID)
			if err != nil {
				return fmt.Errorf("resolve category %d: %w", row.CategoryID, err)
			}
			items[i] = entity.CategorizedTransaction{Transaction: row, CategoryName: name}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return items, nil
}

// GetTransactionDetail looks the row up by id alone and reports the value in
// major currency units, unlike every other operation.
func (s *transactionService) GetTransactionDetail(ctx context.Context, id int64) (entity.TransactionDetail, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.TransactionDetail{}, err
	}

	found, err := repo.Transactions.GetTransactionByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"transaction_id": id,
			"error":          err.Error(),
		}).Warn("Failed to get transaction by ID")
		return entity.TransactionDetail{}, err
	}

	name, err := s.categoryService.ResolveCategoryName(ctx, found.CategoryID)
	if err != nil {
		return entity.TransactionDetail{}, err
	}

	return entity.TransactionDetail{
		CategorizedTransaction: entity.CategorizedTransaction{
			Transaction:  found,
			CategoryName: name,
		},
		MajorValue: decimal.New(found.Value, -2).InexactFloat64(),
	}, nil
}

// UpdateTransaction replaces every field of the row and hands it to userID,
// whoever owned it before.
func (s *transactionService) UpdateTransaction(ctx context.Context, id int64, userID int64, input transaction.TransactionInput) error {
	requestID := contextPkg.GetRequestID(ctx)

	if !entity.IsValidTransactionType(input.Type) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"type":       input.Type,
		}).Warn("Invalid transaction type")
		return transaction.ErrInvalidTransactionType
	}

	repo, err := s.transactionRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	existing, err := repo.Transactions.GetTransactionByID(ctx, id)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"transaction_id": id,
			"error":          err.Error(),
		}).Warn("Failed to get existing transaction")
		return err
	}

	category, err := s.categoryService.ResolveCategory(ctx, input.CategoryID)
	if err != nil {
		return err
	}

	updated := entity.Transaction{
		ID:          existing.ID,
		Description: input.Description,
		Value:       input.Value,
		Type:        input.Type,
		Date:        input.Date,
		UserID:      userID,
		CategoryID:  category.ID,
	}

	if err := repo.Transactions.UpdateTransaction(ctx, updated); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"transaction_id": id,
			"error":          err.Error(),
		}).Error("Failed to update transaction")
		return err
	}

	if existing.UserID != userID {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"transaction_id": id,
			"previous_owner": existing.UserID,
			"new_owner":      userID,
		}).Info("Transaction owner reassigned on update")
	}

	return repo.Commit()
}

func (s *transactionService) DeleteTransaction(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	if _, err := repo.Transactions.GetTransactionByID(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":     requestID,
			"transaction_id": id,
			"error":          err.Error(),
		}).Warn("Failed to get transaction to delete")
		return err
	}

	if err := repo.Transactions.DeleteTransaction(ctx, id); err != nil {
		if !errors.Is(err, transaction.ErrTransactionNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id":     requestID,
				"transaction_id": id,
				"error":          err.Error(),
			}).Error("Failed to delete transaction")
		}
		return err
	}

	return repo.Commit()
}
