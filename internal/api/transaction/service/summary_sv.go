package transactionService

import (
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

// GetSummary issues one aggregate per type. The two sums are independent
// round-trips and are not read from a single snapshot.
func (s *transactionService) GetSummary(ctx context.Context, userID int64) (entity.BalanceSummary, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.transactionRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create new client")
		return entity.BalanceSummary{}, err
	}

	var earnings, expenses int64
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sum, err := repo.Transactions.SumTransactionValue(gctx, userID, entity.TransactionTypeEntry)
		if err != nil {
			return fmt.Errorf("sum earnings: %w", err)
		}
		earnings = sum
		return nil
	})

	g.Go(func() error {
		sum, err := repo.Transactions.SumTransactionValue(gctx, userID, entity.TransactionTypeOutput)
		if err != nil {
			return fmt.Errorf("sum expenses: %w", err)
		}
		expenses = sum
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"user_id":    userID,
			"error":      err.Error(),
		}).Error("Failed to summarize transactions")
		return entity.BalanceSummary{}, err
	}

	return entity.NewBalanceSummary(earnings, expenses), nil
}
