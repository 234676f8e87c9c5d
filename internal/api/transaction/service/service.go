package transactionService

import (
	categoryService "FinanceTracker/internal/api/category/service"
	"FinanceTracker/internal/api/transaction"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	"FinanceTracker/internal/entity"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// enrichConcurrency bounds the parallel category lookups of one listing page.
const enrichConcurrency = 8

type ITransactionService interface {
	CreateTransaction(ctx context.Context, userID int64, input transaction.TransactionInput) (entity.Transaction, error)
	ListTransactions(ctx context.Context, userID int64, query transaction.ListQuery) (entity.TransactionPage, error)
	GetTransactionDetail(ctx context.Context, id int64) (entity.TransactionDetail, error)
	UpdateTransaction(ctx context.Context, id int64, userID int64, input transaction.TransactionInput) error
	DeleteTransaction(ctx context.Context, id int64) error
	GetSummary(ctx context.Context, userID int64) (entity.BalanceSummary, error)
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
	categoryService       categoryService.ICategoryService
}

func NewTransactionService(log *logrus.Logger, tr transactionRepository.Repository, cs categoryService.ICategoryService) ITransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: tr,
		categoryService:       cs,
	}
}
