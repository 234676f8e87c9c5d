package transactionHandler

import (
	transactionService "FinanceTracker/internal/api/transaction/service"
	"FinanceTracker/internal/middleware"
	"FinanceTracker/pkg/validation"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const requestTimeout = 10 * time.Second

type TransactionHandler struct {
	log                *logrus.Logger
	validator          *validation.Validator
	middleware         middleware.Middleware
	transactionService transactionService.ITransactionService
}

func New(
	log *logrus.Logger,
	validate *validation.Validator,
	middleware middleware.Middleware,
	transactionService transactionService.ITransactionService,
) *TransactionHandler {
	return &TransactionHandler{
		log:                log,
		validator:          validate,
		middleware:         middleware,
		transactionService: transactionService,
	}
}

func (h *TransactionHandler) Start(srv fiber.Router) {
	transaction := srv.Group("/transacao")

	transaction.Get("/listar", h.middleware.NewRateLimiter, h.middleware.NewTokenMiddleware, h.ListTransactions)
	transaction.Post("/cadastrar", h.middleware.NewRateLimiter, h.middleware.NewTokenMiddleware, h.CreateTransaction)
	transaction.Get("/detalhar/:id", h.middleware.NewRateLimiter, h.middleware.NewTokenMiddleware, h.GetTransactionDetail)
	transaction.Put("/editar/:id", h.middleware.NewRateLimiter, h.middleware.NewTokenMiddleware, h.UpdateTransaction)
	transaction.Delete("/deletar/:id", h.middleware.NewRateLimiter, h.middleware.NewTokenMiddleware, h.DeleteTransaction)

	srv.Get("/resumo", h.middleware.NewRateLimiter, h.middleware.NewTokenMiddleware, h.GetSummary)
}
