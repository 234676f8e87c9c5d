package categoryHandler

import (
	categoryService "FinanceTracker/internal/api/category/service"
	"FinanceTracker/internal/middleware"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const requestTimeout = 10 * time.Second

type CategoryHandler struct {
	log             *logrus.Logger
	middleware      middleware.Middleware
	categoryService categoryService.ICategoryService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	categoryService categoryService.ICategoryService,
) *CategoryHandler {
	return &CategoryHandler{
		log:             log,
		middleware:      middleware,
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) Start(srv fiber.Router) {
	srv.Get("/categorias", h.middleware.NewRateLimiter, h.middleware.NewTokenMiddleware, h.GetCategories)
}
