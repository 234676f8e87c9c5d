package categoryService

import (
	categoryRepository "FinanceTracker/internal/api/category/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/redis"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const defaultCacheTTL = 10 * time.Minute

// ICategoryService is the category resolver shared with the transaction
// domain.
type ICategoryService interface {
	GetCategories(ctx context.Context) ([]entity.Category, error)
	// ResolveCategory fails with category.ErrCategoryNotFound when id is unknown.
	ResolveCategory(ctx context.Context, id int64) (entity.Category, error)
	// ResolveCategoryName never fails on an unknown id; it falls back to
	// entity.UncategorizedTitle so listings survive orphaned references.
	ResolveCategoryName(ctx context.Context, id int64) (string, error)
}

type categoryService struct {
	log                *logrus.Logger
	categoryRepository categoryRepository.Repository
	cache              redis.IRedis
	cacheTTL           time.Duration
}

// NewCategoryService accepts a nil cache, in which case every lookup goes to
// the database.
func NewCategoryService(log *logrus.Logger, cr categoryRepository.Repository, cache redis.IRedis, cacheTTL time.Duration) ICategoryService {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}

	return &categoryService{
		log:                log,
		categoryRepository: cr,
		cache:              cache,
		cacheTTL:           cacheTTL,
	}
}
