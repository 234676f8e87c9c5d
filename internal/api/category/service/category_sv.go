package categoryService

import (
	"FinanceTracker/internal/api/category"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *categoryService) GetCategories(ctx context.Context) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	categories, err := s.categoryRepository.NewClient().Categories.GetCategories(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to list categories")
		return nil, err
	}

	return categories, nil
}

func (s *categoryService) ResolveCategory(ctx context.Context, id int64) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if cached, ok := s.fromCache(ctx, id); ok {
		return cached, nil
	}

	found, err := s.categoryRepository.NewClient().Categories.GetCategoryByID(ctx, id)
	if err != nil {
		if !errors.Is(err, category.ErrCategoryNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"category_id": id,
				"error":       err.Error(),
			}).Error("Failed to resolve category")
		}
		return entity.Category{}, err
	}

	s.toCache(ctx, found)

	return found, nil
}

func (s *categoryService) ResolveCategoryName(ctx context.Context, id int64) (string, error) {
	found, err := s.ResolveCategory(ctx, id)
	if err != nil {
		if errors.Is(err, category.ErrCategoryNotFound) {
			return entity.UncategorizedTitle, nil
		}
		return "", err
	}

	return found.Title, nil
}

func cacheKey(id int64) string {
	return fmt.Sprintf("category:%d", id)
}

// Cache failures are logged and treated as a miss.
func (s *categoryService) fromCache(ctx context.Context, id int64) (entity.Category, bool) {
	if s.cache == nil {
		return entity.Category{}, false
	}

	raw, err := s.cache.Get(ctx, cacheKey(id))
	if err != nil {
		return entity.Category{}, false
	}

	var cached entity.Category
	if err := jsoniter.UnmarshalFromString(raw, &cached); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  contextPkg.GetRequestID(ctx),
			"category_id": id,
			"error":       err.Error(),
		}).Warn("Discarding malformed cached category")
		return entity.Category{}, false
	}

	return cached, true
}

func (s *categoryService) toCache(ctx context.Context, c entity.Category) {
	if s.cache == nil {
		return
	}

	raw, err := jsoniter.MarshalToString(c)
	if err != nil {
		return
	}

	if err := s.cache.Set(ctx, cacheKey(c.ID), raw, s.cacheTTL); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id":  contextPkg.GetRequestID(ctx),
			"category_id": c.ID,
			"error":       err.Error(),
		}).Warn("Failed to cache category")
	}
}
