package categoryService

import (
	"FinanceTracker/internal/api/category"
	categoryRepository "FinanceTracker/internal/api/category/repository"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/redis"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategories struct {
	rows  map[int64]entity.Category
	err   error
	calls int
}

func (f *fakeCategories) GetCategoryByID(_ context.Context, id int64) (entity.Category, error) {
	f.calls++
	if f.err != nil {
		return entity.Category{}, f.err
	}
	c, ok := f.rows[id]
	if !ok {
		return entity.Category{}, category.ErrCategoryNotFound
	}
	return c, nil
}

func (f *fakeCategories) GetCategories(context.Context) ([]entity.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.Category, 0, len(f.rows))
	for _, c := range f.rows {
		out = append(out, c)
	}
	return out, nil
}

type fakeRepository struct {
	categories *fakeCategories
}

func (f fakeRepository) NewClient() categoryRepository.Client {
	return categoryRepository.Client{Categories: f.categories}
}

type memoryCache struct {
	mu   sync.Mutex
	data map[string]string
}

func (m *memoryCache) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", redis.ErrCacheMiss
	}
	return v, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func newService(categories *fakeCategories, cache redis.IRedis) ICategoryService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewCategoryService(logger, fakeRepository{categories: categories}, cache, time.Minute)
}

func TestCategoryService_ResolveCategory(t *testing.T) {
	categories := &fakeCategories{rows: map[int64]entity.Category{1: {ID: 1, Title: "Salário"}}}

	t.Run("found", func(t *testing.T) {
		found, err := newService(categories, nil).ResolveCategory(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Salário", found.Title)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := newService(categories, nil).ResolveCategory(context.Background(), 2)
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})
}

func TestCategoryService_ResolveCategoryName(t *testing.T) {
	t.Run("orphaned reference falls back", func(t *testing.T) {
		svc := newService(&fakeCategories{rows: map[int64]entity.Category{}}, nil)

		name, err := svc.ResolveCategoryName(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, entity.UncategorizedTitle, name)
	})

	t.Run("database failure is surfaced", func(t *testing.T) {
		svc := newService(&fakeCategories{err: errors.New("timeout")}, nil)

		_, err := svc.ResolveCategoryName(context.Background(), 5)
		assert.EqualError(t, err, "timeout")
	})
}

func TestCategoryService_Cache(t *testing.T) {
	categories := &fakeCategories{rows: map[int64]entity.Category{3: {ID: 3, Title: "Casa"}}}
	cache := &memoryCache{data: map[string]string{}}
	svc := newService(categories, cache)

	for i := 0; i < 3; i++ {
		found, err := svc.ResolveCategory(context.Background(), 3)
		require.NoError(t, err)
		assert.Equal(t, "Casa", found.Title)
	}

	assert.Equal(t, 1, categories.calls)
	assert.Contains(t, cache.data, "category:3")
}

func TestCategoryService_MalformedCacheEntry(t *testing.T) {
	categories := &fakeCategories{rows: map[int64]entity.Category{3: {ID: 3, Title: "Casa"}}}
	cache := &memoryCache{data: map[string]string{"category:3": "{not json"}}

	found, err := newService(categories, cache).ResolveCategory(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Casa", found.Title)
	assert.Equal(t, 1, categories.calls)
}
