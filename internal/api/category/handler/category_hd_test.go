package categoryHandler

import (
	"FinanceTracker/internal/entity"
	"FinanceTracker/internal/middleware"
	jwtPkg "FinanceTracker/pkg/jwt"
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCategoryService struct {
	categories []entity.Category
	err        error
}

func (f fakeCategoryService) GetCategories(context.Context) ([]entity.Category, error) {
	return f.categories, f.err
}

func (f fakeCategoryService) ResolveCategory(context.Context, int64) (entity.Category, error) {
	return entity.Category{}, errors.New("not used")
}

func (f fakeCategoryService) ResolveCategoryName(context.Context, int64) (string, error) {
	return "", errors.New("not used")
}

func newTestApp(t *testing.T, svc fakeCategoryService) (*fiber.App, string) {
	t.Helper()
	t.Setenv(jwtPkg.AccessTokenSecret, "test-secret")

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New(fiber.Config{
		JSONEncoder: jsoniter.Marshal,
		JSONDecoder: jsoniter.Unmarshal,
	})
	New(logger, middleware.New(logger), svc).Start(app)

	token, _, err := jwtPkg.Sign(map[string]interface{}{"id": 1}, time.Hour)
	require.NoError(t, err)

	return app, token
}

func TestCategoryHandler_GetCategories(t *testing.T) {
	t.Run("lists every category", func(t *testing.T) {
		app, token := newTestApp(t, fakeCategoryService{categories: []entity.Category{
			{ID: 1, Title: "Alimentação"},
			{ID: 2, Title: "Salário"},
		}})

		req := httptest.NewRequest(fiber.MethodGet, "/categorias", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var body []map[string]interface{}
		raw, _ := io.ReadAll(resp.Body)
		require.NoError(t, jsoniter.Unmarshal(raw, &body))
		require.Len(t, body, 2)
		assert.Equal(t, "Salário", body[1]["title"])
	})

	t.Run("empty table is an empty array", func(t *testing.T) {
		app, token := newTestApp(t, fakeCategoryService{})

		req := httptest.NewRequest(fiber.MethodGet, "/categorias", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)

		raw, _ := io.ReadAll(resp.Body)
		assert.Equal(t, "[]", string(raw))
	})

	t.Run("database failure", func(t *testing.T) {
		app, token := newTestApp(t, fakeCategoryService{err: errors.New("boom")})

		req := httptest.NewRequest(fiber.MethodGet, "/categorias", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	})

	t.Run("requires token", func(t *testing.T) {
		app, _ := newTestApp(t, fakeCategoryService{})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/categorias", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}
