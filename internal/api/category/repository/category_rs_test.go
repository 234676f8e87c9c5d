package categoryRepository

import (
	"FinanceTracker/internal/api/category"
	"context"
	"io"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func NewMock(t *testing.T) (Client, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return New(sqlx.NewDb(db, "postgres"), logger).NewClient(), mock
}

func TestCategoryRepository_GetCategoryByID(t *testing.T) {
	t.Run("category exists", func(t *testing.T) {
		client, mock := NewMock(t)

		mock.ExpectQuery(`FROM categories\s+WHERE id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).AddRow(1, "Salário"))

		found, err := client.Categories.GetCategoryByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Salário", found.Title)
	})

	t.Run("category does not exist", func(t *testing.T) {
		client, mock := NewMock(t)

		mock.ExpectQuery(`FROM categories\s+WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))

		found, err := client.Categories.GetCategoryByID(context.Background(), 99)
		assert.Empty(t, found)
		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})
}

func TestCategoryRepository_GetCategories(t *testing.T) {
	client, mock := NewMock(t)

	mock.ExpectQuery(`SELECT\s+id,\s+title\s+FROM categories\s+ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow(1, "Alimentação").
			AddRow(2, "Casa"))

	categories, err := client.Categories.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}
