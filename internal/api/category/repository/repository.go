package categoryRepository

import (
	"FinanceTracker/internal/entity"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient() Client
}

// Categories are read only here, so clients never open a transaction.
func (r *repository) NewClient() Client {
	return Client{
		Categories: &categoryRepository{q: r.DB, log: r.log},
	}
}

type Client struct {
	Categories interface {
		GetCategoryByID(ctx context.Context, id int64) (entity.Category, error)
		GetCategories(ctx context.Context) ([]entity.Category, error)
	}
}

type categoryRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
