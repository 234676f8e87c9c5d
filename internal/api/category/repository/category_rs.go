package categoryRepository

import (
	"FinanceTracker/internal/api/category"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type CategoryDB struct {
	ID    int64          `db:"id"`
	Title sql.NullString `db:"title"`
}

func (r *categoryRepository) GetCategoryByID(ctx context.Context, id int64) (entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var row CategoryDB

	query, args, err := sqlx.Named(queryGetCategoryByID, map[string]interface{}{
		"id": id,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID named query preparation err")
		return entity.Category{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id":  requestID,
				"category_id": id,
			}).Warn("GetCategoryByID no rows found")
			return entity.Category{}, category.ErrCategoryNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoryByID execution err")
		return entity.Category{}, err
	}

	return makeCategory(row), nil
}

func (r *categoryRepository) GetCategories(ctx context.Context) ([]entity.Category, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []CategoryDB

	if err := r.q.SelectContext(ctx, &rows, queryGetCategories); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategories execution err")
		return nil, err
	}

	result := make([]entity.Category, 0, len(rows))
	for _, row := range rows {
		result = append(result, makeCategory(row))
	}

	return result, nil
}

func makeCategory(row CategoryDB) entity.Category {
	return entity.Category{
		ID:    row.ID,
		Title: row.Title.String,
	}
}
