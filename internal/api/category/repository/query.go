package categoryRepository

const (
	queryGetCategoryByID = `
		SELECT
			id,
			title
		FROM categories
		WHERE id = :id
	`

	queryGetCategories = `
		SELECT
			id,
			title
		FROM categories
		ORDER BY id
	`
)
