package entity

const UncategorizedTitle = "Uncategorized"

type Category struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
