package category

type CategoryResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}
