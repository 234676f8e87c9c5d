package entity

// UserLoginData is what the token middleware extracts from a verified access
// token. ID is the owner every transaction is scoped to.
type UserLoginData struct {
	ID    int64
	Name  string
	Email string
}
