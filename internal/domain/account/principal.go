package account

// Principal identifies the authenticated administrator for a request.
type Principal struct {
	UserID   string
	Username string
}
