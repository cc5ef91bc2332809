package model

// Guest is the authenticated user identity as asserted by the external auth
// service. The storefront never edits these fields; checkout renders them
// read-only from the session token claims.
type Guest struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Phone    string `json:"phone"`
}
