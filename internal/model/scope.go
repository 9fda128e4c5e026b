package model

// Scope identifies the authenticated caller of a use case.
type Scope struct {
	UserID string
	Role   string
}
