// Package user defines the user entity.
package user

// User is an account record keyed by a UUID id. The email is stored trimmed
// and is unique at the storage layer.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
