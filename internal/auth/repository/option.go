package repository

type CreateUserOptions struct {
	Email          string
	Username       string
	HashedPassword string
	OAuthProvider  string
	OAuthID        string
}

// GetOneUserOptions selects a user by ID, by email, or by the
// (OAuthProvider, OAuthID) pair. Exactly one selector should be set.
type GetOneUserOptions struct {
	ID            int64
	Email         string
	OAuthProvider string
	OAuthID       string
}
