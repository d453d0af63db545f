package model

import "time"

// Environment identifies the deployment environment.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Scope carries the authenticated caller's identity through use cases and
// repositories. Every query is restricted to the scope's user.
type Scope struct {
	UserID int64
}

// User is an account that owns tasks and categories.
type User struct {
	ID             int64
	Email          string
	Username       string
	HashedPassword string
	OAuthProvider  string // "google", "github", or empty for password accounts
	OAuthID        string
	CreatedAt      time.Time
}
