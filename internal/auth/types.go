package auth

import "tasktrack/internal/model"

// OAuth provider names accepted by OAuthLogin.
const (
	ProviderGoogle = "google"
	ProviderGitHub = "github"
)

// --- UseCase Inputs ---

type SignupInput struct {
	Email    string
	Password string
	Username string
}

type LoginInput struct {
	Email    string
	Password string
}

// OAuthLoginInput carries the authorization code returned by the provider's
// consent screen.
type OAuthLoginInput struct {
	Provider string
	Code     string
}

// --- UseCase Outputs ---

// TokenOutput is a bearer token grant.
type TokenOutput struct {
	AccessToken string
	TokenType   string
}

type MeOutput struct {
	User model.User
}
