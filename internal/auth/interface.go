package auth

import (
	"context"

	"tasktrack/internal/model"
)

// UseCase is the auth domain's application API. Signup and the login
// variants all end in the same bearer-token grant.
type UseCase interface {
	Signup(ctx context.Context, input SignupInput) (TokenOutput, error)
	Login(ctx context.Context, input LoginInput) (TokenOutput, error)
	OAuthLogin(ctx context.Context, input OAuthLoginInput) (TokenOutput, error)
	Me(ctx context.Context, sc model.Scope) (MeOutput, error)
}
