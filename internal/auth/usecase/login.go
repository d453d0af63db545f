package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"tasktrack/internal/auth"
	"tasktrack/internal/auth/repository"
)

// Login verifies a password account and issues a token. Unknown email and
// wrong password collapse into the same error so callers cannot probe for
// registered addresses.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.TokenOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return auth.TokenOutput{}, err
	}
	if user.ID == 0 || user.HashedPassword == "" {
		return auth.TokenOutput{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(input.Password)); err != nil {
		return auth.TokenOutput{}, auth.ErrInvalidCredentials
	}

	return uc.grantToken(ctx, user.ID)
}
