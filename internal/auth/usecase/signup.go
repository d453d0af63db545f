package usecase

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"tasktrack/internal/auth"
	"tasktrack/internal/auth/repository"
)

// Signup registers a password account and logs it in.
func (uc *implUseCase) Signup(ctx context.Context, input auth.SignupInput) (auth.TokenOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return auth.TokenOutput{}, auth.ErrInvalidCredentials
	}

	existing, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Signup GetOneUser: %v", err)
		return auth.TokenOutput{}, err
	}
	if existing.ID != 0 {
		return auth.TokenOutput{}, auth.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Signup GenerateFromPassword: %v", err)
		return auth.TokenOutput{}, err
	}

	username := strings.TrimSpace(input.Username)
	if username == "" {
		// Fall back to the email's local part.
		if i := strings.Index(email, "@"); i > 0 {
			username = email[:i]
		} else {
			username = email
		}
	}

	created, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Email:          email,
		Username:       username,
		HashedPassword: string(hashed),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Signup CreateUser: %v", err)
		return auth.TokenOutput{}, err
	}

	return uc.grantToken(ctx, created.ID)
}
