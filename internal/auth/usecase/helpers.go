package usecase

import (
	"context"

	"tasktrack/internal/auth"
)

func (uc *implUseCase) grantToken(ctx context.Context, userID int64) (auth.TokenOutput, error) {
	token, err := uc.scope.Issue(userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.grantToken Issue: %v", err)
		return auth.TokenOutput{}, err
	}
	return auth.TokenOutput{AccessToken: token, TokenType: "Bearer"}, nil
}
