package usecase

import (
	"context"

	"golang.org/x/oauth2"

	"tasktrack/internal/auth"
	"tasktrack/internal/auth/repository"
	"tasktrack/pkg/log"
	"tasktrack/pkg/scope"
)

// OAuthConfig holds the configured oauth2 clients. A nil entry means the
// provider is disabled for this deployment.
type OAuthConfig struct {
	Google *oauth2.Config
	GitHub *oauth2.Config
}

type implUseCase struct {
	l     log.Logger
	repo  repository.Repository
	scope scope.Manager
	oauth OAuthConfig

	// Seams for tests; default to the real oauth2 flow.
	exchange      func(ctx context.Context, conf *oauth2.Config, code string) (*oauth2.Token, error)
	fetchIdentity func(ctx context.Context, conf *oauth2.Config, token *oauth2.Token, provider string) (Identity, error)
}

var _ auth.UseCase = &implUseCase{}

// New creates a new auth UseCase.
func New(l log.Logger, repo repository.Repository, sc scope.Manager, oauth OAuthConfig) auth.UseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		scope: sc,
		oauth: oauth,
		exchange: func(ctx context.Context, conf *oauth2.Config, code string) (*oauth2.Token, error) {
			return conf.Exchange(ctx, code)
		},
		fetchIdentity: fetchProviderIdentity,
	}
}

// NewForTest creates an auth UseCase with the oauth exchange and identity
// fetch replaced, so tests can drive OAuthLogin without a live provider.
func NewForTest(
	l log.Logger,
	repo repository.Repository,
	sc scope.Manager,
	oauth OAuthConfig,
	exchange func(ctx context.Context, conf *oauth2.Config, code string) (*oauth2.Token, error),
	fetchIdentity func(ctx context.Context, conf *oauth2.Config, token *oauth2.Token, provider string) (Identity, error),
) auth.UseCase {
	uc := New(l, repo, sc, oauth).(*implUseCase)
	if exchange != nil {
		uc.exchange = exchange
	}
	if fetchIdentity != nil {
		uc.fetchIdentity = fetchIdentity
	}
	return uc
}
