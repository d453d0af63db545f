package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"

	"tasktrack/internal/auth"
	"tasktrack/internal/auth/repository"
)

// Identity is the subset of a provider's userinfo response we need to link
// or create an account.
type Identity struct {
	ID       string
	Email    string
	Username string
}

const (
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	githubUserInfoURL = "https://api.github.com/user"
)

// OAuthLogin exchanges a provider authorization code for a local bearer
// token, creating the account on first login.
func (uc *implUseCase) OAuthLogin(ctx context.Context, input auth.OAuthLoginInput) (auth.TokenOutput, error) {
	conf, err := uc.providerConfig(input.Provider)
	if err != nil {
		return auth.TokenOutput{}, err
	}

	token, err := uc.exchange(ctx, conf, input.Code)
	if err != nil {
		uc.l.Warnf(ctx, "uc.OAuthLogin exchange %s: %v", input.Provider, err)
		return auth.TokenOutput{}, auth.ErrOAuthExchange
	}

	identity, err := uc.fetchIdentity(ctx, conf, token, input.Provider)
	if err != nil {
		uc.l.Errorf(ctx, "uc.OAuthLogin fetchIdentity %s: %v", input.Provider, err)
		return auth.TokenOutput{}, auth.ErrOAuthExchange
	}

	user, err := uc.repo.GetOneUser(ctx, repository.GetOneUserOptions{
		OAuthProvider: input.Provider,
		OAuthID:       identity.ID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.OAuthLogin GetOneUser: %v", err)
		return auth.TokenOutput{}, err
	}
	if user.ID == 0 {
		user, err = uc.repo.CreateUser(ctx, repository.CreateUserOptions{
			Email:         strings.ToLower(identity.Email),
			Username:      identity.Username,
			OAuthProvider: input.Provider,
			OAuthID:       identity.ID,
		})
		if err != nil {
			uc.l.Errorf(ctx, "uc.OAuthLogin CreateUser: %v", err)
			return auth.TokenOutput{}, err
		}
	}

	return uc.grantToken(ctx, user.ID)
}

func (uc *implUseCase) providerConfig(provider string) (*oauth2.Config, error) {
	switch provider {
	case auth.ProviderGoogle:
		if uc.oauth.Google == nil {
			return nil, auth.ErrProviderDisabled
		}
		return uc.oauth.Google, nil
	case auth.ProviderGitHub:
		if uc.oauth.GitHub == nil {
			return nil, auth.ErrProviderDisabled
		}
		return uc.oauth.GitHub, nil
	default:
		return nil, auth.ErrUnknownProvider
	}
}

// fetchProviderIdentity calls the provider's userinfo endpoint with the
// exchanged token. Field names differ per provider, so decode loosely.
func fetchProviderIdentity(ctx context.Context, conf *oauth2.Config, token *oauth2.Token, provider string) (Identity, error) {
	var url string
	switch provider {
	case auth.ProviderGoogle:
		url = googleUserInfoURL
	case auth.ProviderGitHub:
		url = githubUserInfoURL
	default:
		return Identity{}, auth.ErrUnknownProvider
	}

	resp, err := conf.Client(ctx, token).Get(url)
	if err != nil {
		return Identity{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Identity{}, fmt.Errorf("userinfo status %d", resp.StatusCode)
	}

	// Google sends id as a string, GitHub as a number.
	var raw struct {
		ID    any    `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
		Login string `json:"login"` // github
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return Identity{}, err
	}

	identity := Identity{
		Email:    raw.Email,
		Username: raw.Name,
	}
	switch v := raw.ID.(type) {
	case string:
		identity.ID = v
	case json.Number:
		identity.ID = v.String()
	}
	if identity.Username == "" {
		identity.Username = raw.Login
	}
	if identity.ID == "" {
		return Identity{}, fmt.Errorf("userinfo missing id")
	}
	return identity, nil
}
