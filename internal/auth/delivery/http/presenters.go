package http

import (
	"time"

	"tasktrack/internal/auth"
	"tasktrack/internal/model"
)

// --- Request DTOs ---

type signupReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Username string `json:"username" binding:"omitempty,min=1,max=100"`
}

func (r signupReq) toInput() auth.SignupInput {
	return auth.SignupInput{
		Email:    r.Email,
		Password: r.Password,
		Username: r.Username,
	}
}

type loginReq struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() auth.LoginInput {
	return auth.LoginInput{Email: r.Email, Password: r.Password}
}

type oauthLoginReq struct {
	Provider string `json:"-"` // populated from URI param
	Code     string `json:"code" binding:"required"`
}

func (r oauthLoginReq) toInput() auth.OAuthLoginInput {
	return auth.OAuthLoginInput{Provider: r.Provider, Code: r.Code}
}

// --- Response DTOs ---

type tokenResp struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (h *handler) newTokenResp(out auth.TokenOutput) tokenResp {
	return tokenResp{
		AccessToken: out.AccessToken,
		TokenType:   out.TokenType,
	}
}

type userResp struct {
	ID            int64     `json:"id"`
	Email         string    `json:"email"`
	Username      string    `json:"username"`
	OAuthProvider string    `json:"oauth_provider,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:            u.ID,
		Email:         u.Email,
		Username:      u.Username,
		OAuthProvider: u.OAuthProvider,
		CreatedAt:     u.CreatedAt,
	}
}

type meResp struct {
	User userResp `json:"user"`
}

func (h *handler) newMeResp(out auth.MeOutput) meResp {
	return meResp{User: newUserResp(out.User)}
}
