package http

import (
	"github.com/gin-gonic/gin"

	"tasktrack/internal/middleware"
	"tasktrack/pkg/response"
)

// Signup godoc
// @Summary     Register an account
// @Description Creates a password account and returns a bearer token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body signupReq true "Account data"
// @Success     200 {object} tokenResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - email already registered"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/signup [POST]
func (h *handler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignupReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Signup(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Signup: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTokenResp(output))
}

// Login godoc
// @Summary     Log in
// @Description Verifies email and password, returning a bearer token.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} tokenResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid credentials"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTokenResp(output))
}

// OAuthLogin godoc
// @Summary     Log in with an OAuth provider
// @Description Exchanges a provider authorization code for a bearer token, creating the account on first login.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       provider path string        true "Provider (google or github)"
// @Param       body     body oauthLoginReq true "Authorization code"
// @Success     200 {object} tokenResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Code exchange failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/oauth/{provider} [POST]
func (h *handler) OAuthLogin(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOAuthLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.OAuthLogin(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.OAuthLogin: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTokenResp(output))
}

// Me godoc
// @Summary     Current user
// @Description Returns the authenticated user's profile.
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} meResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.Me(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Me: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMeResp(output))
}
