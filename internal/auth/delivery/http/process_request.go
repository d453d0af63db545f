package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "tasktrack/pkg/errors"
)

// processSignupReq binds the signup request body.
func (h *handler) processSignupReq(c *gin.Context) (signupReq, error) {
	var req signupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processLoginReq binds the login request body.
func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processOAuthLoginReq binds the authorization code body + provider param.
func (h *handler) processOAuthLoginReq(c *gin.Context) (oauthLoginReq, error) {
	var req oauthLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Provider = c.Param("provider")
	if req.Provider == "" {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}
