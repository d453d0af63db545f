package middleware

import (
	"sync"

	"golang.org/x/time/rate"

	"tasktrack/pkg/log"
	"tasktrack/pkg/scope"
)

// Middleware bundles the route guards: bearer-token auth for the API and a
// per-IP rate limiter for the credential endpoints.
type Middleware struct {
	l     log.Logger
	scope scope.Manager

	authLimit rate.Limit
	authBurst int
	mu        sync.Mutex
	visitors  map[string]*rate.Limiter
}

// New creates a new Middleware. ratePerMin bounds how many auth attempts a
// single IP gets per minute; zero or negative disables the limiter.
func New(l log.Logger, sc scope.Manager, ratePerMin int) *Middleware {
	m := &Middleware{
		l:        l,
		scope:    sc,
		visitors: make(map[string]*rate.Limiter),
	}
	if ratePerMin > 0 {
		m.authLimit = rate.Limit(float64(ratePerMin) / 60.0)
		m.authBurst = ratePerMin
	}
	return m
}
