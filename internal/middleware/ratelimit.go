package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"tasktrack/pkg/response"
)

func (m *Middleware) limiterFor(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	if lim, ok := m.visitors[ip]; ok {
		return lim
	}
	lim := rate.NewLimiter(m.authLimit, m.authBurst)
	m.visitors[ip] = lim
	return lim
}

// RateLimit throttles credential endpoints per client IP. Brute-forcing a
// password should exhaust the budget long before it exhausts the search
// space.
func (m *Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.authLimit == 0 {
			c.Next()
			return
		}
		if !m.limiterFor(c.ClientIP()).Allow() {
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
