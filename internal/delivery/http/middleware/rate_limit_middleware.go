package middleware

import (
	"net"
	"net/http"
	"strings"

	"evercare-appointment-api/pkg/response"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// incrWithExpiryScript counts one hit in the client's fixed window and
// arms the window TTL on the first hit, as a single atomic operation.
var incrWithExpiryScript = redis.NewScript(`
	local current = redis.call('INCR', KEYS[1])
	if current == 1 then
		redis.call('EXPIRE', KEYS[1], ARGV[1])
	end
	return current
`)

const rateLimitKeyPrefix = "ratelimit:intake:"

// RateLimitMiddleware bounds how often one client can hit the public
// intake endpoint. Redis being down never rejects a submission: the
// limiter fails open and logs.
type RateLimitMiddleware struct {
	redisClient *redis.Client
	log         *logrus.Logger
	perMinute   int
}

func NewRateLimitMiddleware(redisClient *redis.Client, log *logrus.Logger, perMinute int) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redisClient: redisClient,
		log:         log,
		perMinute:   perMinute,
	}
}

func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.perMinute <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		key := rateLimitKeyPrefix + clientIP(r)

		count, err := incrWithExpiryScript.Run(r.Context(), m.redisClient, []string{key}, 60).Int()
		if err != nil {
			m.log.Warnf("Rate limiter unavailable, failing open: %+v", err)
			next.ServeHTTP(w, r)
			return
		}

		if count > m.perMinute {
			response.TooManyRequests(w, "Too many appointment requests, please try again later")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
