package main

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"marquee/internal/auth"
	"net"
	"net/http"
	"strings"
)

type identityKey string

const identityCtx identityKey = "identity"

// sessionCookie carries the access token for browser requests to the
// server-rendered page.
const sessionCookie = "session"

func (app *application) BasicAuthMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is missing"))
				return
			}

			scheme, encoded, ok := strings.Cut(authHeader, " ")
			if !ok || scheme != "Basic" {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("authorization header is malformed"))
				return
			}

			decoded, err := base64.StdEncoding.DecodeString(encoded)
			if err != nil {
				app.unauthorizedBasicErrorResponse(w, r, err)
				return
			}

			user, pass, ok := strings.Cut(string(decoded), ":")
			if !ok || app.config.auth.basic.pass == "" ||
				subtle.ConstantTimeCompare([]byte(user), []byte(app.config.auth.basic.user)) != 1 ||
				subtle.ConstantTimeCompare([]byte(pass), []byte(app.config.auth.basic.pass)) != 1 {
				app.unauthorizedBasicErrorResponse(w, r, fmt.Errorf("invalid credentials"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AuthTokenMiddleware requires a bearer access token.
func (app *application) AuthTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if err != nil {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}
		app.serveWithIdentity(w, r, next, token)
	})
}

// SessionMiddleware accepts a bearer token or, for browsers, the session
// cookie.
func (app *application) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r)
		if errors.Is(err, errNoAuthHeader) {
			c, cerr := r.Cookie(sessionCookie)
			if cerr != nil || c.Value == "" {
				app.unauthorizedErrorResponse(w, r, fmt.Errorf("no bearer token or session cookie"))
				return
			}
			token, err = c.Value, nil
		}
		if err != nil {
			app.unauthorizedErrorResponse(w, r, err)
			return
		}
		app.serveWithIdentity(w, r, next, token)
	})
}

func (app *application) serveWithIdentity(w http.ResponseWriter, r *http.Request, next http.Handler, token string) {
	id, err := app.authenticator.ValidateAccessToken(token)
	if err != nil {
		app.unauthorizedErrorResponse(w, r, err)
		return
	}
	ctx := context.WithValue(r.Context(), identityCtx, id)
	next.ServeHTTP(w, r.WithContext(ctx))
}

var errNoAuthHeader = errors.New("authorization header is missing")

func bearerToken(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errNoAuthHeader
	}
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || scheme != "Bearer" || token == "" {
		return "", fmt.Errorf("authorization header is malformed")
	}
	return token, nil
}

func getIdentityFromContext(r *http.Request) (auth.Identity, bool) {
	id, ok := r.Context().Value(identityCtx).(auth.Identity)
	return id, ok
}

// RateLimiterMiddleware applies the fixed-window limit per client IP.
func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.rateLimiter == nil || !app.config.rateLimiter.Enabled {
			next.ServeHTTP(w, r)
			return
		}
		if allow, retryAfter := app.rateLimiter.Allow(clientIP(r)); !allow {
			app.rateLimitExceededResponse(w, r, retryAfter)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port from RemoteAddr, which chi's RealIP middleware
// has already replaced with the forwarded address when present.
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
