package httpadapter

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Authenticator resolves the calling user id from a request. Identity is
// verified upstream; the economy engine trusts the returned id.
type Authenticator interface {
	UserID(r *http.Request) (string, error)
}

var (
	errUnauthenticated = errors.New("authentication required")
	errForbidden       = errors.New("service credentials required")
)

// JWTAuthenticator accepts HS256 bearer tokens and uses the subject claim as
// the user id.
type JWTAuthenticator struct {
	secret []byte
	issuer string
}

// NewJWTAuthenticator returns an authenticator for tokens signed with
// secret. An empty issuer accepts any issuer.
func NewJWTAuthenticator(secret, issuer string) *JWTAuthenticator {
	return &JWTAuthenticator{secret: []byte(secret), issuer: issuer}
}

func (a *JWTAuthenticator) UserID(r *http.Request) (string, error) {
	raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return "", errUnauthenticated
	}
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.NewParser(opts...).ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", errUnauthenticated
	}
	return claims.Subject, nil
}

// HeaderAuthenticator trusts the X-User-ID header. It is meant for local
// development behind a gateway that already authenticated the caller.
type HeaderAuthenticator struct{}

func (HeaderAuthenticator) UserID(r *http.Request) (string, error) {
	id := strings.TrimSpace(r.Header.Get("X-User-ID"))
	if id == "" {
		return "", errUnauthenticated
	}
	return id, nil
}

type userKey struct{}

func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := h.auth.UserID(r)
		if err != nil {
			h.writeJSON(w, http.StatusUnauthorized, envelope{Error: errUnauthenticated.Error()})
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey{}, id)))
	})
}

func userID(r *http.Request) string {
	id, _ := r.Context().Value(userKey{}).(string)
	return id
}

// authorizeService admits only callers presenting the configured service
// token. User credentials are not accepted here.
func (h *Handler) authorizeService(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := []byte(r.Header.Get("X-Service-Token"))
		if len(h.serviceToken) == 0 || subtle.ConstantTimeCompare(got, h.serviceToken) != 1 {
			h.writeJSON(w, http.StatusForbidden, envelope{Error: errForbidden.Error()})
			return
		}
		next.ServeHTTP(w, r)
	})
}
