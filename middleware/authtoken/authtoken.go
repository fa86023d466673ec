// Copyright (c) 2026, WSO2 LLC. (https://www.wso2.com).
//
// WSO2 LLC. licenses this file to you under the Apache License,
// Version 2.0 (the "License"); you may not use this file except
// in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Package authtoken issues and verifies the HS256 bearer tokens used by
// the public API, and provides the handler guards that enforce them.
package authtoken

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/bvsbharat/ai-agent-platform/config"
	"github.com/bvsbharat/ai-agent-platform/middleware/logger"
	"github.com/bvsbharat/ai-agent-platform/models"
	"github.com/bvsbharat/ai-agent-platform/utils"
)

// TokenClaims are the claims embedded in issued bearer tokens
type TokenClaims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// UserID returns the subject claim parsed as a UUID
func (c *TokenClaims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

type claimsCtxKey struct{}

// WithClaims returns a context carrying verified token claims
func WithClaims(ctx context.Context, claims *TokenClaims) context.Context {
	return context.WithValue(ctx, claimsCtxKey{}, claims)
}

// ClaimsFromContext returns the verified claims attached by RequireAuth
func ClaimsFromContext(ctx context.Context) (*TokenClaims, bool) {
	claims, ok := ctx.Value(claimsCtxKey{}).(*TokenClaims)
	return claims, ok
}

// Manager signs and verifies bearer tokens
type Manager struct {
	secret []byte
	issuer string
	expiry time.Duration
	header string
}

// NewManager creates a token manager from the JWT signing configuration
func NewManager(cfg config.JWTSigningConfig, authHeader string) *Manager {
	return &Manager{
		secret: []byte(cfg.Secret),
		issuer: cfg.Issuer,
		expiry: time.Duration(cfg.ExpirySeconds) * time.Second,
		header: authHeader,
	}
}

// Issue creates a signed token for the given user
func (m *Manager) Issue(user *models.User) (string, error) {
	now := time.Now()
	claims := &TokenClaims{
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UUID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a signed token string
func (m *Manager) Verify(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, utils.ErrUnauthorized
	}
	return claims, nil
}

// RequireAuth rejects requests lacking a valid bearer token and attaches
// the verified claims to the request context.
func (m *Manager) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.claimsFromRequest(r)
		if err != nil {
			logger.GetLogger(r.Context()).Warn("rejected unauthenticated request", "error", err)
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
	}
}

// RequireAdmin additionally rejects non-admin users with 403
func (m *Manager) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		claims, _ := ClaimsFromContext(r.Context())
		if claims == nil || claims.Role != models.RoleAdmin {
			utils.WriteErrorResponse(w, http.StatusForbidden, "Admin privileges required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *Manager) claimsFromRequest(r *http.Request) (*TokenClaims, error) {
	raw := r.Header.Get(m.header)
	if raw == "" {
		return nil, fmt.Errorf("missing %s header", m.header)
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
	if tokenString == "" {
		return nil, fmt.Errorf("empty bearer token")
	}
	return m.Verify(tokenString)
}
