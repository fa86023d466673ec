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

package authtoken

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bvsbharat/ai-agent-platform/config"
	"github.com/bvsbharat/ai-agent-platform/models"
)

func newTestManager(secret string) *Manager {
	return NewManager(config.JWTSigningConfig{
		Secret:        secret,
		Issuer:        "superagents-hub",
		ExpirySeconds: 3600,
	}, "Authorization")
}

func testUser(role string) *models.User {
	return &models.User{
		UUID:  uuid.New(),
		Name:  "Test User",
		Email: "test@example.com",
		Role:  role,
	}
}

func TestIssueAndVerify(t *testing.T) {
	manager := newTestManager("secret-a")
	user := testUser(models.RoleUser)

	token, err := manager.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Role, claims.Role)

	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, user.UUID, userID)
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	token, err := newTestManager("secret-a").Issue(testUser(models.RoleUser))
	require.NoError(t, err)

	_, err = newTestManager("secret-b").Verify(token)
	require.Error(t, err)

	_, err = newTestManager("secret-a").Verify("not-a-token")
	require.Error(t, err)
}

func TestRequireAuth(t *testing.T) {
	manager := newTestManager("secret-a")
	user := testUser(models.RoleUser)
	token, err := manager.Issue(user)
	require.NoError(t, err)

	var gotClaims *TokenClaims
	handler := manager.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = ClaimsFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	// no header
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest("GET", "/auth", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// garbage token
	rec = httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/auth", nil)
	r.Header.Set("Authorization", "Bearer garbage")
	handler(rec, r)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// valid token attaches claims
	rec = httptest.NewRecorder()
	r = httptest.NewRequest("GET", "/auth", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	handler(rec, r)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotClaims)
	assert.Equal(t, user.Email, gotClaims.Email)
}

func TestRequireAdmin(t *testing.T) {
	manager := newTestManager("secret-a")
	handler := manager.RequireAdmin(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	userToken, err := manager.Issue(testUser(models.RoleUser))
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/mcps/sync", nil)
	r.Header.Set("Authorization", "Bearer "+userToken)
	handler(rec, r)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	adminToken, err := manager.Issue(testUser(models.RoleAdmin))
	require.NoError(t, err)
	rec = httptest.NewRecorder()
	r = httptest.NewRequest("POST", "/mcps/sync", nil)
	r.Header.Set("Authorization", "Bearer "+adminToken)
	handler(rec, r)
	assert.Equal(t, http.StatusOK, rec.Code)
}
