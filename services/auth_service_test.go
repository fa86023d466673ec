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

package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bvsbharat/ai-agent-platform/config"
	"github.com/bvsbharat/ai-agent-platform/middleware/authtoken"
	"github.com/bvsbharat/ai-agent-platform/models"
	"github.com/bvsbharat/ai-agent-platform/spec"
	"github.com/bvsbharat/ai-agent-platform/utils"
)

// mockUserRepo is an in-memory test double for the user repository
type mockUserRepo struct {
	users map[uuid.UUID]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*models.User)}
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	copied := *user
	m.users[user.UUID] = &copied
	return nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func testTokenManager() *authtoken.Manager {
	return authtoken.NewManager(config.JWTSigningConfig{
		Secret:        "test-signing-secret",
		Issuer:        "superagents-hub",
		ExpirySeconds: 3600,
	}, "Authorization")
}

func TestRegister(t *testing.T) {
	repo := newMockUserRepo()
	manager := testTokenManager()
	svc := NewAuthService(repo, manager)

	resp, err := svc.Register(context.Background(), &spec.AuthRequest{
		Email:    "  Dev@Example.COM ",
		Password: "s3cret-pass",
		Name:     "Dev",
	})
	require.NoError(t, err)

	assert.Equal(t, "dev@example.com", resp.User.Email)
	assert.Equal(t, models.RoleUser, resp.User.Role)
	require.NotEmpty(t, resp.Token)

	claims, err := manager.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", claims.Email)
	userID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID.String())

	// the stored hash never matches the raw password
	stored, err := repo.GetByEmail(context.Background(), "dev@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), testTokenManager())

	tests := []*spec.AuthRequest{
		{Password: "pass", Name: "x"},
		{Email: "a@b.com", Name: "x"},
		{Email: "a@b.com", Password: "pass"},
	}
	for _, req := range tests {
		_, err := svc.Register(context.Background(), req)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), testTokenManager())

	_, err := svc.Register(context.Background(), &spec.AuthRequest{
		Email: "dup@example.com", Password: "pass", Name: "First",
	})
	require.NoError(t, err)

	// case differences still collide
	_, err = svc.Register(context.Background(), &spec.AuthRequest{
		Email: "DUP@example.com", Password: "pass", Name: "Second",
	})
	assert.ErrorIs(t, err, utils.ErrUserAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc := NewAuthService(newMockUserRepo(), testTokenManager())

	_, err := svc.Register(context.Background(), &spec.AuthRequest{
		Email: "login@example.com", Password: "correct-horse", Name: "Login",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &spec.AuthRequest{
		Email: "login@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "login@example.com", resp.User.Email)

	_, err = svc.Login(context.Background(), &spec.AuthRequest{
		Email: "login@example.com", Password: "battery-staple",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &spec.AuthRequest{
		Email: "nobody@example.com", Password: "whatever",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestCurrentUser(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewAuthService(repo, testTokenManager())

	resp, err := svc.Register(context.Background(), &spec.AuthRequest{
		Email: "me@example.com", Password: "pass", Name: "Me",
	})
	require.NoError(t, err)

	userID := uuid.MustParse(resp.User.ID)
	user, err := svc.CurrentUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "me@example.com", user.Email)

	_, err = svc.CurrentUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrUserNotFound)
}
