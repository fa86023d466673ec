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
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bvsbharat/ai-agent-platform/models"
	"github.com/bvsbharat/ai-agent-platform/repositories"
	"github.com/bvsbharat/ai-agent-platform/spec"
	"github.com/bvsbharat/ai-agent-platform/utils"
)

// mockRuleRepo is an in-memory test double for the rule repository
type mockRuleRepo struct {
	rules map[uuid.UUID]*models.Rule
}

func newMockRuleRepo() *mockRuleRepo {
	return &mockRuleRepo{rules: make(map[uuid.UUID]*models.Rule)}
}

func (m *mockRuleRepo) List(ctx context.Context, filter models.ListingFilter) ([]models.Rule, int64, error) {
	var rules []models.Rule
	for _, rule := range m.rules {
		rules = append(rules, *rule)
	}
	return rules, int64(len(rules)), nil
}

func (m *mockRuleRepo) Create(ctx context.Context, rule *models.Rule) error {
	copied := *rule
	m.rules[rule.UUID] = &copied
	return nil
}

func (m *mockRuleRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Rule, error) {
	rule, ok := m.rules[id]
	if !ok {
		return nil, nil
	}
	copied := *rule
	return &copied, nil
}

func (m *mockRuleRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := m.rules[id]; !ok {
		return false, nil
	}
	delete(m.rules, id)
	return true, nil
}

func (m *mockRuleRepo) IncrementMetric(ctx context.Context, id uuid.UUID, metric string, delta int64) (int64, error) {
	rule, ok := m.rules[id]
	if !ok {
		return 0, fmt.Errorf("rule %s not found", id)
	}
	var target *int64
	switch metric {
	case repositories.RuleMetricVotes:
		target = &rule.Votes
	case repositories.RuleMetricViews:
		target = &rule.Views
	default:
		return 0, fmt.Errorf("unknown rule metric %q", metric)
	}
	*target += delta
	if *target < 0 {
		*target = 0
	}
	return *target, nil
}

func TestCreateRule(t *testing.T) {
	repo := newMockRuleRepo()
	svc := NewRuleService(repo)
	requester := testRequester()

	resp, err := svc.Create(context.Background(), requester, &spec.CreateRuleRequest{
		Title:       "Always handle errors",
		Description: "Error returns are part of the contract",
		Category:    "Go",
		Content:     "Never discard an error without a comment.",
		Tags:        []string{"errors", "style"},
	})
	require.NoError(t, err)

	assert.Equal(t, requester.ID.String(), resp.AuthorID)
	assert.Equal(t, requester.Name, resp.AuthorName)
	assert.Equal(t, int64(0), resp.Votes)
	assert.Len(t, repo.rules, 1)
}

func TestCreateRuleValidation(t *testing.T) {
	svc := NewRuleService(newMockRuleRepo())

	tests := []*spec.CreateRuleRequest{
		{Description: "d", Category: "c", Content: "x"},
		{Title: "t", Category: "c", Content: "x"},
		{Title: "t", Description: "d", Content: "x"},
		{Title: "t", Description: "d", Category: "c"},
	}
	for _, req := range tests {
		_, err := svc.Create(context.Background(), testRequester(), req)
		assert.ErrorIs(t, err, utils.ErrInvalidInput)
	}
}

func TestGetRuleCountsView(t *testing.T) {
	repo := newMockRuleRepo()
	svc := NewRuleService(repo)
	rule := &models.Rule{UUID: uuid.New(), Title: "t", Views: 9}
	require.NoError(t, repo.Create(context.Background(), rule))

	resp, err := svc.Get(context.Background(), rule.UUID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.Views)

	_, err = svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrRuleNotFound)
}

func TestDeleteRule(t *testing.T) {
	repo := newMockRuleRepo()
	svc := NewRuleService(repo)
	author := testRequester()
	rule := &models.Rule{UUID: uuid.New(), AuthorID: author.ID}
	require.NoError(t, repo.Create(context.Background(), rule))

	stranger := testRequester()
	assert.ErrorIs(t, svc.Delete(context.Background(), stranger, rule.UUID), utils.ErrForbidden)

	admin := testRequester()
	admin.Role = models.RoleAdmin
	require.NoError(t, svc.Delete(context.Background(), admin, rule.UUID))
	assert.Empty(t, repo.rules)
}

func TestVoteRule(t *testing.T) {
	repo := newMockRuleRepo()
	svc := NewRuleService(repo)
	rule := &models.Rule{UUID: uuid.New()}
	require.NoError(t, repo.Create(context.Background(), rule))

	resp, err := svc.Vote(context.Background(), rule.UUID, &spec.VoteRuleRequest{Action: "up"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Votes)

	resp, err = svc.Vote(context.Background(), rule.UUID, &spec.VoteRuleRequest{Action: "down"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Votes)

	// floored at zero
	resp, err = svc.Vote(context.Background(), rule.UUID, &spec.VoteRuleRequest{Action: "down"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Votes)

	_, err = svc.Vote(context.Background(), rule.UUID, &spec.VoteRuleRequest{Action: "sideways"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.Vote(context.Background(), uuid.New(), &spec.VoteRuleRequest{Action: "up"})
	assert.ErrorIs(t, err, utils.ErrRuleNotFound)
}
