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

// mockAgentRepo is an in-memory test double for the agent repository
type mockAgentRepo struct {
	agents    map[uuid.UUID]*models.Agent
	updateErr error
}

func newMockAgentRepo() *mockAgentRepo {
	return &mockAgentRepo{agents: make(map[uuid.UUID]*models.Agent)}
}

func (m *mockAgentRepo) List(ctx context.Context, filter models.ListingFilter) ([]models.Agent, int64, error) {
	var agents []models.Agent
	for _, agent := range m.agents {
		if agent.IsPublished() {
			agents = append(agents, *agent)
		}
	}
	return agents, int64(len(agents)), nil
}

func (m *mockAgentRepo) Search(ctx context.Context, filter repositories.AgentSearchFilter) ([]models.Agent, int64, error) {
	return m.List(ctx, models.ListingFilter{})
}

func (m *mockAgentRepo) Create(ctx context.Context, agent *models.Agent) error {
	copied := *agent
	m.agents[agent.UUID] = &copied
	return nil
}

func (m *mockAgentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Agent, error) {
	agent, ok := m.agents[id]
	if !ok {
		return nil, nil
	}
	copied := *agent
	return &copied, nil
}

func (m *mockAgentRepo) Update(ctx context.Context, agent *models.Agent) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	copied := *agent
	m.agents[agent.UUID] = &copied
	return nil
}

func (m *mockAgentRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	if _, ok := m.agents[id]; !ok {
		return false, nil
	}
	delete(m.agents, id)
	return true, nil
}

func (m *mockAgentRepo) IncrementMetric(ctx context.Context, id uuid.UUID, metric string, delta int64) (int64, error) {
	agent, ok := m.agents[id]
	if !ok {
		return 0, fmt.Errorf("agent %s not found", id)
	}
	var target *int64
	switch metric {
	case repositories.MetricViews:
		target = &agent.Views
	case repositories.MetricRuns:
		target = &agent.Runs
	case repositories.MetricLikes:
		target = &agent.Likes
	default:
		return 0, fmt.Errorf("unknown agent metric %q", metric)
	}
	*target += delta
	if *target < 0 {
		*target = 0
	}
	return *target, nil
}

func (m *mockAgentRepo) CountByCategory(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64)
	for _, agent := range m.agents {
		if agent.IsPublished() {
			counts[agent.Category]++
		}
	}
	return counts, nil
}

func testRequester() Requester {
	return Requester{
		ID:    uuid.New(),
		Name:  "Test User",
		Email: "test@example.com",
		Role:  models.RoleUser,
	}
}

func TestCreateAgentValidation(t *testing.T) {
	svc := NewAgentService(newMockAgentRepo())
	requester := testRequester()

	tests := []struct {
		name string
		req  *spec.CreateAgentRequest
	}{
		{
			name: "missing name",
			req: &spec.CreateAgentRequest{
				Description:    "desc",
				Category:       "Automation",
				CreationMethod: models.CreationMethodPrompt,
				Prompt:         "do things",
			},
		},
		{
			name: "unknown category",
			req: &spec.CreateAgentRequest{
				Name:           "bot",
				Description:    "desc",
				Category:       "Cooking",
				CreationMethod: models.CreationMethodPrompt,
				Prompt:         "do things",
			},
		},
		{
			name: "prompt method without prompt",
			req: &spec.CreateAgentRequest{
				Name:           "bot",
				Description:    "desc",
				Category:       "Automation",
				CreationMethod: models.CreationMethodPrompt,
			},
		},
		{
			name: "custom llm method without config",
			req: &spec.CreateAgentRequest{
				Name:           "bot",
				Description:    "desc",
				Category:       "Automation",
				CreationMethod: models.CreationMethodCustomLLM,
			},
		},
		{
			name: "unknown creation method",
			req: &spec.CreateAgentRequest{
				Name:           "bot",
				Description:    "desc",
				Category:       "Automation",
				CreationMethod: "telepathy",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), requester, tt.req)
			assert.ErrorIs(t, err, utils.ErrInvalidInput)
		})
	}
}

func TestCreateAgentStartsAsDraft(t *testing.T) {
	repo := newMockAgentRepo()
	svc := NewAgentService(repo)
	requester := testRequester()

	resp, err := svc.Create(context.Background(), requester, &spec.CreateAgentRequest{
		Name:           "Summarizer",
		Description:    "Summarizes articles",
		Category:       "Content",
		CreationMethod: models.CreationMethodPrompt,
		Prompt:         "Summarize the given text",
		Tags:           []string{"nlp", "summaries"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.DeploymentStatusDraft, resp.DeploymentStatus)
	assert.Equal(t, requester.ID.String(), resp.Creator.ID)
	assert.Equal(t, requester.Email, resp.Creator.Email)
	assert.Nil(t, resp.PublishedAt)
	assert.Len(t, repo.agents, 1)
}

func TestCreateAgentCustomLLMDefaults(t *testing.T) {
	repo := newMockAgentRepo()
	svc := NewAgentService(repo)
	endpoint := "https://llm.internal.example.com/v1"

	resp, err := svc.Create(context.Background(), testRequester(), &spec.CreateAgentRequest{
		Name:           "Custom",
		Description:    "Custom backed agent",
		Category:       "Development",
		CreationMethod: models.CreationMethodCustomLLM,
		CustomLLMConfig: &spec.CustomLLMConfig{
			APIEndpoint: &endpoint,
		},
	})
	require.NoError(t, err)

	require.NotNil(t, resp.CustomLLMConfig)
	assert.Equal(t, "gpt-4", resp.CustomLLMConfig.Model)
	assert.Equal(t, 0.7, resp.CustomLLMConfig.Temperature)
	assert.Equal(t, 2000, resp.CustomLLMConfig.MaxTokens)
	// the endpoint is stored but never exposed on reads
	assert.Nil(t, resp.CustomLLMConfig.APIEndpoint)

	var stored *models.Agent
	for _, agent := range repo.agents {
		stored = agent
	}
	require.NotNil(t, stored)
	assert.Equal(t, endpoint, stored.LLMAPIEndpoint)
}

func TestGetAgentCountsView(t *testing.T) {
	repo := newMockAgentRepo()
	svc := NewAgentService(repo)
	agent := &models.Agent{
		UUID:             uuid.New(),
		Name:             "Viewer",
		DeploymentStatus: models.DeploymentStatusPublished,
		Views:            4,
	}
	require.NoError(t, repo.Create(context.Background(), agent))

	resp, err := svc.Get(context.Background(), agent.UUID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.Metrics.Views)

	_, err = svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, utils.ErrAgentNotFound)
}

func TestUpdateAgentOwnership(t *testing.T) {
	repo := newMockAgentRepo()
	svc := NewAgentService(repo)
	owner := testRequester()
	agent := &models.Agent{
		UUID:      uuid.New(),
		Name:      "Owned",
		CreatorID: owner.ID,
	}
	require.NoError(t, repo.Create(context.Background(), agent))

	name := "Renamed"
	stranger := testRequester()
	_, err := svc.Update(context.Background(), stranger, agent.UUID, &spec.UpdateAgentRequest{Name: &name})
	assert.ErrorIs(t, err, utils.ErrForbidden)

	admin := testRequester()
	admin.Role = models.RoleAdmin
	resp, err := svc.Update(context.Background(), admin, agent.UUID, &spec.UpdateAgentRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", resp.Name)
}

func TestUpdateAgentPublishStampsOnce(t *testing.T) {
	repo := newMockAgentRepo()
	svc := NewAgentService(repo)
	owner := testRequester()
	agent := &models.Agent{
		UUID:             uuid.New(),
		Name:             "Publishable",
		CreatorID:        owner.ID,
		DeploymentStatus: models.DeploymentStatusDraft,
	}
	require.NoError(t, repo.Create(context.Background(), agent))

	published := models.DeploymentStatusPublished
	resp, err := svc.Update(context.Background(), owner, agent.UUID, &spec.UpdateAgentRequest{DeploymentStatus: &published})
	require.NoError(t, err)
	require.NotNil(t, resp.PublishedAt)
	firstPublish := *resp.PublishedAt

	// unpublish and republish; the original timestamp survives
	draft := models.DeploymentStatusDraft
	_, err = svc.Update(context.Background(), owner, agent.UUID, &spec.UpdateAgentRequest{DeploymentStatus: &draft})
	require.NoError(t, err)

	resp, err = svc.Update(context.Background(), owner, agent.UUID, &spec.UpdateAgentRequest{DeploymentStatus: &published})
	require.NoError(t, err)
	require.NotNil(t, resp.PublishedAt)
	assert.Equal(t, firstPublish, *resp.PublishedAt)

	bogus := "launched"
	_, err = svc.Update(context.Background(), owner, agent.UUID, &spec.UpdateAgentRequest{DeploymentStatus: &bogus})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestDeleteAgent(t *testing.T) {
	repo := newMockAgentRepo()
	svc := NewAgentService(repo)
	owner := testRequester()
	agent := &models.Agent{UUID: uuid.New(), CreatorID: owner.ID}
	require.NoError(t, repo.Create(context.Background(), agent))

	stranger := testRequester()
	assert.ErrorIs(t, svc.Delete(context.Background(), stranger, agent.UUID), utils.ErrForbidden)

	require.NoError(t, svc.Delete(context.Background(), owner, agent.UUID))
	assert.Empty(t, repo.agents)

	assert.ErrorIs(t, svc.Delete(context.Background(), owner, agent.UUID), utils.ErrAgentNotFound)
}

func TestLikeAgent(t *testing.T) {
	repo := newMockAgentRepo()
	svc := NewAgentService(repo)
	agent := &models.Agent{UUID: uuid.New(), DeploymentStatus: models.DeploymentStatusPublished}
	require.NoError(t, repo.Create(context.Background(), agent))

	resp, err := svc.Like(context.Background(), agent.UUID, &spec.LikeAgentRequest{Action: "like"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Likes)

	resp, err = svc.Like(context.Background(), agent.UUID, &spec.LikeAgentRequest{Action: "like"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.Likes)

	resp, err = svc.Like(context.Background(), agent.UUID, &spec.LikeAgentRequest{Action: "unlike"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.Likes)

	_, err = svc.Like(context.Background(), agent.UUID, &spec.LikeAgentRequest{Action: "dislike"})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.Like(context.Background(), uuid.New(), &spec.LikeAgentRequest{Action: "like"})
	assert.ErrorIs(t, err, utils.ErrAgentNotFound)
}

func TestLikeAgentNeverGoesNegative(t *testing.T) {
	repo := newMockAgentRepo()
	svc := NewAgentService(repo)
	agent := &models.Agent{UUID: uuid.New(), DeploymentStatus: models.DeploymentStatusPublished}
	require.NoError(t, repo.Create(context.Background(), agent))

	resp, err := svc.Like(context.Background(), agent.UUID, &spec.LikeAgentRequest{Action: "unlike"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.Likes)
}

func TestRunAgent(t *testing.T) {
	repo := newMockAgentRepo()
	svc := NewAgentService(repo)
	agent := &models.Agent{
		UUID:             uuid.New(),
		Name:             "Summarizer",
		CreationMethod:   models.CreationMethodPrompt,
		Prompt:           "Summarize the given text",
		DeploymentStatus: models.DeploymentStatusPublished,
	}
	require.NoError(t, repo.Create(context.Background(), agent))

	resp, err := svc.Run(context.Background(), agent.UUID, &spec.RunAgentRequest{Input: "hello world"})
	require.NoError(t, err)

	assert.Equal(t, agent.UUID.String(), resp.AgentID)
	assert.Equal(t, "hello world", resp.Input)
	assert.Equal(t, int64(1), resp.RunCount)
	assert.Equal(t,
		`Agent Response: Based on the prompt "Summarize the given text", here's my response to "hello world": `+
			"This is a simulated response from the Summarizer agent. In a real implementation, "+
			"this would be processed by an actual LLM.",
		resp.Response)

	resp, err = svc.Run(context.Background(), agent.UUID, &spec.RunAgentRequest{Input: "again"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.RunCount)
}

func TestRunAgentCustomLLM(t *testing.T) {
	repo := newMockAgentRepo()
	svc := NewAgentService(repo)
	agent := &models.Agent{
		UUID:             uuid.New(),
		Name:             "Custom",
		CreationMethod:   models.CreationMethodCustomLLM,
		LLMModel:         "claude-3",
		LLMTemperature:   0.2,
		DeploymentStatus: models.DeploymentStatusPublished,
	}
	require.NoError(t, repo.Create(context.Background(), agent))

	resp, err := svc.Run(context.Background(), agent.UUID, &spec.RunAgentRequest{Input: "hi"})
	require.NoError(t, err)
	assert.Equal(t,
		`Custom LLM Response: Using model claude-3 with temperature 0.2, responding to "hi": `+
			"This is a simulated response from the Custom agent with custom LLM configuration. "+
			"In a real implementation, this would call the specified LLM endpoint.",
		resp.Response)
}

func TestRunAgentGuards(t *testing.T) {
	repo := newMockAgentRepo()
	svc := NewAgentService(repo)
	draft := &models.Agent{
		UUID:             uuid.New(),
		Name:             "Draft",
		CreationMethod:   models.CreationMethodPrompt,
		Prompt:           "p",
		DeploymentStatus: models.DeploymentStatusDraft,
	}
	require.NoError(t, repo.Create(context.Background(), draft))

	_, err := svc.Run(context.Background(), draft.UUID, &spec.RunAgentRequest{Input: ""})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)

	_, err = svc.Run(context.Background(), uuid.New(), &spec.RunAgentRequest{Input: "x"})
	assert.ErrorIs(t, err, utils.ErrAgentNotFound)

	_, err = svc.Run(context.Background(), draft.UUID, &spec.RunAgentRequest{Input: "x"})
	assert.ErrorIs(t, err, utils.ErrAgentNotPublished)
}

func TestCategoriesIncludesAllFirst(t *testing.T) {
	repo := newMockAgentRepo()
	svc := NewAgentService(repo)
	for i, category := range []string{"Finance", "Finance", "Marketing"} {
		require.NoError(t, repo.Create(context.Background(), &models.Agent{
			UUID:             uuid.New(),
			Name:             fmt.Sprintf("agent-%d", i),
			Category:         category,
			DeploymentStatus: models.DeploymentStatusPublished,
		}))
	}
	// drafts never count
	require.NoError(t, repo.Create(context.Background(), &models.Agent{
		UUID:             uuid.New(),
		Category:         "Finance",
		DeploymentStatus: models.DeploymentStatusDraft,
	}))

	resp, err := svc.Categories(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.Total)
	require.Len(t, resp.Categories, len(models.AgentCategories)+1)
	assert.Equal(t, spec.CategoryCount{Name: models.CategoryAll, Count: 3}, resp.Categories[0])

	byName := make(map[string]int64)
	for _, c := range resp.Categories[1:] {
		byName[c.Name] = c.Count
	}
	assert.Equal(t, int64(2), byName["Finance"])
	assert.Equal(t, int64(1), byName["Marketing"])
	assert.Equal(t, int64(0), byName["Healthcare"])
}
