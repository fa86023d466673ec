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
	"time"

	"github.com/google/uuid"

	"github.com/bvsbharat/ai-agent-platform/models"
	"github.com/bvsbharat/ai-agent-platform/repositories"
	"github.com/bvsbharat/ai-agent-platform/spec"
	"github.com/bvsbharat/ai-agent-platform/utils"
)

// Defaults applied to a custom LLM configuration when fields are omitted
const (
	defaultLLMModel       = "gpt-4"
	defaultLLMTemperature = 0.7
	defaultLLMMaxTokens   = 2000
)

// Requester identifies the authenticated user on whose behalf an
// operation runs.
type Requester struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  string
}

// AgentService handles agent business logic
type AgentService struct {
	agentRepo repositories.AgentRepository
}

// NewAgentService creates a new agent service
func NewAgentService(agentRepo repositories.AgentRepository) *AgentService {
	return &AgentService{agentRepo: agentRepo}
}

// List lists published agents matching the filter
func (s *AgentService) List(ctx context.Context, filter models.ListingFilter, page int) (*spec.AgentListResponse, error) {
	agents, total, err := s.agentRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	responses := make([]spec.AgentResponse, 0, len(agents))
	for i := range agents {
		responses = append(responses, agentToResponse(&agents[i]))
	}

	return &spec.AgentListResponse{
		Agents:     responses,
		Pagination: spec.NewPagination(page, filter.Limit, total),
	}, nil
}

// Search lists published agents matching the cross-field search filter
func (s *AgentService) Search(ctx context.Context, filter repositories.AgentSearchFilter, page int) (*spec.SearchResponse, error) {
	agents, total, err := s.agentRepo.Search(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to search agents: %w", err)
	}

	responses := make([]spec.AgentResponse, 0, len(agents))
	for i := range agents {
		responses = append(responses, agentToResponse(&agents[i]))
	}

	order := "desc"
	if filter.Ascending {
		order = "asc"
	}

	return &spec.SearchResponse{
		Agents:      responses,
		Pagination:  spec.NewPagination(page, filter.Limit, total),
		SearchQuery: filter.Query,
		Category:    filter.Category,
		SortBy:      filter.SortBy,
		Order:       order,
	}, nil
}

// Create validates and persists a new agent owned by the requester
func (s *AgentService) Create(ctx context.Context, requester Requester, req *spec.CreateAgentRequest) (*spec.AgentResponse, error) {
	if req.Name == "" || req.Description == "" || req.Category == "" {
		return nil, utils.ErrInvalidInput
	}
	if !models.IsValidAgentCategory(req.Category) {
		return nil, utils.ErrInvalidInput
	}

	agent := &models.Agent{
		UUID:             uuid.New(),
		Name:             req.Name,
		Description:      req.Description,
		Category:         req.Category,
		CreationMethod:   req.CreationMethod,
		CreatorID:        requester.ID,
		CreatorName:      requester.Name,
		CreatorEmail:     requester.Email,
		Tags:             req.Tags,
		DeploymentStatus: models.DeploymentStatusDraft,
	}

	switch req.CreationMethod {
	case models.CreationMethodPrompt:
		if req.Prompt == "" {
			return nil, utils.ErrInvalidInput
		}
		agent.Prompt = req.Prompt
	case models.CreationMethodCustomLLM:
		if req.CustomLLMConfig == nil {
			return nil, utils.ErrInvalidInput
		}
		applyLLMConfig(agent, req.CustomLLMConfig)
	default:
		return nil, utils.ErrInvalidInput
	}

	if err := s.agentRepo.Create(ctx, agent); err != nil {
		return nil, fmt.Errorf("failed to create agent: %w", err)
	}

	resp := agentToResponse(agent)
	return &resp, nil
}

// Get returns a single agent, counting the read as a view
func (s *AgentService) Get(ctx context.Context, id uuid.UUID) (*spec.AgentResponse, error) {
	agent, err := s.agentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	if agent == nil {
		return nil, utils.ErrAgentNotFound
	}

	views, err := s.agentRepo.IncrementMetric(ctx, id, repositories.MetricViews, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to increment agent views: %w", err)
	}
	agent.Views = views

	resp := agentToResponse(agent)
	return &resp, nil
}

// Update applies the non-nil fields of the request to an agent owned by the
// requester. The first transition to published stamps PublishedAt; later
// republishes keep the original timestamp.
func (s *AgentService) Update(ctx context.Context, requester Requester, id uuid.UUID, req *spec.UpdateAgentRequest) (*spec.AgentResponse, error) {
	agent, err := s.agentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	if agent == nil {
		return nil, utils.ErrAgentNotFound
	}
	if agent.CreatorID != requester.ID && requester.Role != models.RoleAdmin {
		return nil, utils.ErrForbidden
	}

	if req.Name != nil {
		agent.Name = *req.Name
	}
	if req.Description != nil {
		agent.Description = *req.Description
	}
	if req.Category != nil {
		if !models.IsValidAgentCategory(*req.Category) {
			return nil, utils.ErrInvalidInput
		}
		agent.Category = *req.Category
	}
	if req.Prompt != nil {
		agent.Prompt = *req.Prompt
	}
	if req.CustomLLMConfig != nil {
		applyLLMConfig(agent, req.CustomLLMConfig)
	}
	if req.Tags != nil {
		agent.Tags = *req.Tags
	}
	if req.DeploymentStatus != nil {
		switch *req.DeploymentStatus {
		case models.DeploymentStatusDraft, models.DeploymentStatusPublished, models.DeploymentStatusArchived:
		default:
			return nil, utils.ErrInvalidInput
		}
		if *req.DeploymentStatus == models.DeploymentStatusPublished && agent.PublishedAt == nil {
			now := time.Now().UTC()
			agent.PublishedAt = &now
		}
		agent.DeploymentStatus = *req.DeploymentStatus
	}

	if err := s.agentRepo.Update(ctx, agent); err != nil {
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}

	resp := agentToResponse(agent)
	return &resp, nil
}

// Delete removes an agent owned by the requester
func (s *AgentService) Delete(ctx context.Context, requester Requester, id uuid.UUID) error {
	agent, err := s.agentRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get agent: %w", err)
	}
	if agent == nil {
		return utils.ErrAgentNotFound
	}
	if agent.CreatorID != requester.ID && requester.Role != models.RoleAdmin {
		return utils.ErrForbidden
	}

	deleted, err := s.agentRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	if !deleted {
		return utils.ErrAgentNotFound
	}
	return nil
}

// Like adjusts the like counter by the requested action and returns the new
// count. The counter never goes below zero.
func (s *AgentService) Like(ctx context.Context, id uuid.UUID, req *spec.LikeAgentRequest) (*spec.LikeAgentResponse, error) {
	var delta int64
	switch req.Action {
	case "like":
		delta = 1
	case "unlike":
		delta = -1
	default:
		return nil, utils.ErrInvalidInput
	}

	agent, err := s.agentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	if agent == nil {
		return nil, utils.ErrAgentNotFound
	}

	likes, err := s.agentRepo.IncrementMetric(ctx, id, repositories.MetricLikes, delta)
	if err != nil {
		return nil, fmt.Errorf("failed to update agent likes: %w", err)
	}

	return &spec.LikeAgentResponse{Likes: likes}, nil
}

// Run executes a published agent against the given input and returns a
// synthesized response. Execution is simulated; no model is invoked.
func (s *AgentService) Run(ctx context.Context, id uuid.UUID, req *spec.RunAgentRequest) (*spec.RunAgentResponse, error) {
	if req.Input == "" {
		return nil, utils.ErrInvalidInput
	}

	agent, err := s.agentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	if agent == nil {
		return nil, utils.ErrAgentNotFound
	}
	if !agent.IsPublished() {
		return nil, utils.ErrAgentNotPublished
	}

	runs, err := s.agentRepo.IncrementMetric(ctx, id, repositories.MetricRuns, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to increment agent runs: %w", err)
	}

	var response string
	if agent.CreationMethod == models.CreationMethodPrompt {
		response = fmt.Sprintf(
			"Agent Response: Based on the prompt %q, here's my response to %q: "+
				"This is a simulated response from the %s agent. In a real implementation, "+
				"this would be processed by an actual LLM.",
			agent.Prompt, req.Input, agent.Name)
	} else {
		response = fmt.Sprintf(
			"Custom LLM Response: Using model %s with temperature %g, responding to %q: "+
				"This is a simulated response from the %s agent with custom LLM configuration. "+
				"In a real implementation, this would call the specified LLM endpoint.",
			agent.LLMModel, agent.LLMTemperature, req.Input, agent.Name)
	}

	return &spec.RunAgentResponse{
		AgentID:   agent.UUID.String(),
		AgentName: agent.Name,
		Input:     req.Input,
		Response:  response,
		Timestamp: time.Now().UTC(),
		RunCount:  runs,
	}, nil
}

// Categories returns published agent counts per category, with the "All"
// aggregate first and every known category present even when empty.
func (s *AgentService) Categories(ctx context.Context) (*spec.CategoryListResponse, error) {
	counts, err := s.agentRepo.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count agents by category: %w", err)
	}

	var total int64
	for _, count := range counts {
		total += count
	}

	categories := make([]spec.CategoryCount, 0, len(models.AgentCategories)+1)
	categories = append(categories, spec.CategoryCount{Name: models.CategoryAll, Count: total})
	for _, name := range models.AgentCategories {
		categories = append(categories, spec.CategoryCount{Name: name, Count: counts[name]})
	}

	return &spec.CategoryListResponse{
		Categories: categories,
		Total:      total,
	}, nil
}

func applyLLMConfig(agent *models.Agent, cfg *spec.CustomLLMConfig) {
	agent.LLMModel = cfg.Model
	if agent.LLMModel == "" {
		agent.LLMModel = defaultLLMModel
	}
	agent.LLMTemperature = cfg.Temperature
	if agent.LLMTemperature == 0 {
		agent.LLMTemperature = defaultLLMTemperature
	}
	agent.LLMMaxTokens = cfg.MaxTokens
	if agent.LLMMaxTokens == 0 {
		agent.LLMMaxTokens = defaultLLMMaxTokens
	}
	agent.LLMSystemPrompt = cfg.SystemPrompt
	if cfg.APIEndpoint != nil {
		agent.LLMAPIEndpoint = *cfg.APIEndpoint
	}
}

// agentToResponse maps an agent to its public representation. The custom
// LLM API endpoint never leaves the service.
func agentToResponse(agent *models.Agent) spec.AgentResponse {
	resp := spec.AgentResponse{
		ID:             agent.UUID.String(),
		Name:           agent.Name,
		Description:    agent.Description,
		Category:       agent.Category,
		CreationMethod: agent.CreationMethod,
		Creator: spec.Creator{
			ID:    agent.CreatorID.String(),
			Name:  agent.CreatorName,
			Email: agent.CreatorEmail,
		},
		Prompt: agent.Prompt,
		Tags:   agent.Tags,
		Metrics: spec.AgentMetrics{
			Views: agent.Views,
			Runs:  agent.Runs,
			Likes: agent.Likes,
		},
		DeploymentStatus: agent.DeploymentStatus,
		CreatedAt:        agent.CreatedAt,
		UpdatedAt:        agent.UpdatedAt,
		PublishedAt:      agent.PublishedAt,
	}
	if agent.HasCustomLLMConfig() {
		resp.CustomLLMConfig = &spec.CustomLLMConfig{
			Model:        agent.LLMModel,
			Temperature:  agent.LLMTemperature,
			MaxTokens:    agent.LLMMaxTokens,
			SystemPrompt: agent.LLMSystemPrompt,
		}
	}
	return resp
}
