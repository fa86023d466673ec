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

	"github.com/google/uuid"

	"github.com/bvsbharat/ai-agent-platform/models"
	"github.com/bvsbharat/ai-agent-platform/repositories"
	"github.com/bvsbharat/ai-agent-platform/spec"
	"github.com/bvsbharat/ai-agent-platform/utils"
)

// RuleService handles coding rule business logic
type RuleService struct {
	ruleRepo repositories.RuleRepository
}

// NewRuleService creates a new rule service
func NewRuleService(ruleRepo repositories.RuleRepository) *RuleService {
	return &RuleService{ruleRepo: ruleRepo}
}

// List lists rules matching the filter
func (s *RuleService) List(ctx context.Context, filter models.ListingFilter, page int) (*spec.RuleListResponse, error) {
	rules, total, err := s.ruleRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}

	responses := make([]spec.RuleResponse, 0, len(rules))
	for i := range rules {
		responses = append(responses, ruleToResponse(&rules[i]))
	}

	return &spec.RuleListResponse{
		Rules:      responses,
		Pagination: spec.NewPagination(page, filter.Limit, total),
	}, nil
}

// Create validates and persists a new rule authored by the requester
func (s *RuleService) Create(ctx context.Context, requester Requester, req *spec.CreateRuleRequest) (*spec.RuleResponse, error) {
	if req.Title == "" || req.Description == "" || req.Category == "" || req.Content == "" {
		return nil, utils.ErrInvalidInput
	}

	rule := &models.Rule{
		UUID:        uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		AuthorID:    requester.ID,
		AuthorName:  requester.Name,
		Tags:        req.Tags,
		Content:     req.Content,
	}
	if err := s.ruleRepo.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to create rule: %w", err)
	}

	resp := ruleToResponse(rule)
	return &resp, nil
}

// Get returns a single rule, counting the read as a view
func (s *RuleService) Get(ctx context.Context, id uuid.UUID) (*spec.RuleResponse, error) {
	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}
	if rule == nil {
		return nil, utils.ErrRuleNotFound
	}

	views, err := s.ruleRepo.IncrementMetric(ctx, id, repositories.RuleMetricViews, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to increment rule views: %w", err)
	}
	rule.Views = views

	resp := ruleToResponse(rule)
	return &resp, nil
}

// Delete removes a rule authored by the requester
func (s *RuleService) Delete(ctx context.Context, requester Requester, id uuid.UUID) error {
	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get rule: %w", err)
	}
	if rule == nil {
		return utils.ErrRuleNotFound
	}
	if rule.AuthorID != requester.ID && requester.Role != models.RoleAdmin {
		return utils.ErrForbidden
	}

	deleted, err := s.ruleRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete rule: %w", err)
	}
	if !deleted {
		return utils.ErrRuleNotFound
	}
	return nil
}

// Vote adjusts the vote counter by the requested action and returns the new
// count. The counter never goes below zero.
func (s *RuleService) Vote(ctx context.Context, id uuid.UUID, req *spec.VoteRuleRequest) (*spec.VoteRuleResponse, error) {
	var delta int64
	switch req.Action {
	case "up":
		delta = 1
	case "down":
		delta = -1
	default:
		return nil, utils.ErrInvalidInput
	}

	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get rule: %w", err)
	}
	if rule == nil {
		return nil, utils.ErrRuleNotFound
	}

	votes, err := s.ruleRepo.IncrementMetric(ctx, id, repositories.RuleMetricVotes, delta)
	if err != nil {
		return nil, fmt.Errorf("failed to update rule votes: %w", err)
	}

	return &spec.VoteRuleResponse{Votes: votes}, nil
}

func ruleToResponse(rule *models.Rule) spec.RuleResponse {
	return spec.RuleResponse{
		ID:          rule.UUID.String(),
		Title:       rule.Title,
		Description: rule.Description,
		Category:    rule.Category,
		AuthorID:    rule.AuthorID.String(),
		AuthorName:  rule.AuthorName,
		Tags:        rule.Tags,
		Content:     rule.Content,
		Votes:       rule.Votes,
		Views:       rule.Views,
		CreatedAt:   rule.CreatedAt,
		UpdatedAt:   rule.UpdatedAt,
	}
}
