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

// Package spec contains the request and response types of the public HTTP API.
package spec

import "time"

// ErrorResponse is the body returned for any failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// Pagination describes the page window of a listing response
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

// NewPagination computes the pagination metadata for a listing response.
// A total of zero yields zero pages with both flags false.
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// CustomLLMConfig is the model configuration of a custom-llm agent.
// APIEndpoint is omitted from public reads.
type CustomLLMConfig struct {
	Model        string  `json:"model"`
	Temperature  float64 `json:"temperature"`
	MaxTokens    int     `json:"maxTokens"`
	SystemPrompt string  `json:"systemPrompt"`
	APIEndpoint  *string `json:"apiEndpoint,omitempty"`
}

// Creator identifies the user that created an agent
type Creator struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AgentMetrics holds the denormalized usage counters of an agent
type AgentMetrics struct {
	Views int64 `json:"views"`
	Runs  int64 `json:"runs"`
	Likes int64 `json:"likes"`
}

// CreateAgentRequest is the body of POST /api/agents
type CreateAgentRequest struct {
	Name            string           `json:"name"`
	Description     string           `json:"description"`
	Category        string           `json:"category"`
	CreationMethod  string           `json:"creationMethod"`
	Prompt          string           `json:"prompt,omitempty"`
	CustomLLMConfig *CustomLLMConfig `json:"customLLMConfig,omitempty"`
	Tags            []string         `json:"tags,omitempty"`
}

// UpdateAgentRequest is the body of PUT /api/agents/{id}. Nil fields are
// left unchanged.
type UpdateAgentRequest struct {
	Name             *string          `json:"name,omitempty"`
	Description      *string          `json:"description,omitempty"`
	Category         *string          `json:"category,omitempty"`
	Prompt           *string          `json:"prompt,omitempty"`
	CustomLLMConfig  *CustomLLMConfig `json:"customLLMConfig,omitempty"`
	Tags             *[]string        `json:"tags,omitempty"`
	DeploymentStatus *string          `json:"deploymentStatus,omitempty"`
}

// AgentResponse is the public representation of an agent
type AgentResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	Category         string           `json:"category"`
	CreationMethod   string           `json:"creationMethod"`
	Creator          Creator          `json:"creator"`
	Prompt           string           `json:"prompt,omitempty"`
	CustomLLMConfig  *CustomLLMConfig `json:"customLLMConfig,omitempty"`
	Tags             []string         `json:"tags"`
	Metrics          AgentMetrics     `json:"metrics"`
	DeploymentStatus string           `json:"deploymentStatus"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	PublishedAt      *time.Time       `json:"publishedAt,omitempty"`
}

// AgentListResponse is the body of GET /api/agents
type AgentListResponse struct {
	Agents     []AgentResponse `json:"agents"`
	Pagination Pagination      `json:"pagination"`
}

// LikeAgentRequest is the body of POST /api/agents/{id}/like
type LikeAgentRequest struct {
	UserID string `json:"userId"`
	Action string `json:"action"` // "like" or "unlike"
}

// LikeAgentResponse returns the new like count
type LikeAgentResponse struct {
	Likes int64 `json:"likes"`
}

// RunAgentRequest is the body of POST /api/agents/{id}/run
type RunAgentRequest struct {
	Input string `json:"input"`
}

// RunAgentResponse carries the synthesized execution output
type RunAgentResponse struct {
	AgentID   string    `json:"agentId"`
	AgentName string    `json:"agentName"`
	Input     string    `json:"input"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
	RunCount  int64     `json:"runCount"`
}

// MCPResponse is the public representation of an MCP server listing
type MCPResponse struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Link        string         `json:"link"`
	Logo        string         `json:"logo"`
	CompanyID   string         `json:"companyId"`
	Slug        string         `json:"slug"`
	Active      bool           `json:"active"`
	Plan        string         `json:"plan"`
	Config      map[string]any `json:"config,omitempty"`
	Category    string         `json:"category"`
	Tags        []string       `json:"tags"`
	Installs    int64          `json:"installs"`
	CreatedAt   time.Time      `json:"createdAt"`
	SyncedAt    *time.Time     `json:"syncedAt,omitempty"`
}

// MCPListResponse is the body of GET /api/mcps
type MCPListResponse struct {
	MCPs       []MCPResponse `json:"mcps"`
	Pagination Pagination    `json:"pagination"`
}

// JobQueuedResponse acknowledges an enqueued background job
type JobQueuedResponse struct {
	JobID   int64  `json:"jobId"`
	Message string `json:"message"`
}

// CreateRuleRequest is the body of POST /api/rules
type CreateRuleRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags,omitempty"`
	Content     string   `json:"content"`
}

// RuleResponse is the public representation of a rule
type RuleResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	AuthorID    string    `json:"authorId"`
	AuthorName  string    `json:"authorName"`
	Tags        []string  `json:"tags"`
	Content     string    `json:"content"`
	Votes       int64     `json:"votes"`
	Views       int64     `json:"views"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// RuleListResponse is the body of GET /api/rules
type RuleListResponse struct {
	Rules      []RuleResponse `json:"rules"`
	Pagination Pagination     `json:"pagination"`
}

// VoteRuleRequest is the body of POST /api/rules/{id}/vote
type VoteRuleRequest struct {
	Action string `json:"action"` // "up" or "down"
}

// VoteRuleResponse returns the new vote count
type VoteRuleResponse struct {
	Votes int64 `json:"votes"`
}

// CategoryCount pairs a category with its published agent count
type CategoryCount struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// CategoryListResponse is the body of GET /api/categories
type CategoryListResponse struct {
	Categories []CategoryCount `json:"categories"`
	Total      int64           `json:"total"`
}

// SearchResponse is the body of GET /api/search
type SearchResponse struct {
	Agents      []AgentResponse `json:"agents"`
	Pagination  Pagination      `json:"pagination"`
	SearchQuery string          `json:"searchQuery"`
	Category    string          `json:"category"`
	SortBy      string          `json:"sortBy"`
	Order       string          `json:"order"`
}

// HackathonResponse is the public representation of a hackathon listing
type HackathonResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Organizer   string `json:"organizer"`
	Attendees   int    `json:"attendees"`
	ImageURL    string `json:"imageUrl"`
	EventURL    string `json:"eventUrl"`
	IsOnline    bool   `json:"isOnline"`
}

// HackathonListResponse is the body of GET /api/hackathons
type HackathonListResponse struct {
	Hackathons []HackathonResponse `json:"hackathons"`
	Pagination Pagination          `json:"pagination"`
}

// AuthRequest is the body of POST /api/auth
type AuthRequest struct {
	Action   string `json:"action"` // "register" or "login"
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// UserResponse is the public representation of a user
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is the body returned by a successful register or login
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
