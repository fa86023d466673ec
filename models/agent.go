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

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Agent creation method constants
const (
	CreationMethodPrompt    = "prompt"
	CreationMethodCustomLLM = "custom-llm"
)

// Agent deployment status constants
const (
	DeploymentStatusDraft     = "draft"
	DeploymentStatusPublished = "published"
	DeploymentStatusArchived  = "archived"
)

// AgentCategories is the fixed set of categories an agent can belong to
var AgentCategories = []string{
	"Assistant",
	"Automation",
	"Analytics",
	"Content",
	"Customer Service",
	"Development",
	"Education",
	"Finance",
	"Healthcare",
	"Marketing",
	"Other",
}

// IsValidAgentCategory reports whether category is one of AgentCategories
func IsValidAgentCategory(category string) bool {
	for _, c := range AgentCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Agent is a user-defined automation descriptor that can be "run" to
// produce a synthesized response
type Agent struct {
	UUID           uuid.UUID `gorm:"column:uuid;primaryKey"`
	Name           string    `gorm:"column:name;not null"`
	Description    string    `gorm:"column:description;not null"`
	Category       string    `gorm:"column:category;not null"`
	CreationMethod string    `gorm:"column:creation_method;not null"`

	// Creator identity, denormalized for listing responses
	CreatorID    uuid.UUID `gorm:"column:creator_id;not null"`
	CreatorName  string    `gorm:"column:creator_name;not null"`
	CreatorEmail string    `gorm:"column:creator_email;not null"`

	// Prompt is required iff CreationMethod is "prompt"
	Prompt string `gorm:"column:prompt"`

	// Custom LLM configuration, required iff CreationMethod is "custom-llm".
	// APIEndpoint is never exposed on public reads.
	LLMModel        string  `gorm:"column:llm_model"`
	LLMTemperature  float64 `gorm:"column:llm_temperature"`
	LLMMaxTokens    int     `gorm:"column:llm_max_tokens"`
	LLMSystemPrompt string  `gorm:"column:llm_system_prompt"`
	LLMAPIEndpoint  string  `gorm:"column:llm_api_endpoint"`

	Tags datatypes.JSONSlice[string] `gorm:"column:tags;type:jsonb"`

	Views int64 `gorm:"column:views;not null;default:0"`
	Runs  int64 `gorm:"column:runs;not null;default:0"`
	Likes int64 `gorm:"column:likes;not null;default:0"`

	DeploymentStatus string     `gorm:"column:deployment_status;not null;default:draft"`
	PublishedAt      *time.Time `gorm:"column:published_at"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

// TableName returns the table name for agents
func (Agent) TableName() string {
	return "agents"
}

// IsPublished reports whether the agent is publicly listable and runnable
func (a *Agent) IsPublished() bool {
	return a.DeploymentStatus == DeploymentStatusPublished
}

// HasCustomLLMConfig reports whether any custom LLM fields are set
func (a *Agent) HasCustomLLMConfig() bool {
	return a.LLMModel != ""
}
