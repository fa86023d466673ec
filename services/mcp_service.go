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
	"log/slog"
	"strings"
	"time"

	"github.com/samber/lo"
	"gorm.io/datatypes"

	"github.com/bvsbharat/ai-agent-platform/clients/cursordirectory"
	"github.com/bvsbharat/ai-agent-platform/middleware/logger"
	"github.com/bvsbharat/ai-agent-platform/models"
	"github.com/bvsbharat/ai-agent-platform/repositories"
	"github.com/bvsbharat/ai-agent-platform/spec"
)

// MCPCategoryGeneral is the fallback category of a synced MCP listing
const MCPCategoryGeneral = "General"

const maxMCPTags = 10

// mcpCategoryKeywords maps each MCP category to the description keywords
// that select it. Order matters: the first category with a match wins.
var mcpCategoryKeywords = []struct {
	category string
	keywords []string
}{
	{"Testing", []string{"test", "testing", "qa"}},
	{"Browser", []string{"browser", "chrome", "web page", "webpage"}},
	{"Automation", []string{"automation", "automate", "workflow"}},
	{"API", []string{"api", "rest", "graphql", "endpoint"}},
	{"Database", []string{"database", "sql", "postgres", "mysql", "mongodb", "query"}},
	{"AI/ML", []string{"ai", "llm", "machine learning", "model", "embedding"}},
	{"Development", []string{"code", "developer", "development", "git", "ide"}},
	{"Security", []string{"security", "auth", "vulnerability", "secret"}},
	{"Monitoring", []string{"monitor", "observability", "log", "metric", "alert"}},
	{"Deployment", []string{"deploy", "deployment", "kubernetes", "docker", "cloud"}},
}

// MCPSyncStats summarizes one directory sync run
type MCPSyncStats struct {
	Fetched int
	Synced  int
	Skipped int
}

// MCPService handles MCP listing reads and directory synchronization
type MCPService struct {
	mcpRepo         repositories.MCPRepository
	directoryClient cursordirectory.CursorDirectoryClient
	pageSize        int
	maxPages        int
}

// NewMCPService creates a new MCP service
func NewMCPService(
	mcpRepo repositories.MCPRepository,
	directoryClient cursordirectory.CursorDirectoryClient,
	pageSize, maxPages int,
) *MCPService {
	if pageSize <= 0 {
		pageSize = 100
	}
	if maxPages <= 0 {
		maxPages = 10
	}
	return &MCPService{
		mcpRepo:         mcpRepo,
		directoryClient: directoryClient,
		pageSize:        pageSize,
		maxPages:        maxPages,
	}
}

// List lists active MCP listings matching the filter
func (s *MCPService) List(ctx context.Context, filter models.ListingFilter, page int) (*spec.MCPListResponse, error) {
	mcps, total, err := s.mcpRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list mcps: %w", err)
	}

	responses := lo.Map(mcps, func(mcp models.MCP, _ int) spec.MCPResponse {
		return mcpToResponse(&mcp)
	})

	return &spec.MCPListResponse{
		MCPs:       responses,
		Pagination: spec.NewPagination(page, filter.Limit, total),
	}, nil
}

// SyncFromDirectory pulls all active MCP records from the remote directory
// and upserts them locally. A record that fails to map or persist is logged
// and skipped; it never aborts the run.
func (s *MCPService) SyncFromDirectory(ctx context.Context) (*MCPSyncStats, error) {
	log := logger.GetLogger(ctx)
	stats := &MCPSyncStats{}

	for pageIdx := 0; pageIdx < s.maxPages; pageIdx++ {
		remotes, err := s.directoryClient.FetchMCPs(ctx, pageIdx*s.pageSize, s.pageSize)
		if err != nil {
			return stats, fmt.Errorf("failed to fetch directory page %d: %w", pageIdx, err)
		}
		if len(remotes) == 0 {
			break
		}
		stats.Fetched += len(remotes)

		for i := range remotes {
			mcp, err := remoteToMCP(&remotes[i])
			if err != nil {
				log.Warn("skipping unmappable MCP record",
					slog.String("remoteId", remotes[i].ID),
					slog.String("error", err.Error()))
				stats.Skipped++
				continue
			}
			if err := s.mcpRepo.Upsert(ctx, mcp); err != nil {
				log.Warn("failed to upsert MCP record",
					slog.String("remoteId", mcp.RemoteID),
					slog.String("error", err.Error()))
				stats.Skipped++
				continue
			}
			stats.Synced++
		}

		if len(remotes) < s.pageSize {
			break
		}
	}

	log.Info("MCP directory sync completed",
		slog.Int("fetched", stats.Fetched),
		slog.Int("synced", stats.Synced),
		slog.Int("skipped", stats.Skipped))
	return stats, nil
}

func remoteToMCP(remote *cursordirectory.RemoteMCP) (*models.MCP, error) {
	if remote.ID == "" {
		return nil, fmt.Errorf("missing record id")
	}
	name := remote.Name
	if name == "" {
		name = "Unnamed MCP"
	}
	plan := remote.Plan
	if plan == "" {
		plan = "free"
	}
	active := true
	if remote.Active != nil {
		active = *remote.Active
	}

	now := time.Now().UTC()
	return &models.MCP{
		RemoteID:    remote.ID,
		Name:        name,
		Description: remote.Description,
		Link:        remote.Link,
		Logo:        remote.Logo,
		CompanyID:   remote.CompanyID,
		Slug:        remote.Slug,
		Active:      active,
		Plan:        plan,
		Config:      datatypes.NewJSONType(remote.Config),
		Category:    deriveMCPCategory(remote.Description),
		Tags:        deriveMCPTags(remote.FTS),
		Installs:    remote.Downloads,
		SyncedAt:    &now,
	}, nil
}

// deriveMCPCategory keyword-matches the description against the known MCP
// categories, falling back to General.
func deriveMCPCategory(description string) string {
	lowered := strings.ToLower(description)
	for _, entry := range mcpCategoryKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lowered, keyword) {
				return entry.category
			}
		}
	}
	return MCPCategoryGeneral
}

// deriveMCPTags splits the remote full-text-search token field into a
// bounded, deduplicated tag list.
func deriveMCPTags(fts string) []string {
	tokens := strings.FieldsFunc(fts, func(r rune) bool {
		return r == ' ' || r == '\'' || r == ':' || r == ','
	})
	tags := lo.Filter(tokens, func(token string, _ int) bool {
		if len(token) < 3 {
			return false
		}
		// drop tsvector position markers
		for _, r := range token {
			if r < '0' || r > '9' {
				return true
			}
		}
		return false
	})
	tags = lo.Uniq(lo.Map(tags, func(tag string, _ int) string {
		return strings.ToLower(tag)
	}))
	if len(tags) > maxMCPTags {
		tags = tags[:maxMCPTags]
	}
	return tags
}

func mcpToResponse(mcp *models.MCP) spec.MCPResponse {
	return spec.MCPResponse{
		ID:          mcp.RemoteID,
		Name:        mcp.Name,
		Description: mcp.Description,
		Link:        mcp.Link,
		Logo:        mcp.Logo,
		CompanyID:   mcp.CompanyID,
		Slug:        mcp.Slug,
		Active:      mcp.Active,
		Plan:        mcp.Plan,
		Config:      mcp.Config.Data(),
		Category:    mcp.Category,
		Tags:        mcp.Tags,
		Installs:    mcp.Installs,
		CreatedAt:   mcp.CreatedAt,
		SyncedAt:    mcp.SyncedAt,
	}
}
