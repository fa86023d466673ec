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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bvsbharat/ai-agent-platform/clients/cursordirectory"
	"github.com/bvsbharat/ai-agent-platform/models"
)

// mockMCPRepo is an in-memory test double for the MCP repository
type mockMCPRepo struct {
	mcps       map[string]*models.MCP
	failRemote string
}

func newMockMCPRepo() *mockMCPRepo {
	return &mockMCPRepo{mcps: make(map[string]*models.MCP)}
}

func (m *mockMCPRepo) List(ctx context.Context, filter models.ListingFilter) ([]models.MCP, int64, error) {
	var mcps []models.MCP
	for _, mcp := range m.mcps {
		mcps = append(mcps, *mcp)
	}
	return mcps, int64(len(mcps)), nil
}

func (m *mockMCPRepo) GetByRemoteID(ctx context.Context, remoteID string) (*models.MCP, error) {
	mcp, ok := m.mcps[remoteID]
	if !ok {
		return nil, nil
	}
	copied := *mcp
	return &copied, nil
}

func (m *mockMCPRepo) Upsert(ctx context.Context, mcp *models.MCP) error {
	if mcp.RemoteID == m.failRemote {
		return fmt.Errorf("storage failure")
	}
	copied := *mcp
	m.mcps[mcp.RemoteID] = &copied
	return nil
}

// mockDirectoryClient serves canned directory pages
type mockDirectoryClient struct {
	pages    [][]cursordirectory.RemoteMCP
	fetchErr error
	calls    int
}

func (m *mockDirectoryClient) FetchMCPs(ctx context.Context, offset, limit int) ([]cursordirectory.RemoteMCP, error) {
	m.calls++
	if m.fetchErr != nil {
		return nil, m.fetchErr
	}
	pageIdx := offset / limit
	if pageIdx >= len(m.pages) {
		return nil, nil
	}
	return m.pages[pageIdx], nil
}

func TestSyncFromDirectory(t *testing.T) {
	repo := newMockMCPRepo()
	client := &mockDirectoryClient{
		pages: [][]cursordirectory.RemoteMCP{
			{
				{ID: "mcp-1", Name: "Playwright", Description: "Browser testing for web apps", FTS: "'playwright':1 'browser':2"},
				{Name: "broken record"}, // no id, skipped
			},
			{
				{ID: "mcp-2"}, // short page ends the run
			},
		},
	}
	svc := NewMCPService(repo, client, 2, 10)

	stats, err := svc.SyncFromDirectory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Fetched)
	assert.Equal(t, 2, stats.Synced)
	assert.Equal(t, 1, stats.Skipped)
	assert.Equal(t, 2, client.calls)
	assert.Len(t, repo.mcps, 2)
}

func TestSyncFromDirectoryUpsertFailureSkipsRecord(t *testing.T) {
	repo := newMockMCPRepo()
	repo.failRemote = "mcp-bad"
	client := &mockDirectoryClient{
		pages: [][]cursordirectory.RemoteMCP{
			{
				{ID: "mcp-good"},
				{ID: "mcp-bad"},
			},
		},
	}
	svc := NewMCPService(repo, client, 10, 10)

	stats, err := svc.SyncFromDirectory(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Synced)
	assert.Equal(t, 1, stats.Skipped)
}

func TestSyncFromDirectoryFetchError(t *testing.T) {
	client := &mockDirectoryClient{fetchErr: fmt.Errorf("directory unreachable")}
	svc := NewMCPService(newMockMCPRepo(), client, 10, 10)

	_, err := svc.SyncFromDirectory(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory unreachable")
}

func TestRemoteToMCPDefaults(t *testing.T) {
	active := false
	mcp, err := remoteToMCP(&cursordirectory.RemoteMCP{
		ID:        "mcp-1",
		Downloads: 42,
		Active:    &active,
	})
	require.NoError(t, err)

	assert.Equal(t, "Unnamed MCP", mcp.Name)
	assert.Equal(t, "free", mcp.Plan)
	assert.False(t, mcp.Active)
	assert.Equal(t, int64(42), mcp.Installs)
	assert.Equal(t, MCPCategoryGeneral, mcp.Category)
	require.NotNil(t, mcp.SyncedAt)

	_, err = remoteToMCP(&cursordirectory.RemoteMCP{Name: "no id"})
	require.Error(t, err)
}

func TestDeriveMCPCategory(t *testing.T) {
	tests := []struct {
		description string
		expected    string
	}{
		{"End-to-end testing toolkit", "Testing"},
		{"Control a headless browser", "Browser"},
		{"Workflow automation for your team", "Automation"},
		{"Query your postgres database", "Database"},
		{"Collects metrics and alerts", "Monitoring"},
		{"Weather forecasts by city", MCPCategoryGeneral},
		{"", MCPCategoryGeneral},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, deriveMCPCategory(tt.description), "description %q", tt.description)
	}
}

func TestDeriveMCPTags(t *testing.T) {
	// tsvector-style input: quoted lexemes with position markers
	tags := deriveMCPTags("'browser':1 'automation':2 'Browser':3 'ab':4 '12345':5")
	assert.Equal(t, []string{"browser", "automation"}, tags)
}

func TestDeriveMCPTagsCapped(t *testing.T) {
	fts := ""
	for i := 0; i < 15; i++ {
		fts += fmt.Sprintf("'token%02d':%d ", i, i+1)
	}
	tags := deriveMCPTags(fts)
	assert.Len(t, tags, 10)
}
