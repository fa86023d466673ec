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

package cursordirectory

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bvsbharat/ai-agent-platform/clients/requests"
	"github.com/bvsbharat/ai-agent-platform/config"
)

// RemoteMCP is one MCP server record as returned by the Cursor Directory
// REST API.
type RemoteMCP struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Link        string         `json:"link"`
	Logo        string         `json:"logo"`
	CompanyID   string         `json:"company_id"`
	Slug        string         `json:"slug"`
	Active      *bool          `json:"active"`
	Plan        string         `json:"plan"`
	Config      map[string]any `json:"config"`
	FTS         string         `json:"fts"`
	Downloads   int64          `json:"downloads"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}

// CursorDirectoryClient fetches MCP server records from the Cursor Directory
// REST API.
type CursorDirectoryClient interface {
	// FetchMCPs returns one page of active MCP records starting at offset.
	FetchMCPs(ctx context.Context, offset, limit int) ([]RemoteMCP, error)
}

type cursorDirectoryClient struct {
	httpClient requests.HttpClient
	baseURL    string
	token      string
}

// NewCursorDirectoryClient creates a Cursor Directory client from the
// directory sync configuration.
func NewCursorDirectoryClient(cfg config.DirectorySyncConfig) CursorDirectoryClient {
	return &cursorDirectoryClient{
		httpClient: requests.NewRetryableHTTPClient(&http.Client{}),
		baseURL:    cfg.CursorDirectoryURL,
		token:      cfg.CursorDirectoryToken,
	}
}

// FetchMCPs returns one page of active MCP records starting at offset.
func (c *cursorDirectoryClient) FetchMCPs(ctx context.Context, offset, limit int) ([]RemoteMCP, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("active", "eq.true")
	query.Set("order", "company_id.asc.nullslast")
	query.Set("limit", strconv.Itoa(limit))
	query.Set("offset", strconv.Itoa(offset))

	req := &requests.HttpRequest{
		Name:        "fetch-cursor-directory-mcps",
		Method:      http.MethodGet,
		URL:         c.baseURL + "/mcps",
		QueryParams: query,
		Headers: map[string]string{
			"Authorization": "Bearer " + c.token,
			"apikey":        c.token,
		},
	}

	var mcps []RemoteMCP
	if err := requests.SendRequest(ctx, c.httpClient, req).ScanResponse(&mcps, http.StatusOK); err != nil {
		return nil, fmt.Errorf("failed to fetch MCP records at offset %d: %w", offset, err)
	}
	return mcps, nil
}
