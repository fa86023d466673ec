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

package workers

import (
	"context"
	"fmt"
	"time"

	"github.com/riverqueue/river"

	"github.com/bvsbharat/ai-agent-platform/services"
)

// MCPSyncJobArgs requests a full MCP directory sync run
type MCPSyncJobArgs struct{}

// Kind returns the job kind for MCP directory sync
func (MCPSyncJobArgs) Kind() string { return "mcp_directory_sync" }

// MCPSyncWorker pulls the remote MCP directory into the local store
type MCPSyncWorker struct {
	river.WorkerDefaults[MCPSyncJobArgs]
	mcpService *services.MCPService
	jobTimeout time.Duration
}

// NewMCPSyncWorker creates a new MCP sync worker
func NewMCPSyncWorker(mcpService *services.MCPService, jobTimeout time.Duration) *MCPSyncWorker {
	return &MCPSyncWorker{
		mcpService: mcpService,
		jobTimeout: jobTimeout,
	}
}

// Timeout bounds a single sync run
func (w *MCPSyncWorker) Timeout(*river.Job[MCPSyncJobArgs]) time.Duration {
	return w.jobTimeout
}

// Work runs the directory sync
func (w *MCPSyncWorker) Work(ctx context.Context, job *river.Job[MCPSyncJobArgs]) error {
	if _, err := w.mcpService.SyncFromDirectory(ctx); err != nil {
		return fmt.Errorf("mcp directory sync failed: %w", err)
	}
	return nil
}
