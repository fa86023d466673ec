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

package controllers

import (
	"context"
	"net/http"

	"github.com/bvsbharat/ai-agent-platform/middleware/logger"
	"github.com/bvsbharat/ai-agent-platform/services"
	"github.com/bvsbharat/ai-agent-platform/spec"
	"github.com/bvsbharat/ai-agent-platform/utils"
)

// DirectoryJobEnqueuer queues background directory sync jobs
type DirectoryJobEnqueuer interface {
	EnqueueMCPSync(ctx context.Context) (int64, error)
	EnqueueHackathonScrape(ctx context.Context) (int64, error)
}

// MCPController defines the interface for MCP listing HTTP handlers
type MCPController interface {
	ListMCPs(w http.ResponseWriter, r *http.Request)
	SyncMCPs(w http.ResponseWriter, r *http.Request)
}

type mcpController struct {
	mcpService *services.MCPService
	enqueuer   DirectoryJobEnqueuer
}

// NewMCPController creates a new MCP controller
func NewMCPController(mcpService *services.MCPService, enqueuer DirectoryJobEnqueuer) MCPController {
	return &mcpController{
		mcpService: mcpService,
		enqueuer:   enqueuer,
	}
}

func (c *mcpController) ListMCPs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	filter, page := parseListingParams(r)
	resp, err := c.mcpService.List(ctx, filter, page)
	if err != nil {
		log.Error("ListMCPs: failed to list mcps", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch MCPs")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}

// SyncMCPs queues a directory sync run. The run itself happens on the job
// queue; the endpoint only acknowledges the request.
func (c *mcpController) SyncMCPs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	jobID, err := c.enqueuer.EnqueueMCPSync(ctx)
	if err != nil {
		log.Error("SyncMCPs: failed to enqueue sync job", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to queue MCP sync")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusAccepted, &spec.JobQueuedResponse{
		JobID:   jobID,
		Message: "MCP directory sync queued",
	})
}
