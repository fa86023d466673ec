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
	"net/http"

	"github.com/bvsbharat/ai-agent-platform/middleware/logger"
	"github.com/bvsbharat/ai-agent-platform/repositories"
	"github.com/bvsbharat/ai-agent-platform/services"
	"github.com/bvsbharat/ai-agent-platform/spec"
	"github.com/bvsbharat/ai-agent-platform/utils"
)

// HackathonController defines the interface for hackathon HTTP handlers
type HackathonController interface {
	ListHackathons(w http.ResponseWriter, r *http.Request)
	ScrapeHackathons(w http.ResponseWriter, r *http.Request)
}

type hackathonController struct {
	hackathonService *services.HackathonService
	enqueuer         DirectoryJobEnqueuer
}

// NewHackathonController creates a new hackathon controller
func NewHackathonController(hackathonService *services.HackathonService, enqueuer DirectoryJobEnqueuer) HackathonController {
	return &hackathonController{
		hackathonService: hackathonService,
		enqueuer:         enqueuer,
	}
}

func (c *hackathonController) ListHackathons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	page := getIntQueryParam(r, "page", defaultPage)
	if page < 1 {
		page = defaultPage
	}
	limit := getIntQueryParam(r, "limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	filter := repositories.HackathonFilter{
		Location: r.URL.Query().Get("location"),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}

	resp, err := c.hackathonService.List(ctx, filter, page)
	if err != nil {
		log.Error("ListHackathons: failed to list hackathons", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to fetch hackathons")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}

// ScrapeHackathons queues a scrape run of the upstream listing page
func (c *hackathonController) ScrapeHackathons(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	jobID, err := c.enqueuer.EnqueueHackathonScrape(ctx)
	if err != nil {
		log.Error("ScrapeHackathons: failed to enqueue scrape job", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to queue hackathon scrape")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusAccepted, &spec.JobQueuedResponse{
		JobID:   jobID,
		Message: "Hackathon scrape queued",
	})
}
