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
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/bvsbharat/ai-agent-platform/middleware/authtoken"
	"github.com/bvsbharat/ai-agent-platform/middleware/logger"
	"github.com/bvsbharat/ai-agent-platform/repositories"
	"github.com/bvsbharat/ai-agent-platform/services"
	"github.com/bvsbharat/ai-agent-platform/spec"
	"github.com/bvsbharat/ai-agent-platform/utils"
)

// AgentController defines the interface for agent HTTP handlers
type AgentController interface {
	ListAgents(w http.ResponseWriter, r *http.Request)
	CreateAgent(w http.ResponseWriter, r *http.Request)
	GetAgent(w http.ResponseWriter, r *http.Request)
	UpdateAgent(w http.ResponseWriter, r *http.Request)
	DeleteAgent(w http.ResponseWriter, r *http.Request)
	LikeAgent(w http.ResponseWriter, r *http.Request)
	RunAgent(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
	SearchAgents(w http.ResponseWriter, r *http.Request)
}

type agentController struct {
	agentService *services.AgentService
}

// NewAgentController creates a new agent controller
func NewAgentController(agentService *services.AgentService) AgentController {
	return &agentController{
		agentService: agentService,
	}
}

func handleAgentErrors(w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, utils.ErrAgentNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Agent not found")
	case errors.Is(err, utils.ErrAgentNotPublished):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Agent is not published")
	case errors.Is(err, utils.ErrInvalidInput):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, utils.ErrForbidden):
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden")
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, fallbackMsg)
	}
}

// requesterFromContext builds the service-level requester identity from the
// verified token claims attached by RequireAuth.
func requesterFromContext(r *http.Request) (services.Requester, bool) {
	claims, ok := authtoken.ClaimsFromContext(r.Context())
	if !ok {
		return services.Requester{}, false
	}
	userID, err := claims.UserID()
	if err != nil {
		return services.Requester{}, false
	}
	return services.Requester{
		ID:    userID,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	}, true
}

func parseIDPathValue(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(r.PathValue("id"))
}

func (c *agentController) ListAgents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	filter, page := parseListingParams(r)
	resp, err := c.agentService.List(ctx, filter, page)
	if err != nil {
		log.Error("ListAgents: failed to list agents", "error", err)
		handleAgentErrors(w, err, "Failed to fetch agents")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}

func (c *agentController) CreateAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	requester, ok := requesterFromContext(r)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req spec.CreateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("CreateAgent: failed to decode request", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := c.agentService.Create(ctx, requester, &req)
	if err != nil {
		log.Error("CreateAgent: failed to create agent", "error", err)
		handleAgentErrors(w, err, "Failed to create agent")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusCreated, resp)
}

func (c *agentController) GetAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	id, err := parseIDPathValue(r)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid agent ID")
		return
	}

	resp, err := c.agentService.Get(ctx, id)
	if err != nil {
		log.Error("GetAgent: failed to get agent", "error", err)
		handleAgentErrors(w, err, "Failed to fetch agent")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}

func (c *agentController) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	requester, ok := requesterFromContext(r)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := parseIDPathValue(r)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid agent ID")
		return
	}

	var req spec.UpdateAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("UpdateAgent: failed to decode request", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := c.agentService.Update(ctx, requester, id, &req)
	if err != nil {
		log.Error("UpdateAgent: failed to update agent", "error", err)
		handleAgentErrors(w, err, "Failed to update agent")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}

func (c *agentController) DeleteAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	requester, ok := requesterFromContext(r)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := parseIDPathValue(r)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid agent ID")
		return
	}

	if err := c.agentService.Delete(ctx, requester, id); err != nil {
		log.Error("DeleteAgent: failed to delete agent", "error", err)
		handleAgentErrors(w, err, "Failed to delete agent")
		return
	}

	utils.WriteSuccessResponse[any](w, http.StatusNoContent, nil)
}

func (c *agentController) LikeAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	id, err := parseIDPathValue(r)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid agent ID")
		return
	}

	var req spec.LikeAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("LikeAgent: failed to decode request", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := c.agentService.Like(ctx, id, &req)
	if err != nil {
		log.Error("LikeAgent: failed to update likes", "error", err)
		handleAgentErrors(w, err, "Failed to update likes")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}

func (c *agentController) RunAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	id, err := parseIDPathValue(r)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid agent ID")
		return
	}

	var req spec.RunAgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("RunAgent: failed to decode request", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := c.agentService.Run(ctx, id, &req)
	if err != nil {
		log.Error("RunAgent: failed to run agent", "error", err)
		handleAgentErrors(w, err, "Failed to run agent")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}

func (c *agentController) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	resp, err := c.agentService.Categories(ctx)
	if err != nil {
		log.Error("ListCategories: failed to aggregate categories", "error", err)
		handleAgentErrors(w, err, "Failed to fetch categories")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}

func (c *agentController) SearchAgents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	query := r.URL.Query()

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

	q := query.Get("q")
	if q == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Search query is required")
		return
	}

	filter := repositories.AgentSearchFilter{
		Query:     q,
		Category:  query.Get("category"),
		SortBy:    query.Get("sortBy"),
		Ascending: query.Get("order") == "asc",
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}
	if filter.SortBy == "" {
		filter.SortBy = "created_at"
	}

	resp, err := c.agentService.Search(ctx, filter, page)
	if err != nil {
		log.Error("SearchAgents: failed to search agents", "error", err)
		handleAgentErrors(w, err, "Failed to search agents")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}
