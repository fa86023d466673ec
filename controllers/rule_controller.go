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

	"github.com/bvsbharat/ai-agent-platform/middleware/logger"
	"github.com/bvsbharat/ai-agent-platform/services"
	"github.com/bvsbharat/ai-agent-platform/spec"
	"github.com/bvsbharat/ai-agent-platform/utils"
)

// RuleController defines the interface for coding rule HTTP handlers
type RuleController interface {
	ListRules(w http.ResponseWriter, r *http.Request)
	CreateRule(w http.ResponseWriter, r *http.Request)
	GetRule(w http.ResponseWriter, r *http.Request)
	DeleteRule(w http.ResponseWriter, r *http.Request)
	VoteRule(w http.ResponseWriter, r *http.Request)
}

type ruleController struct {
	ruleService *services.RuleService
}

// NewRuleController creates a new rule controller
func NewRuleController(ruleService *services.RuleService) RuleController {
	return &ruleController{
		ruleService: ruleService,
	}
}

func handleRuleErrors(w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, utils.ErrRuleNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Rule not found")
	case errors.Is(err, utils.ErrInvalidInput):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, utils.ErrForbidden):
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden")
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, fallbackMsg)
	}
}

func (c *ruleController) ListRules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	filter, page := parseListingParams(r)
	resp, err := c.ruleService.List(ctx, filter, page)
	if err != nil {
		log.Error("ListRules: failed to list rules", "error", err)
		handleRuleErrors(w, err, "Failed to fetch rules")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}

func (c *ruleController) CreateRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	requester, ok := requesterFromContext(r)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req spec.CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("CreateRule: failed to decode request", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := c.ruleService.Create(ctx, requester, &req)
	if err != nil {
		log.Error("CreateRule: failed to create rule", "error", err)
		handleRuleErrors(w, err, "Failed to create rule")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusCreated, resp)
}

func (c *ruleController) GetRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	id, err := parseIDPathValue(r)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid rule ID")
		return
	}

	resp, err := c.ruleService.Get(ctx, id)
	if err != nil {
		log.Error("GetRule: failed to get rule", "error", err)
		handleRuleErrors(w, err, "Failed to fetch rule")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}

func (c *ruleController) DeleteRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	requester, ok := requesterFromContext(r)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := parseIDPathValue(r)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid rule ID")
		return
	}

	if err := c.ruleService.Delete(ctx, requester, id); err != nil {
		log.Error("DeleteRule: failed to delete rule", "error", err)
		handleRuleErrors(w, err, "Failed to delete rule")
		return
	}

	utils.WriteSuccessResponse[any](w, http.StatusNoContent, nil)
}

func (c *ruleController) VoteRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	id, err := parseIDPathValue(r)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid rule ID")
		return
	}

	var req spec.VoteRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("VoteRule: failed to decode request", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := c.ruleService.Vote(ctx, id, &req)
	if err != nil {
		log.Error("VoteRule: failed to update votes", "error", err)
		handleRuleErrors(w, err, "Failed to update votes")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}
