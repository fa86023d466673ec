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

// AuthController defines the interface for authentication HTTP handlers
type AuthController interface {
	Authenticate(w http.ResponseWriter, r *http.Request)
	GetCurrentUser(w http.ResponseWriter, r *http.Request)
}

type authController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService) AuthController {
	return &authController{
		authService: authService,
	}
}

func handleAuthErrors(w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, utils.ErrUserAlreadyExists):
		utils.WriteErrorResponse(w, http.StatusConflict, "User already exists")
	case errors.Is(err, utils.ErrInvalidCredentials):
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, utils.ErrUserNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "User not found")
	case errors.Is(err, utils.ErrInvalidInput):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid input")
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, fallbackMsg)
	}
}

// Authenticate dispatches on the action field: "register" creates an
// account, "login" verifies credentials. Both return a signed token.
func (c *authController) Authenticate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var req spec.AuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Authenticate: failed to decode request", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var (
		resp *spec.AuthResponse
		err  error
	)
	switch req.Action {
	case "register":
		resp, err = c.authService.Register(ctx, &req)
	case "login":
		resp, err = c.authService.Login(ctx, &req)
	default:
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Unknown action")
		return
	}
	if err != nil {
		log.Error("Authenticate: request failed", "action", req.Action, "error", err)
		handleAuthErrors(w, err, "Authentication failed")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}

// GetCurrentUser returns the account behind the presented token
func (c *authController) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	requester, ok := requesterFromContext(r)
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resp, err := c.authService.CurrentUser(ctx, requester.ID)
	if err != nil {
		log.Error("GetCurrentUser: failed to fetch user", "error", err)
		handleAuthErrors(w, err, "Failed to fetch user")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}
