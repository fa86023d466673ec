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

package api

import (
	"net/http"

	"github.com/bvsbharat/ai-agent-platform/config"
	"github.com/bvsbharat/ai-agent-platform/middleware"
	"github.com/bvsbharat/ai-agent-platform/middleware/logger"
	"github.com/bvsbharat/ai-agent-platform/wiring"
)

// MakeHTTPHandler creates a new HTTP handler with middleware and routes
func MakeHTTPHandler(params *wiring.AppParams) http.Handler {
	mux := http.NewServeMux()

	// Register health check outside the API middleware chain
	registerHealthCheck(mux, params.DB)

	// Create a sub-mux for the public API routes
	apiMux := http.NewServeMux()
	registerAgentRoutes(apiMux, params.AgentController, params.TokenManager)
	registerMCPRoutes(apiMux, params.MCPController, params.TokenManager)
	registerRuleRoutes(apiMux, params.RuleController, params.TokenManager)
	registerHackathonRoutes(apiMux, params.HackathonController, params.TokenManager)
	registerAuthRoutes(apiMux, params.AuthController, params.TokenManager)

	// Apply middleware in reverse order (last middleware is applied first)
	apiHandler := http.Handler(apiMux)
	apiHandler = middleware.AddCorrelationID()(apiHandler)
	apiHandler = logger.RequestLogger()(apiHandler)
	apiHandler = middleware.CORS(config.GetConfig().CORSAllowedOrigin)(apiHandler)
	apiHandler = middleware.RecovererOnPanic()(apiHandler)

	mux.Handle("/api/", http.StripPrefix("/api", apiHandler))

	return mux
}
