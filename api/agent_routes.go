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

	"github.com/bvsbharat/ai-agent-platform/controllers"
	"github.com/bvsbharat/ai-agent-platform/middleware/authtoken"
)

func registerAgentRoutes(mux *http.ServeMux, ctrl controllers.AgentController, auth *authtoken.Manager) {
	mux.HandleFunc("GET /agents", ctrl.ListAgents)
	mux.HandleFunc("POST /agents", auth.RequireAuth(ctrl.CreateAgent))
	mux.HandleFunc("GET /agents/{id}", ctrl.GetAgent)
	mux.HandleFunc("PUT /agents/{id}", auth.RequireAuth(ctrl.UpdateAgent))
	mux.HandleFunc("DELETE /agents/{id}", auth.RequireAuth(ctrl.DeleteAgent))
	mux.HandleFunc("POST /agents/{id}/like", ctrl.LikeAgent)
	mux.HandleFunc("POST /agents/{id}/run", ctrl.RunAgent)
	mux.HandleFunc("GET /categories", ctrl.ListCategories)
	mux.HandleFunc("GET /search", ctrl.SearchAgents)
}
